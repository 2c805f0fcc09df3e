// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/service"
	"github.com/gin-gonic/gin"
)

// multipart 表单里面除了文件之外还有几个字段
const multipartSlack = 1 << 20

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc          service.ResumeService
	analyticsSvc service.AnalyticsService
	maxFileSize  int64
}

func NewHandler(svc service.ResumeService, analyticsSvc service.AnalyticsService, cfg service.Config) *Handler {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = service.DefaultConfig().MaxFileSize
	}
	return &Handler{
		svc:          svc,
		analyticsSvc: analyticsSvc,
		maxFileSize:  maxSize,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/resume/file")
	g.POST("/upload", ginx.S(h.Upload))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/update", ginx.BS[UpdateReq](h.Update))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/default", ginx.BS[IDReq](h.SetDefault))
	g.POST("/link", ginx.BS[LinkReq](h.Link))
	g.POST("/unlink", ginx.BS[LinkReq](h.Unlink))
	g.POST("/analytics", ginx.S(h.Analytics))
	g.POST("/url", ginx.BS[IDReq](h.URL))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Upload 表单字段：file、versionName、notes、isDefault、source
func (h *Handler) Upload(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxFileSize+multipartSlack)
	fh, err := ctx.FormFile("file")
	if err != nil {
		return validationResult, fmt.Errorf("读取上传文件失败 %w", err)
	}
	f, err := fh.Open()
	if err != nil {
		return systemErrorResult, fmt.Errorf("打开上传文件失败 %w", err)
	}
	defer f.Close()
	// 多读一个字节，超过上限的文件交给校验逻辑报错
	data, err := io.ReadAll(io.LimitReader(f, h.maxFileSize+1))
	if err != nil {
		return systemErrorResult, fmt.Errorf("读取上传文件失败 %w", err)
	}
	isDefault, _ := strconv.ParseBool(ctx.PostForm("isDefault"))
	r, err := h.svc.Upload(ctx.Request.Context(), sess.Claims().Uid, domain.File{
		Name:     fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, domain.Meta{
		VersionName: ctx.PostForm("versionName"),
		Notes:       ctx.PostForm("notes"),
		IsDefault:   isDefault,
		Source:      domain.Source(ctx.PostForm("source")),
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newResume(r)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	resumes, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, domain.ListFilter{
		Source:    domain.Source(req.Source),
		IsDefault: req.IsDefault,
		Keyword:   req.Keyword,
		SortBy:    domain.SortField(req.SortBy),
		Desc:      req.Desc,
		Offset:    req.Offset,
		Limit:     req.Limit,
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			List:  newResumes(resumes),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Get(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newResume(r)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.UpdateMeta(ctx.Request.Context(), sess.Claims().Uid, req.ID, domain.Meta{
		VersionName: req.VersionName,
		Notes:       req.Notes,
		IsDefault:   req.IsDefault,
		Source:      domain.Source(req.Source),
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newResume(r)}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SetDefault(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetDefault(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Link(ctx *ginx.Context, req LinkReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Link(ctx.Request.Context(), sess.Claims().Uid, req.ResumeID, req.ApplicationID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Unlink(ctx *ginx.Context, req LinkReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unlink(ctx.Request.Context(), sess.Claims().Uid, req.ResumeID, req.ApplicationID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Analytics(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a, err := h.analyticsSvc.Analytics(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newAnalyticsVO(a)}, nil
}

func (h *Handler) URL(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	url, err := h.svc.DownloadURL(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: url}, nil
}
