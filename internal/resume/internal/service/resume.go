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

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobtracker/internal/pkg/filevalidator"
	"github.com/ecodeclub/jobtracker/internal/pkg/storage"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// 和 resumes.version_name 的列宽一致
	maxVersionNameLen = 128
)

// OwnershipVerifier 判断资源是否属于某个用户
//
//go:generate mockgen -source=./resume.go -package=resumemocks -destination=../../mocks/service.mock.go OwnershipVerifier ResumeService
type OwnershipVerifier interface {
	ResumeOwnedBy(ctx context.Context, uid, id int64) (bool, error)
	ApplicationOwnedBy(ctx context.Context, uid, id int64) (bool, error)
}

type ResumeService interface {
	// Upload 先建记录再存文件最后回填路径，任何一步失败都会撤销之前的步骤
	Upload(ctx context.Context, uid int64, file domain.File, meta domain.Meta) (domain.Resume, error)
	List(ctx context.Context, uid int64, filter domain.ListFilter) ([]domain.Resume, int64, error)
	Get(ctx context.Context, uid, id int64) (domain.Resume, error)
	UpdateMeta(ctx context.Context, uid, id int64, meta domain.Meta) (domain.Resume, error)
	// Delete 文件删不掉也会继续删除记录
	Delete(ctx context.Context, uid, id int64) error
	SetDefault(ctx context.Context, uid, id int64) error
	Link(ctx context.Context, uid, resumeID, applicationID int64) error
	Unlink(ctx context.Context, uid, resumeID, applicationID int64) error
	DownloadURL(ctx context.Context, uid, id int64) (string, error)
}

type RetryConfig struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	MaxRetries      int32         `yaml:"maxRetries"`
}

type Config struct {
	MaxFileSize        int64 `yaml:"maxFileSize"`
	SkipStructureCheck bool  `yaml:"skipStructureCheck"`
	// Compensation 补偿操作失败之后的重试策略
	Compensation RetryConfig `yaml:"compensation"`
}

func DefaultConfig() Config {
	return Config{
		MaxFileSize: filevalidator.DefaultMaxSize,
		Compensation: RetryConfig{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			MaxRetries:      3,
		},
	}
}

type resumeService struct {
	repo     repository.ResumeRepository
	store    storage.Storage
	verifier OwnershipVerifier
	cfg      Config
	logger   *elog.Component
}

func NewResumeService(repo repository.ResumeRepository,
	store storage.Storage,
	verifier OwnershipVerifier,
	cfg Config) ResumeService {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = filevalidator.DefaultMaxSize
	}
	return &resumeService{
		repo:     repo,
		store:    store,
		verifier: verifier,
		cfg:      cfg,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("resume.service")),
	}
}

func (s *resumeService) Upload(ctx context.Context, uid int64, file domain.File, meta domain.Meta) (domain.Resume, error) {
	// Requested
	res := filevalidator.Validate(file.Data, file.MimeType, file.Name, filevalidator.Options{
		MaxSize:            s.cfg.MaxFileSize,
		SkipStructureCheck: s.cfg.SkipStructureCheck,
	})
	if !res.IsValid {
		uploadCounter.WithLabelValues("invalid").Inc()
		return domain.Resume{}, &ValidationError{Errors: res.Errors, Warnings: res.Warnings}
	}
	if meta.Source == "" {
		meta.Source = domain.SourceUpload
	}
	if !meta.Source.Valid() {
		uploadCounter.WithLabelValues("invalid").Inc()
		return domain.Resume{}, newValidationError(fmt.Sprintf("未知的简历来源 %q", meta.Source))
	}

	versionName := strings.TrimSpace(meta.VersionName)
	if versionName == "" {
		versionName = defaultVersionName(res.SanitizedFileName)
	} else {
		if err := s.checkVersionName(ctx, uid, versionName); err != nil {
			uploadCounter.WithLabelValues(resultOf(err)).Inc()
			return domain.Resume{}, err
		}
	}

	now := time.Now().UnixMilli()
	r := domain.Resume{
		Uid:         uid,
		VersionName: versionName,
		FileName:    res.SanitizedFileName,
		MimeType:    filevalidator.NormalizeMimeType(file.MimeType),
		FileSize:    res.FileSize,
		Source:      meta.Source,
		UploadDate:  now,
		Notes:       meta.Notes,
	}
	id, err := s.repo.Create(ctx, r)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateVersionName) {
			uploadCounter.WithLabelValues("conflict").Inc()
			return domain.Resume{}, fmt.Errorf("%w: %s", ErrConflict, versionName)
		}
		uploadCounter.WithLabelValues("internal").Inc()
		return domain.Resume{}, fmt.Errorf("%w: 创建简历记录失败 %w", ErrInternal, err)
	}
	// RecordCreated
	r.ID = id
	logger := s.logger.With(elog.Int64("uid", uid), elog.Int64("resumeId", id))

	up, err := s.store.Upload(ctx, file.Data, uid, id, res.SanitizedFileName)
	if err != nil {
		logger.Error("保存简历文件失败，撤销简历记录", elog.FieldErr(err))
		s.compensate(ctx, logger, actionDeleteRecord, func(ctx context.Context) error {
			return s.deleteRecord(ctx, uid, id)
		})
		uploadCounter.WithLabelValues("storage_failed").Inc()
		return domain.Resume{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	// FileStored

	err = s.repo.Commit(ctx, uid, id, up.Path, meta.IsDefault)
	if err != nil {
		logger.Error("回填简历文件路径失败，撤销文件和记录",
			elog.FieldErr(err),
			elog.String("path", up.Path))
		s.compensate(ctx, logger, actionDeleteFile, func(ctx context.Context) error {
			err := s.store.Delete(ctx, up.Path)
			if errors.Is(err, storage.ErrFileNotFound) {
				return nil
			}
			return err
		})
		s.compensate(ctx, logger, actionDeleteRecord, func(ctx context.Context) error {
			return s.deleteRecord(ctx, uid, id)
		})
		uploadCounter.WithLabelValues("commit_failed").Inc()
		return domain.Resume{}, fmt.Errorf("%w: 回填简历文件路径失败 %w", ErrInternal, err)
	}
	// Committed
	r.StoragePath = up.Path
	r.FileSize = up.Size
	r.IsDefault = meta.IsDefault
	uploadCounter.WithLabelValues("success").Inc()
	if len(res.Warnings) > 0 {
		logger.Info("简历文件校验有警告", elog.Any("warnings", res.Warnings))
	}
	return r, nil
}

func (s *resumeService) deleteRecord(ctx context.Context, uid, id int64) error {
	err := s.repo.Delete(ctx, uid, id)
	if errors.Is(err, repository.ErrResumeNotFound) {
		return nil
	}
	return err
}

// compensate 补偿操作不受请求取消的影响，失败了会按照退避策略重试，
// 最终失败只记录日志，留给对账任务处理
func (s *resumeService) compensate(ctx context.Context, logger *elog.Component, action string, fn func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.cfg.Compensation.InitialInterval,
		s.cfg.Compensation.MaxInterval, s.cfg.Compensation.MaxRetries)
	if err != nil {
		// 配置不合法的时候只执行一次
		strategy = nil
	}
	for {
		err = fn(ctx)
		if err == nil {
			compensationCounter.WithLabelValues(action, "success").Inc()
			return
		}
		if strategy == nil {
			break
		}
		d, ok := strategy.Next()
		if !ok {
			break
		}
		time.Sleep(d)
	}
	compensationCounter.WithLabelValues(action, "failed").Inc()
	logger.Error("补偿操作失败", elog.String("action", action), elog.FieldErr(err))
}

func (s *resumeService) checkVersionName(ctx context.Context, uid int64, name string) error {
	if len(name) > maxVersionNameLen {
		return newValidationError(fmt.Sprintf("版本名长度不能超过 %d", maxVersionNameLen))
	}
	exists, err := s.repo.VersionNameExists(ctx, uid, name)
	if err != nil {
		return fmt.Errorf("%w: 查询版本名失败 %w", ErrInternal, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrConflict, name)
	}
	return nil
}

func (s *resumeService) List(ctx context.Context, uid int64, filter domain.ListFilter) ([]domain.Resume, int64, error) {
	if filter.Source != "" && !filter.Source.Valid() {
		return nil, 0, newValidationError(fmt.Sprintf("未知的简历来源 %q", filter.Source))
	}
	filter = normalizeFilter(filter)
	var (
		eg      errgroup.Group
		resumes []domain.Resume
		total   int64
	)
	eg.Go(func() error {
		var err error
		resumes, err = s.repo.Find(ctx, uid, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, uid, filter)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, fmt.Errorf("%w: 查询简历列表失败 %w", ErrInternal, err)
	}
	return resumes, total, nil
}

func normalizeFilter(f domain.ListFilter) domain.ListFilter {
	if f.Offset < 0 {
		f.Offset = 0
	}
	switch {
	case f.Limit <= 0:
		f.Limit = defaultPageSize
	case f.Limit > maxPageSize:
		f.Limit = maxPageSize
	}
	if !f.SortBy.Valid() {
		f.SortBy = domain.SortByUploadDate
		f.Desc = true
	}
	f.Keyword = strings.TrimSpace(f.Keyword)
	return f
}

func (s *resumeService) Get(ctx context.Context, uid, id int64) (domain.Resume, error) {
	r, err := s.repo.FindByID(ctx, uid, id)
	if err != nil {
		return domain.Resume{}, s.translate(err)
	}
	// 还没提交的记录对用户不可见
	if !r.Committed() {
		return domain.Resume{}, ErrNotFound
	}
	return r, nil
}

func (s *resumeService) UpdateMeta(ctx context.Context, uid, id int64, meta domain.Meta) (domain.Resume, error) {
	r, err := s.Get(ctx, uid, id)
	if err != nil {
		return domain.Resume{}, err
	}
	name := strings.TrimSpace(meta.VersionName)
	if name != "" && name != r.VersionName {
		if err = s.checkVersionName(ctx, uid, name); err != nil {
			return domain.Resume{}, err
		}
		r.VersionName = name
	}
	if meta.Source != "" {
		if !meta.Source.Valid() {
			return domain.Resume{}, newValidationError(fmt.Sprintf("未知的简历来源 %q", meta.Source))
		}
		r.Source = meta.Source
	}
	r.Notes = meta.Notes
	r.IsDefault = meta.IsDefault
	err = s.repo.UpdateMeta(ctx, r)
	switch {
	case errors.Is(err, repository.ErrDuplicateVersionName):
		return domain.Resume{}, fmt.Errorf("%w: %s", ErrConflict, r.VersionName)
	case err != nil:
		return domain.Resume{}, s.translate(err)
	}
	return s.Get(ctx, uid, id)
}

func (s *resumeService) Delete(ctx context.Context, uid, id int64) error {
	r, err := s.repo.FindByID(ctx, uid, id)
	if err != nil {
		return s.translate(err)
	}
	logger := s.logger.With(elog.Int64("uid", uid), elog.Int64("resumeId", id))
	if r.StoragePath != "" {
		if err = s.store.Delete(ctx, r.StoragePath); err != nil {
			// 孤儿文件用户看不到，对账任务会清理
			logger.Warn("删除简历文件失败，继续删除简历记录",
				elog.FieldErr(err),
				elog.String("path", r.StoragePath))
		}
	}
	if err = s.repo.Delete(ctx, uid, id); err != nil {
		return s.translate(err)
	}
	return nil
}

func (s *resumeService) SetDefault(ctx context.Context, uid, id int64) error {
	return s.translate(s.repo.SetDefault(ctx, uid, id))
}

func (s *resumeService) Link(ctx context.Context, uid, resumeID, applicationID int64) error {
	if err := s.verifyOwnership(ctx, uid, resumeID, applicationID); err != nil {
		return err
	}
	return s.translate(s.repo.Link(ctx, uid, resumeID, applicationID))
}

func (s *resumeService) Unlink(ctx context.Context, uid, resumeID, applicationID int64) error {
	if err := s.verifyOwnership(ctx, uid, resumeID, applicationID); err != nil {
		return err
	}
	return s.translate(s.repo.Unlink(ctx, uid, resumeID, applicationID))
}

func (s *resumeService) verifyOwnership(ctx context.Context, uid, resumeID, applicationID int64) error {
	ok, err := s.verifier.ResumeOwnedBy(ctx, uid, resumeID)
	if err != nil {
		return fmt.Errorf("%w: 校验简历归属失败 %w", ErrInternal, err)
	}
	if !ok {
		return ErrNotFound
	}
	ok, err = s.verifier.ApplicationOwnedBy(ctx, uid, applicationID)
	if err != nil {
		return fmt.Errorf("%w: 校验投递记录归属失败 %w", ErrInternal, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *resumeService) DownloadURL(ctx context.Context, uid, id int64) (string, error) {
	r, err := s.Get(ctx, uid, id)
	if err != nil {
		return "", err
	}
	return s.store.PublicURL(r.StoragePath), nil
}

func (s *resumeService) translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrResumeNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

// defaultVersionName 没有指定版本名的时候用文件名加一个随机后缀
func defaultVersionName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if base == "" {
		base = filevalidator.PlaceholderFileName
	}
	if len(base) > 64 {
		base = base[:64]
	}
	return base + "-" + shortuuid.New()[:8]
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrValidation):
		return "invalid"
	default:
		return "internal"
	}
}
