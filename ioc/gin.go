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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobtracker/internal/pkg/middleware"
	"github.com/ecodeclub/jobtracker/internal/resume"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider, resumeHdl *resume.Handler) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	allowed := econf.GetStringSlice("web.allowOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range allowed {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder(nil, "jobtracker").Build())
	res.GET("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "OK")
	})
	resumeHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	resumeHdl.PrivateRoutes(res.Engine)
	return res
}
