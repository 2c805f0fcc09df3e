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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 没有匹配到路由的请求统一记到这个 path 下面，避免标签爆炸
const unmatchedPath = "unmatched"

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder reg 为 nil 的时候注册到默认的 Registerer
func NewMetricsBuilder(reg prometheus.Registerer, namespace string) *MetricsBuilder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		summaryVec: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 请求耗时，单位秒",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP 请求总数",
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.summaryVec.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
