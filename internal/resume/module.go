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

package resume

import (
	"time"

	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/job"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/service"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/web"
)

type Module struct {
	Hdl          *Handler
	Svc          Service
	AnalyticsSvc AnalyticsService
	ReconcileJob *ReconcileJob
}

type (
	Handler          = web.Handler
	Service          = service.ResumeService
	AnalyticsService = service.AnalyticsService
	ReconcileJob     = job.ReconcileJob
	Resume           = domain.Resume
	Analytics        = domain.Analytics

	UploadConfig    = service.Config
	AnalyticsConfig = service.AnalyticsConfig
)

type ReconcileConfig struct {
	// Delay 只对账这么久之前创建的数据
	Delay     time.Duration `yaml:"delay"`
	BatchSize int           `yaml:"batchSize"`
}

// Config 对应配置文件里的 resume 节点
type Config struct {
	Upload    UploadConfig    `yaml:"upload"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	CacheTTL  time.Duration   `yaml:"cacheTTL"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
}

func DefaultConfig() Config {
	return Config{
		Upload:    service.DefaultConfig(),
		Analytics: service.DefaultAnalyticsConfig(),
		CacheTTL:  10 * time.Minute,
		Reconcile: ReconcileConfig{
			Delay:     time.Hour,
			BatchSize: 100,
		},
	}
}
