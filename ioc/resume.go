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
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobtracker/internal/pkg/storage"
	"github.com/ecodeclub/jobtracker/internal/resume"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

// InitResumeConfig 配置文件里没有写的字段使用默认值
func InitResumeConfig() resume.Config {
	cfg := resume.DefaultConfig()
	if err := econf.UnmarshalKey("resume", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitResumeModule(db *egorm.Component, ec ecache.Cache, store storage.Storage, cfg resume.Config) *resume.Module {
	return resume.InitModule(db, ec, store, cfg)
}

func InitResumeHandler(m *resume.Module) *resume.Handler {
	return m.Hdl
}

func InitResumeReconcileJob(m *resume.Module) *resume.ReconcileJob {
	return m.ReconcileJob
}
