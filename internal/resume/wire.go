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

//go:build wireinject

package resume

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobtracker/internal/pkg/storage"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/job"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository/cache"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/service"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, store storage.Storage, cfg Config) *Module {
	wire.Build(
		initDAO,
		initCache,
		repository.NewCachedResumeRepository,
		wire.Bind(new(service.OwnershipVerifier), new(repository.ResumeRepository)),
		wire.FieldsOf(new(Config), "Upload", "Analytics"),
		service.NewResumeService,
		service.NewAnalyticsService,
		service.NewReconciler,
		initReconcileJob,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.ResumeDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMResumeDAO(db)
}

func initCache(ec ecache.Cache, cfg Config) cache.AnalyticsCache {
	return cache.NewAnalyticsCache(ec, cfg.CacheTTL)
}

func initReconcileJob(svc service.Reconciler, cfg Config) *job.ReconcileJob {
	return job.NewReconcileJob(svc, cfg.Reconcile.Delay, cfg.Reconcile.BatchSize)
}
