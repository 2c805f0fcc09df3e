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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/jobtracker/internal/resume/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ReconcileJob 定期清理上传过程中崩溃留下的孤儿记录和孤儿文件
type ReconcileJob struct {
	svc service.Reconciler
	// 只处理这么久之前的数据
	delay     time.Duration
	batchSize int
	l         *elog.Component
}

func NewReconcileJob(svc service.Reconciler, delay time.Duration, batchSize int) *ReconcileJob {
	return &ReconcileJob{
		svc:       svc,
		delay:     delay,
		batchSize: batchSize,
		l:         elog.DefaultLogger,
	}
}

func (j *ReconcileJob) Name() string {
	return "resume_reconcile_job"
}

func (j *ReconcileJob) Run(ctx context.Context) error {
	res, err := j.svc.Reconcile(ctx, time.Now().Add(-j.delay), j.batchSize)
	j.l.Info("简历对账完成",
		elog.Int("scanned", res.Scanned),
		elog.Int("deletedRecords", res.DeletedRecords),
		elog.Int("brokenRecords", res.BrokenRecords),
		elog.Int("deletedFiles", res.DeletedFiles))
	return err
}
