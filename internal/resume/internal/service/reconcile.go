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
	"fmt"
	"time"

	"github.com/ecodeclub/jobtracker/internal/pkg/storage"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

type ReconcileResult struct {
	Scanned int
	// DeletedRecords 两阶段创建中途崩溃留下的、没有文件路径的记录
	DeletedRecords int
	// BrokenRecords 记录还在但是文件已经没了，只记录日志
	BrokenRecords int
	// DeletedFiles 没有记录引用的文件
	DeletedFiles int
}

type Reconciler interface {
	// Reconcile 只处理 before 之前创建的记录和文件，避免干扰正在进行的上传
	Reconcile(ctx context.Context, before time.Time, batchSize int) (ReconcileResult, error)
}

type reconciler struct {
	repo   repository.ResumeRepository
	store  storage.Storage
	logger *elog.Component
}

func NewReconciler(repo repository.ResumeRepository, store storage.Storage) Reconciler {
	return &reconciler{
		repo:   repo,
		store:  store,
		logger: elog.DefaultLogger.With(elog.FieldComponent("resume.reconciler")),
	}
}

func (r *reconciler) Reconcile(ctx context.Context, before time.Time, batchSize int) (ReconcileResult, error) {
	if batchSize <= 0 {
		batchSize = defaultPageSize
	}
	var res ReconcileResult
	if err := r.reconcileRecords(ctx, before, batchSize, &res); err != nil {
		return res, err
	}
	walker, ok := r.store.(storage.Walker)
	if !ok {
		return res, nil
	}
	return res, r.reconcileFiles(ctx, walker, before, batchSize, &res)
}

func (r *reconciler) reconcileRecords(ctx context.Context, before time.Time, batchSize int, res *ReconcileResult) error {
	var afterID int64
	for {
		resumes, err := r.repo.FindCreatedBefore(ctx, before.UnixMilli(), afterID, batchSize)
		if err != nil {
			return fmt.Errorf("查找简历记录失败: %w", err)
		}
		for _, rs := range resumes {
			res.Scanned++
			afterID = rs.ID
			if !rs.Committed() {
				deleted, err1 := r.repo.DeleteUncommitted(ctx, rs.ID)
				if err1 != nil {
					r.logger.Warn("删除未提交的简历记录失败", elog.FieldErr(err1), elog.Int64("resumeId", rs.ID))
					continue
				}
				if deleted {
					res.DeletedRecords++
				}
				continue
			}
			exists, err1 := r.store.Exists(ctx, rs.StoragePath)
			if err1 != nil {
				r.logger.Warn("检查简历文件失败", elog.FieldErr(err1), elog.Int64("resumeId", rs.ID))
				continue
			}
			if !exists {
				res.BrokenRecords++
				r.logger.Warn("简历文件丢失",
					elog.Int64("uid", rs.Uid),
					elog.Int64("resumeId", rs.ID),
					elog.String("path", rs.StoragePath))
			}
		}
		if len(resumes) < batchSize {
			return nil
		}
	}
}

type orphanCandidate struct {
	path     string
	uid      int64
	resumeID int64
}

func (r *reconciler) reconcileFiles(ctx context.Context, walker storage.Walker, before time.Time, batchSize int, res *ReconcileResult) error {
	batch := make([]orphanCandidate, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		ids := make([]int64, 0, len(batch))
		for _, c := range batch {
			ids = append(ids, c.resumeID)
		}
		resumes, err := r.repo.FindByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("查找简历记录失败: %w", err)
		}
		owners := make(map[int64]domain.Resume, len(resumes))
		for _, rs := range resumes {
			owners[rs.ID] = rs
		}
		for _, c := range batch {
			rs, ok := owners[c.resumeID]
			if ok && rs.Uid == c.uid && rs.StoragePath == c.path {
				continue
			}
			if err = r.store.Delete(ctx, c.path); err != nil {
				r.logger.Warn("删除孤儿文件失败", elog.FieldErr(err), elog.String("path", c.path))
				continue
			}
			res.DeletedFiles++
			r.logger.Info("删除孤儿文件", elog.String("path", c.path))
		}
		batch = batch[:0]
		return nil
	}
	err := walker.Walk(ctx, storage.KeyPrefix+"/", func(path string, stat storage.FileStat) error {
		if !stat.ModTime.Before(before) {
			return nil
		}
		uid, resumeID, ok := storage.ParseObjectKey(path)
		if !ok {
			return nil
		}
		batch = append(batch, orphanCandidate{path: path, uid: uid, resumeID: resumeID})
		if len(batch) >= batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("遍历简历文件失败: %w", err)
	}
	return flush()
}
