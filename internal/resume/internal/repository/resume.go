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

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository/cache"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrResumeNotFound       = dao.ErrRecordNotFound
	ErrDuplicateVersionName = dao.ErrDuplicateVersionName
	ErrAnalyticsNotFound    = cache.ErrAnalyticsNotFound
)

//go:generate mockgen -source=./resume.go -package=resumemocks -destination=../../mocks/repository.mock.go ResumeRepository
type ResumeRepository interface {
	// Create 创建一条还没有提交的简历记录
	Create(ctx context.Context, r domain.Resume) (int64, error)
	Commit(ctx context.Context, uid, id int64, path string, isDefault bool) error
	Delete(ctx context.Context, uid, id int64) error
	DeleteUncommitted(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, uid, id int64) (domain.Resume, error)
	VersionNameExists(ctx context.Context, uid int64, name string) (bool, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Resume, error)
	// FindAll 某个用户全部已经提交的简历
	FindAll(ctx context.Context, uid int64) ([]domain.Resume, error)
	Find(ctx context.Context, uid int64, filter domain.ListFilter) ([]domain.Resume, error)
	Count(ctx context.Context, uid int64, filter domain.ListFilter) (int64, error)
	FindCreatedBefore(ctx context.Context, ctime, afterID int64, limit int) ([]domain.Resume, error)
	UpdateMeta(ctx context.Context, r domain.Resume) error
	SetDefault(ctx context.Context, uid, id int64) error
	Link(ctx context.Context, uid, resumeID, applicationID int64) error
	Unlink(ctx context.Context, uid, resumeID, applicationID int64) error
	ResumeOwnedBy(ctx context.Context, uid, id int64) (bool, error)
	ApplicationOwnedBy(ctx context.Context, uid, id int64) (bool, error)

	GetAnalytics(ctx context.Context, uid int64) (domain.Analytics, error)
	SetAnalytics(ctx context.Context, uid int64, a domain.Analytics) error
}

// CachedResumeRepository 写操作成功之后会清掉统计数据的缓存
type CachedResumeRepository struct {
	dao    dao.ResumeDAO
	cache  cache.AnalyticsCache
	logger *elog.Component
}

func NewCachedResumeRepository(d dao.ResumeDAO, c cache.AnalyticsCache) ResumeRepository {
	return &CachedResumeRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("resume.repository")),
	}
}

func (repo *CachedResumeRepository) Create(ctx context.Context, r domain.Resume) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(r))
}

func (repo *CachedResumeRepository) Commit(ctx context.Context, uid, id int64, path string, isDefault bool) error {
	err := repo.dao.Commit(ctx, uid, id, path, isDefault)
	repo.invalidate(ctx, uid, err)
	return err
}

func (repo *CachedResumeRepository) Delete(ctx context.Context, uid, id int64) error {
	err := repo.dao.Delete(ctx, uid, id)
	repo.invalidate(ctx, uid, err)
	return err
}

func (repo *CachedResumeRepository) DeleteUncommitted(ctx context.Context, id int64) (bool, error) {
	cnt, err := repo.dao.DeleteUncommitted(ctx, id)
	return cnt > 0, err
}

func (repo *CachedResumeRepository) FindByID(ctx context.Context, uid, id int64) (domain.Resume, error) {
	r, err := repo.dao.FindByID(ctx, uid, id)
	if err != nil {
		return domain.Resume{}, err
	}
	return repo.toDomain(r), nil
}

func (repo *CachedResumeRepository) VersionNameExists(ctx context.Context, uid int64, name string) (bool, error) {
	_, err := repo.dao.FindByVersionName(ctx, uid, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (repo *CachedResumeRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Resume, error) {
	res, err := repo.dao.FindByIDs(ctx, ids)
	return repo.toDomains(res), err
}

func (repo *CachedResumeRepository) FindAll(ctx context.Context, uid int64) ([]domain.Resume, error) {
	res, err := repo.dao.FindAll(ctx, uid)
	return repo.toDomains(res), err
}

func (repo *CachedResumeRepository) Find(ctx context.Context, uid int64, filter domain.ListFilter) ([]domain.Resume, error) {
	res, err := repo.dao.Find(ctx, uid, repo.toQuery(filter))
	return repo.toDomains(res), err
}

func (repo *CachedResumeRepository) Count(ctx context.Context, uid int64, filter domain.ListFilter) (int64, error) {
	return repo.dao.Count(ctx, uid, repo.toQuery(filter))
}

func (repo *CachedResumeRepository) FindCreatedBefore(ctx context.Context, ctime, afterID int64, limit int) ([]domain.Resume, error) {
	res, err := repo.dao.FindCreatedBefore(ctx, ctime, afterID, limit)
	return repo.toDomains(res), err
}

func (repo *CachedResumeRepository) UpdateMeta(ctx context.Context, r domain.Resume) error {
	err := repo.dao.UpdateMeta(ctx, repo.toEntity(r))
	repo.invalidate(ctx, r.Uid, err)
	return err
}

func (repo *CachedResumeRepository) SetDefault(ctx context.Context, uid, id int64) error {
	err := repo.dao.SetDefault(ctx, uid, id)
	repo.invalidate(ctx, uid, err)
	return err
}

func (repo *CachedResumeRepository) Link(ctx context.Context, uid, resumeID, applicationID int64) error {
	err := repo.dao.Link(ctx, uid, resumeID, applicationID)
	repo.invalidate(ctx, uid, err)
	return err
}

func (repo *CachedResumeRepository) Unlink(ctx context.Context, uid, resumeID, applicationID int64) error {
	err := repo.dao.Unlink(ctx, uid, resumeID, applicationID)
	repo.invalidate(ctx, uid, err)
	return err
}

func (repo *CachedResumeRepository) ResumeOwnedBy(ctx context.Context, uid, id int64) (bool, error) {
	return repo.dao.ResumeOwnedBy(ctx, uid, id)
}

func (repo *CachedResumeRepository) ApplicationOwnedBy(ctx context.Context, uid, id int64) (bool, error) {
	return repo.dao.ApplicationOwnedBy(ctx, uid, id)
}

func (repo *CachedResumeRepository) GetAnalytics(ctx context.Context, uid int64) (domain.Analytics, error) {
	return repo.cache.Get(ctx, uid)
}

func (repo *CachedResumeRepository) SetAnalytics(ctx context.Context, uid int64, a domain.Analytics) error {
	return repo.cache.Set(ctx, uid, a)
}

// invalidate 缓存删除失败不影响业务，最多就是统计数据晚一点更新
func (repo *CachedResumeRepository) invalidate(ctx context.Context, uid int64, opErr error) {
	if opErr != nil {
		return
	}
	if err := repo.cache.Delete(ctx, uid); err != nil {
		repo.logger.Error("删除简历统计缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
}

func (repo *CachedResumeRepository) toQuery(f domain.ListFilter) dao.ResumeQuery {
	q := dao.ResumeQuery{
		Source:  f.Source.String(),
		Keyword: f.Keyword,
		OrderBy: string(f.SortBy),
		Desc:    f.Desc,
		Offset:  f.Offset,
		Limit:   f.Limit,
	}
	if f.IsDefault != nil {
		q.IsDefault = sql.NullBool{Bool: *f.IsDefault, Valid: true}
	}
	return q
}

func (repo *CachedResumeRepository) toDomains(rs []dao.Resume) []domain.Resume {
	return slice.Map(rs, func(_ int, src dao.Resume) domain.Resume {
		return repo.toDomain(src)
	})
}

func (repo *CachedResumeRepository) toDomain(r dao.Resume) domain.Resume {
	return domain.Resume{
		ID:               r.ID,
		Uid:              r.Uid,
		VersionName:      r.VersionName,
		FileName:         r.FileName,
		StoragePath:      r.StoragePath,
		MimeType:         r.MimeType,
		FileSize:         r.FileSize,
		Source:           domain.Source(r.Source),
		UploadDate:       r.UploadDate,
		LastUsedDate:     r.LastUsedDate.Int64,
		ApplicationCount: r.ApplicationCount,
		IsDefault:        r.IsDefault,
		Notes:            r.Notes,
		Ctime:            r.Ctime,
		Utime:            r.Utime,
	}
}

func (repo *CachedResumeRepository) toEntity(r domain.Resume) dao.Resume {
	return dao.Resume{
		ID:          r.ID,
		Uid:         r.Uid,
		VersionName: r.VersionName,
		FileName:    r.FileName,
		StoragePath: r.StoragePath,
		MimeType:    r.MimeType,
		FileSize:    r.FileSize,
		Source:      r.Source.String(),
		UploadDate:  r.UploadDate,
		LastUsedDate: sql.NullInt64{
			Int64: r.LastUsedDate,
			Valid: r.LastUsedDate > 0,
		},
		ApplicationCount: r.ApplicationCount,
		IsDefault:        r.IsDefault,
		Notes:            r.Notes,
	}
}
