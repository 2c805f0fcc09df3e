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
	"testing"

	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	cachemocks "github.com/ecodeclub/jobtracker/internal/resume/internal/repository/cache/mocks"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository/dao"
	daomocks "github.com/ecodeclub/jobtracker/internal/resume/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedResumeRepository_Invalidate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.ResumeDAO, *cachemocks.MockAnalyticsCache)
		call    func(repo ResumeRepository) error
		wantErr error
	}{
		{
			name: "关联成功清理缓存",
			mock: func(ctrl *gomock.Controller) (dao.ResumeDAO, *cachemocks.MockAnalyticsCache) {
				d := daomocks.NewMockResumeDAO(ctrl)
				c := cachemocks.NewMockAnalyticsCache(ctrl)
				d.EXPECT().Link(gomock.Any(), int64(1), int64(2), int64(3)).Return(nil)
				c.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
				return d, c
			},
			call: func(repo ResumeRepository) error {
				return repo.Link(context.Background(), 1, 2, 3)
			},
		},
		{
			name: "清理缓存失败不影响结果",
			mock: func(ctrl *gomock.Controller) (dao.ResumeDAO, *cachemocks.MockAnalyticsCache) {
				d := daomocks.NewMockResumeDAO(ctrl)
				c := cachemocks.NewMockAnalyticsCache(ctrl)
				d.EXPECT().Unlink(gomock.Any(), int64(1), int64(2), int64(3)).Return(nil)
				c.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("redis error"))
				return d, c
			},
			call: func(repo ResumeRepository) error {
				return repo.Unlink(context.Background(), 1, 2, 3)
			},
		},
		{
			name: "操作失败不清理缓存",
			mock: func(ctrl *gomock.Controller) (dao.ResumeDAO, *cachemocks.MockAnalyticsCache) {
				d := daomocks.NewMockResumeDAO(ctrl)
				d.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(dao.ErrRecordNotFound)
				return d, cachemocks.NewMockAnalyticsCache(ctrl)
			},
			call: func(repo ResumeRepository) error {
				return repo.Delete(context.Background(), 1, 2)
			},
			wantErr: ErrResumeNotFound,
		},
		{
			name: "提交清理缓存",
			mock: func(ctrl *gomock.Controller) (dao.ResumeDAO, *cachemocks.MockAnalyticsCache) {
				d := daomocks.NewMockResumeDAO(ctrl)
				c := cachemocks.NewMockAnalyticsCache(ctrl)
				d.EXPECT().Commit(gomock.Any(), int64(1), int64(2), "p", true).Return(nil)
				c.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
				return d, c
			},
			call: func(repo ResumeRepository) error {
				return repo.Commit(context.Background(), 1, 2, "p", true)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, c := tc.mock(ctrl)
			err := tc.call(NewCachedResumeRepository(d, c))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCachedResumeRepository_VersionNameExists(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		err        error
		wantExists bool
		wantErr    bool
	}{
		{name: "存在", wantExists: true},
		{name: "不存在", err: dao.ErrRecordNotFound},
		{name: "数据库错误", err: errors.New("db error"), wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := daomocks.NewMockResumeDAO(ctrl)
			d.EXPECT().FindByVersionName(gomock.Any(), int64(1), "v1").Return(dao.Resume{}, tc.err)
			repo := NewCachedResumeRepository(d, cachemocks.NewMockAnalyticsCache(ctrl))
			exists, err := repo.VersionNameExists(context.Background(), 1, "v1")
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantExists, exists)
		})
	}
}

func TestCachedResumeRepository_Find(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockResumeDAO(ctrl)
	isDefault := true
	d.EXPECT().Find(gomock.Any(), int64(1), dao.ResumeQuery{
		Source:    "UPLOAD",
		IsDefault: sql.NullBool{Bool: true, Valid: true},
		Keyword:   "go",
		OrderBy:   "application_count",
		Desc:      true,
		Limit:     10,
	}).Return([]dao.Resume{
		{ID: 2, Uid: 1, Source: "UPLOAD", LastUsedDate: sql.NullInt64{Int64: 100, Valid: true}},
		{ID: 3, Uid: 1, Source: "UPLOAD"},
	}, nil)
	repo := NewCachedResumeRepository(d, cachemocks.NewMockAnalyticsCache(ctrl))
	rs, err := repo.Find(context.Background(), 1, domain.ListFilter{
		Source:    domain.SourceUpload,
		IsDefault: &isDefault,
		Keyword:   "go",
		SortBy:    domain.SortByApplicationCount,
		Desc:      true,
		Limit:     10,
	})
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, int64(100), rs[0].LastUsedDate)
	assert.Equal(t, int64(0), rs[1].LastUsedDate)
	assert.Equal(t, domain.SourceUpload, rs[1].Source)
}

func TestCachedResumeRepository_DeleteUncommitted(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockResumeDAO(ctrl)
	d.EXPECT().DeleteUncommitted(gomock.Any(), int64(5)).Return(int64(0), nil)
	repo := NewCachedResumeRepository(d, cachemocks.NewMockAnalyticsCache(ctrl))
	deleted, err := repo.DeleteUncommitted(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, deleted)
}
