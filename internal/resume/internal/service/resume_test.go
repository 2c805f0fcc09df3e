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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/jobtracker/internal/pkg/storage"
	storagemocks "github.com/ecodeclub/jobtracker/internal/pkg/storage/mocks"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository"
	resumemocks "github.com/ecodeclub/jobtracker/internal/resume/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pdfData = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

func testConfig() Config {
	return Config{
		MaxFileSize:        1 << 20,
		SkipStructureCheck: true,
		Compensation: RetryConfig{
			InitialInterval: time.Millisecond,
			MaxInterval:     2 * time.Millisecond,
			MaxRetries:      2,
		},
	}
}

func pdfFile() domain.File {
	return domain.File{Name: "My Resume.pdf", MimeType: "application/pdf", Data: pdfData}
}

func TestResumeService_Upload(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage)
		file domain.File
		meta domain.Meta

		wantErr  error
		wantPath string
		assert   func(t *testing.T, r domain.Resume)
	}{
		{
			name: "上传成功",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				store := storagemocks.NewMockStorage(ctrl)
				repo.EXPECT().VersionNameExists(gomock.Any(), int64(1), "v1").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Resume) (int64, error) {
						assert.Equal(t, "v1", r.VersionName)
						assert.Equal(t, "My_Resume.pdf", r.FileName)
						assert.Equal(t, domain.SourceUpload, r.Source)
						assert.Empty(t, r.StoragePath)
						return 11, nil
					})
				store.EXPECT().Upload(gomock.Any(), pdfData, int64(1), int64(11), "My_Resume.pdf").
					Return(storage.UploadResult{Path: "resumes/1/11-abc.pdf", Size: int64(len(pdfData))}, nil)
				repo.EXPECT().Commit(gomock.Any(), int64(1), int64(11), "resumes/1/11-abc.pdf", true).Return(nil)
				return repo, store
			},
			file:     pdfFile(),
			meta:     domain.Meta{VersionName: "v1", IsDefault: true},
			wantPath: "resumes/1/11-abc.pdf",
			assert: func(t *testing.T, r domain.Resume) {
				assert.Equal(t, int64(11), r.ID)
				assert.True(t, r.IsDefault)
				assert.Equal(t, int64(len(pdfData)), r.FileSize)
				assert.Equal(t, "application/pdf", r.MimeType)
			},
		},
		{
			name: "没有版本名自动生成",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				store := storagemocks.NewMockStorage(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(1), int64(12), gomock.Any()).
					Return(storage.UploadResult{Path: "resumes/1/12-abc.pdf", Size: 10}, nil)
				repo.EXPECT().Commit(gomock.Any(), int64(1), int64(12), "resumes/1/12-abc.pdf", false).Return(nil)
				return repo, store
			},
			file:     pdfFile(),
			meta:     domain.Meta{Source: domain.SourceGenerated},
			wantPath: "resumes/1/12-abc.pdf",
			assert: func(t *testing.T, r domain.Resume) {
				assert.True(t, strings.HasPrefix(r.VersionName, "My_Resume-"))
				assert.Equal(t, domain.SourceGenerated, r.Source)
			},
		},
		{
			name: "文件校验失败",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				return resumemocks.NewMockResumeRepository(ctrl), storagemocks.NewMockStorage(ctrl)
			},
			file:    domain.File{Name: "a.exe", MimeType: "application/x-msdownload", Data: []byte("MZ...")},
			wantErr: ErrValidation,
		},
		{
			name: "未知的来源",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				return resumemocks.NewMockResumeRepository(ctrl), storagemocks.NewMockStorage(ctrl)
			},
			file:    pdfFile(),
			meta:    domain.Meta{Source: "DROPBOX"},
			wantErr: ErrValidation,
		},
		{
			name: "版本名已存在",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().VersionNameExists(gomock.Any(), int64(1), "v1").Return(true, nil)
				return repo, storagemocks.NewMockStorage(ctrl)
			},
			file:    pdfFile(),
			meta:    domain.Meta{VersionName: "v1"},
			wantErr: ErrConflict,
		},
		{
			name: "并发上传撞上唯一索引",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().VersionNameExists(gomock.Any(), int64(1), "v1").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrDuplicateVersionName)
				return repo, storagemocks.NewMockStorage(ctrl)
			},
			file:    pdfFile(),
			meta:    domain.Meta{VersionName: "v1"},
			wantErr: ErrConflict,
		},
		{
			name: "创建记录失败",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))
				return repo, storagemocks.NewMockStorage(ctrl)
			},
			file:    pdfFile(),
			wantErr: ErrInternal,
		},
		{
			name: "存储失败删除记录",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				store := storagemocks.NewMockStorage(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(13), nil)
				store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(1), int64(13), gomock.Any()).
					Return(storage.UploadResult{}, errors.New("disk full"))
				repo.EXPECT().Delete(gomock.Any(), int64(1), int64(13)).Return(nil)
				return repo, store
			},
			file:    pdfFile(),
			wantErr: ErrStorage,
		},
		{
			name: "存储失败删除记录需要重试",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				store := storagemocks.NewMockStorage(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(14), nil)
				store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(1), int64(14), gomock.Any()).
					Return(storage.UploadResult{}, errors.New("disk full"))
				gomock.InOrder(
					repo.EXPECT().Delete(gomock.Any(), int64(1), int64(14)).Return(errors.New("db error")),
					repo.EXPECT().Delete(gomock.Any(), int64(1), int64(14)).Return(nil),
				)
				return repo, store
			},
			file:    pdfFile(),
			wantErr: ErrStorage,
		},
		{
			name: "回填路径失败删除文件和记录",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				store := storagemocks.NewMockStorage(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(15), nil)
				store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(1), int64(15), gomock.Any()).
					Return(storage.UploadResult{Path: "resumes/1/15-abc.pdf", Size: 10}, nil)
				repo.EXPECT().Commit(gomock.Any(), int64(1), int64(15), "resumes/1/15-abc.pdf", false).
					Return(errors.New("db error"))
				gomock.InOrder(
					store.EXPECT().Delete(gomock.Any(), "resumes/1/15-abc.pdf").Return(nil),
					repo.EXPECT().Delete(gomock.Any(), int64(1), int64(15)).Return(repository.ErrResumeNotFound),
				)
				return repo, store
			},
			file:    pdfFile(),
			wantErr: ErrInternal,
		},
		{
			name: "补偿一直失败也只返回原始错误",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				store := storagemocks.NewMockStorage(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(16), nil)
				store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(1), int64(16), gomock.Any()).
					Return(storage.UploadResult{}, errors.New("disk full"))
				// 第一次加上两次重试
				repo.EXPECT().Delete(gomock.Any(), int64(1), int64(16)).Return(errors.New("db error")).Times(3)
				return repo, store
			},
			file:    pdfFile(),
			wantErr: ErrStorage,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, store := tc.mock(ctrl)
			svc := NewResumeService(repo, store, resumemocks.NewMockOwnershipVerifier(ctrl), testConfig())
			r, err := svc.Upload(context.Background(), 1, tc.file, tc.meta)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantPath, r.StoragePath)
			if tc.assert != nil {
				tc.assert(t, r)
			}
		})
	}
}

func TestResumeService_UploadValidationDetails(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewResumeService(resumemocks.NewMockResumeRepository(ctrl),
		storagemocks.NewMockStorage(ctrl), resumemocks.NewMockOwnershipVerifier(ctrl), testConfig())
	_, err := svc.Upload(context.Background(), 1, domain.File{
		Name:     "run.exe.pdf",
		MimeType: "application/pdf",
		Data:     []byte("MZ not a pdf"),
	}, domain.Meta{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 3)
}

// 取消请求之后补偿仍然要执行
func TestResumeService_UploadCompensationIgnoresCancel(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := resumemocks.NewMockResumeRepository(ctrl)
	store := storagemocks.NewMockStorage(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(21), nil)
	store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(1), int64(21), gomock.Any()).
		DoAndReturn(func(ctx context.Context, data []byte, uid, id int64, name string) (storage.UploadResult, error) {
			cancel()
			return storage.UploadResult{}, context.Canceled
		})
	repo.EXPECT().Delete(gomock.Any(), int64(1), int64(21)).
		DoAndReturn(func(ctx context.Context, uid, id int64) error {
			return ctx.Err()
		})
	svc := NewResumeService(repo, store, resumemocks.NewMockOwnershipVerifier(ctrl), testConfig())
	_, err := svc.Upload(ctx, 1, pdfFile(), domain.Meta{})
	assert.ErrorIs(t, err, ErrStorage)
}

func TestResumeService_Get(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ResumeRepository
		wantRes domain.Resume
		wantErr error
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Resume{ID: 2, Uid: 1, StoragePath: "resumes/1/2-a.pdf"}, nil)
				return repo
			},
			wantRes: domain.Resume{ID: 2, Uid: 1, StoragePath: "resumes/1/2-a.pdf"},
		},
		{
			name: "未提交的记录不可见",
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Resume{ID: 2, Uid: 1}, nil)
				return repo
			},
			wantErr: ErrNotFound,
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Resume{}, repository.ErrResumeNotFound)
				return repo
			},
			wantErr: ErrNotFound,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Resume{}, errors.New("db error"))
				return repo
			},
			wantErr: ErrInternal,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewResumeService(tc.mock(ctrl), storagemocks.NewMockStorage(ctrl),
				resumemocks.NewMockOwnershipVerifier(ctrl), testConfig())
			r, err := svc.Get(context.Background(), 1, 2)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, r)
		})
	}
}

func TestResumeService_List(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		filter    domain.ListFilter
		mock      func(ctrl *gomock.Controller) repository.ResumeRepository
		wantTotal int64
		wantLen   int
		wantErr   error
	}{
		{
			name:   "使用默认分页和排序",
			filter: domain.ListFilter{Keyword: "  go  ", Limit: 1000},
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				want := domain.ListFilter{
					Keyword: "go",
					SortBy:  domain.SortByUploadDate,
					Desc:    true,
					Limit:   maxPageSize,
				}
				repo.EXPECT().Find(gomock.Any(), int64(1), want).
					Return([]domain.Resume{{ID: 1}, {ID: 2}}, nil)
				repo.EXPECT().Count(gomock.Any(), int64(1), want).Return(int64(2), nil)
				return repo
			},
			wantTotal: 2,
			wantLen:   2,
		},
		{
			name:   "来源不合法",
			filter: domain.ListFilter{Source: "FTP"},
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				return resumemocks.NewMockResumeRepository(ctrl)
			},
			wantErr: ErrValidation,
		},
		{
			name:   "统计失败",
			filter: domain.ListFilter{Limit: 10, SortBy: domain.SortByApplicationCount},
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Find(gomock.Any(), int64(1), gomock.Any()).Return(nil, nil)
				repo.EXPECT().Count(gomock.Any(), int64(1), gomock.Any()).Return(int64(0), errors.New("db error"))
				return repo
			},
			wantErr: ErrInternal,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewResumeService(tc.mock(ctrl), storagemocks.NewMockStorage(ctrl),
				resumemocks.NewMockOwnershipVerifier(ctrl), testConfig())
			rs, total, err := svc.List(context.Background(), 1, tc.filter)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantTotal, total)
			assert.Len(t, rs, tc.wantLen)
		})
	}
}

func TestResumeService_UpdateMeta(t *testing.T) {
	t.Parallel()
	committed := domain.Resume{ID: 2, Uid: 1, VersionName: "v1", StoragePath: "p", Source: domain.SourceUpload}
	testCases := []struct {
		name    string
		meta    domain.Meta
		mock    func(ctrl *gomock.Controller) repository.ResumeRepository
		wantErr error
	}{
		{
			name: "版本名不变不做检查",
			meta: domain.Meta{VersionName: "v1", Notes: "n", IsDefault: true},
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).Return(committed, nil).Times(2)
				want := committed
				want.Notes = "n"
				want.IsDefault = true
				repo.EXPECT().UpdateMeta(gomock.Any(), want).Return(nil)
				return repo
			},
		},
		{
			name: "新版本名冲突",
			meta: domain.Meta{VersionName: "v2"},
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).Return(committed, nil)
				repo.EXPECT().VersionNameExists(gomock.Any(), int64(1), "v2").Return(true, nil)
				return repo
			},
			wantErr: ErrConflict,
		},
		{
			name: "写入时撞上唯一索引",
			meta: domain.Meta{VersionName: "v2"},
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).Return(committed, nil)
				repo.EXPECT().VersionNameExists(gomock.Any(), int64(1), "v2").Return(false, nil)
				repo.EXPECT().UpdateMeta(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateVersionName)
				return repo
			},
			wantErr: ErrConflict,
		},
		{
			name: "来源不合法",
			meta: domain.Meta{Source: "FTP"},
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).Return(committed, nil)
				return repo
			},
			wantErr: ErrValidation,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewResumeService(tc.mock(ctrl), storagemocks.NewMockStorage(ctrl),
				resumemocks.NewMockOwnershipVerifier(ctrl), testConfig())
			_, err := svc.UpdateMeta(context.Background(), 1, 2, tc.meta)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestResumeService_Delete(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage)
		wantErr error
	}{
		{
			name: "删除成功",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				store := storagemocks.NewMockStorage(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Resume{ID: 2, Uid: 1, StoragePath: "resumes/1/2-a.pdf"}, nil)
				store.EXPECT().Delete(gomock.Any(), "resumes/1/2-a.pdf").Return(nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(nil)
				return repo, store
			},
		},
		{
			name: "文件删除失败仍然删除记录",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				store := storagemocks.NewMockStorage(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Resume{ID: 2, Uid: 1, StoragePath: "resumes/1/2-a.pdf"}, nil)
				store.EXPECT().Delete(gomock.Any(), "resumes/1/2-a.pdf").Return(errors.New("io error"))
				repo.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(nil)
				return repo, store
			},
		},
		{
			name: "未提交的记录没有文件",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Resume{ID: 2, Uid: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(nil)
				return repo, storagemocks.NewMockStorage(ctrl)
			},
		},
		{
			name: "不属于当前用户",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, storage.Storage) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Resume{}, repository.ErrResumeNotFound)
				return repo, storagemocks.NewMockStorage(ctrl)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, store := tc.mock(ctrl)
			svc := NewResumeService(repo, store, resumemocks.NewMockOwnershipVerifier(ctrl), testConfig())
			err := svc.Delete(context.Background(), 1, 2)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestResumeService_LinkUnlink(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		unlink  bool
		mock    func(ctrl *gomock.Controller) (repository.ResumeRepository, OwnershipVerifier)
		wantErr error
	}{
		{
			name: "关联成功",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, OwnershipVerifier) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				verifier := resumemocks.NewMockOwnershipVerifier(ctrl)
				verifier.EXPECT().ResumeOwnedBy(gomock.Any(), int64(1), int64(2)).Return(true, nil)
				verifier.EXPECT().ApplicationOwnedBy(gomock.Any(), int64(1), int64(3)).Return(true, nil)
				repo.EXPECT().Link(gomock.Any(), int64(1), int64(2), int64(3)).Return(nil)
				return repo, verifier
			},
		},
		{
			name:   "解除关联成功",
			unlink: true,
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, OwnershipVerifier) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				verifier := resumemocks.NewMockOwnershipVerifier(ctrl)
				verifier.EXPECT().ResumeOwnedBy(gomock.Any(), int64(1), int64(2)).Return(true, nil)
				verifier.EXPECT().ApplicationOwnedBy(gomock.Any(), int64(1), int64(3)).Return(true, nil)
				repo.EXPECT().Unlink(gomock.Any(), int64(1), int64(2), int64(3)).Return(nil)
				return repo, verifier
			},
		},
		{
			name: "简历不属于当前用户",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, OwnershipVerifier) {
				verifier := resumemocks.NewMockOwnershipVerifier(ctrl)
				verifier.EXPECT().ResumeOwnedBy(gomock.Any(), int64(1), int64(2)).Return(false, nil)
				return resumemocks.NewMockResumeRepository(ctrl), verifier
			},
			wantErr: ErrNotFound,
		},
		{
			name:   "投递记录不属于当前用户",
			unlink: true,
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, OwnershipVerifier) {
				verifier := resumemocks.NewMockOwnershipVerifier(ctrl)
				verifier.EXPECT().ResumeOwnedBy(gomock.Any(), int64(1), int64(2)).Return(true, nil)
				verifier.EXPECT().ApplicationOwnedBy(gomock.Any(), int64(1), int64(3)).Return(false, nil)
				return resumemocks.NewMockResumeRepository(ctrl), verifier
			},
			wantErr: ErrNotFound,
		},
		{
			name: "校验归属出错",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, OwnershipVerifier) {
				verifier := resumemocks.NewMockOwnershipVerifier(ctrl)
				verifier.EXPECT().ResumeOwnedBy(gomock.Any(), int64(1), int64(2)).Return(false, errors.New("db error"))
				return resumemocks.NewMockResumeRepository(ctrl), verifier
			},
			wantErr: ErrInternal,
		},
		{
			name: "关联时记录消失",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, OwnershipVerifier) {
				repo := resumemocks.NewMockResumeRepository(ctrl)
				verifier := resumemocks.NewMockOwnershipVerifier(ctrl)
				verifier.EXPECT().ResumeOwnedBy(gomock.Any(), int64(1), int64(2)).Return(true, nil)
				verifier.EXPECT().ApplicationOwnedBy(gomock.Any(), int64(1), int64(3)).Return(true, nil)
				repo.EXPECT().Link(gomock.Any(), int64(1), int64(2), int64(3)).Return(repository.ErrResumeNotFound)
				return repo, verifier
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, verifier := tc.mock(ctrl)
			svc := NewResumeService(repo, storagemocks.NewMockStorage(ctrl), verifier, testConfig())
			var err error
			if tc.unlink {
				err = svc.Unlink(context.Background(), 1, 2, 3)
			} else {
				err = svc.Link(context.Background(), 1, 2, 3)
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestResumeService_DownloadURL(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := resumemocks.NewMockResumeRepository(ctrl)
	store := storagemocks.NewMockStorage(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
		Return(domain.Resume{ID: 2, Uid: 1, StoragePath: "resumes/1/2-a.pdf"}, nil)
	store.EXPECT().PublicURL("resumes/1/2-a.pdf").Return("https://cdn.example.com/resumes/1/2-a.pdf")
	svc := NewResumeService(repo, store, resumemocks.NewMockOwnershipVerifier(ctrl), testConfig())
	url, err := svc.DownloadURL(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/resumes/1/2-a.pdf", url)
}
