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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	selectApplication = "SELECT \\* FROM `job_applications` WHERE id = \\? AND uid = \\? .*FOR UPDATE"
	incrResume        = "UPDATE `resumes` SET `application_count`=`application_count` \\+ 1,`last_used_date`=\\?,`utime`=\\? WHERE id = \\? AND uid = \\?"
	// 减计数的时候不能动 last_used_date
	decrResume       = "UPDATE `resumes` SET `application_count`=CASE WHEN `application_count` > 0 THEN `application_count` - 1 ELSE 0 END,`utime`=\\? WHERE"
	updateAppResume  = "UPDATE `job_applications` SET `resume_id`=\\?,`utime`=\\? WHERE id = \\?"
	clearAppResume   = "UPDATE `job_applications` SET `resume_id`=\\?,`utime`=\\? WHERE id = \\? AND uid = \\? AND resume_id = \\?"
	lockResume       = "SELECT `id` FROM `resumes` WHERE id = \\? AND uid = \\? AND storage_path <> '' .*FOR UPDATE"
	clearDefault     = "UPDATE `resumes` SET `is_default`=\\?,`utime`=\\? WHERE uid = \\? AND id <> \\? AND is_default = \\?"
	applicationField = "resume_id"
)

func newTestDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func applicationRows(resumeID any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "uid", applicationField}).AddRow(3, 1, resumeID)
}

func TestGORMResumeDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  int64
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `resumes` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				return mockDB
			},
			wantID: 3,
		},
		{
			name: "版本名冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `resumes` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				return mockDB
			},
			wantErr: ErrDuplicateVersionName,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `resumes` .*").
					WillReturnError(errors.New("数据库错误"))
				return mockDB
			},
			wantErr: errors.New("数据库错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMResumeDAO(newTestDB(t, tc.mock(t)))
			id, err := d.Create(context.Background(), Resume{Uid: 1, VersionName: "v1", Source: "UPLOAD"})
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestGORMResumeDAO_Link(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "第一次关联",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectApplication).WillReturnRows(applicationRows(nil))
				mock.ExpectExec(incrResume).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(updateAppResume).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "重复关联同一份简历",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectApplication).WillReturnRows(applicationRows(2))
				mock.ExpectCommit()
			},
		},
		{
			name: "换成另外一份简历",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectApplication).WillReturnRows(applicationRows(5))
				mock.ExpectExec(decrResume).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(incrResume).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(updateAppResume).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "投递记录不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectApplication).
					WillReturnRows(sqlmock.NewRows([]string{"id", "uid", applicationField}))
				mock.ExpectRollback()
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "简历不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectApplication).WillReturnRows(applicationRows(nil))
				mock.ExpectExec(incrResume).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewGORMResumeDAO(newTestDB(t, mockDB))
			err = d.Link(context.Background(), 1, 2, 3)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMResumeDAO_Unlink(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "解除关联",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(clearAppResume).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(decrResume).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "投递记录没有关联这份简历不减计数",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(clearAppResume).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name: "计数已经是 0",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(clearAppResume).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(decrResume).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name: "数据库错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(clearAppResume).WillReturnError(errors.New("数据库错误"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("数据库错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewGORMResumeDAO(newTestDB(t, mockDB))
			err = d.Unlink(context.Background(), 1, 2, 3)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMResumeDAO_Commit(t *testing.T) {
	testCases := []struct {
		name      string
		isDefault bool
		mock      func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "提交",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `resumes` SET `storage_path`=\\?,`utime`=\\? WHERE id = \\? AND uid = \\? AND storage_path = ''").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:      "提交并设置为默认简历",
			isDefault: true,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `resumes` SET `is_default`=\\?,`utime`=\\? WHERE uid = \\? AND id <> \\? AND is_default = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `resumes` SET `is_default`=\\?,`storage_path`=\\?,`utime`=\\? WHERE id = \\? AND uid = \\? AND storage_path = ''").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "已经提交过",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `resumes` SET .*").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewGORMResumeDAO(newTestDB(t, mockDB))
			err = d.Commit(context.Background(), 1, 2, "resumes/1/2-a.pdf", tc.isDefault)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMResumeDAO_SetDefault(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "设置默认简历",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockResume).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectExec(clearDefault).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `resumes` SET `is_default`=\\?,`utime`=\\? WHERE id = \\? AND uid = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "已经是默认简历",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockResume).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectExec(clearDefault).WillReturnResult(sqlmock.NewResult(0, 0))
				// 同一毫秒内重复设置，没有行真正变化
				mock.ExpectExec("UPDATE `resumes` SET `is_default`=\\?,`utime`=\\? WHERE id = \\? AND uid = \\?").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name: "简历不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockResume).WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewGORMResumeDAO(newTestDB(t, mockDB))
			err = d.SetDefault(context.Background(), 1, 2)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMResumeDAO_UpdateMeta(t *testing.T) {
	const updateMeta = "UPDATE `resumes` SET `is_default`=\\?,`notes`=\\?,`source`=\\?,`utime`=\\?,`version_name`=\\? WHERE id = \\? AND uid = \\?"
	testCases := []struct {
		name      string
		isDefault bool
		mock      func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "内容没有变化",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockResume).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectExec(updateMeta).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name:      "设置为默认简历",
			isDefault: true,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockResume).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectExec(clearDefault).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(updateMeta).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "版本名冲突",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockResume).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectExec(updateMeta).WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
			},
			wantErr: ErrDuplicateVersionName,
		},
		{
			name: "未提交的简历",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockResume).WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewGORMResumeDAO(newTestDB(t, mockDB))
			err = d.UpdateMeta(context.Background(), Resume{
				ID:          2,
				Uid:         1,
				VersionName: "v1",
				Source:      "UPLOAD",
				IsDefault:   tc.isDefault,
			})
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_a\\b`, escapeLike(`100%_a\b`))
}
