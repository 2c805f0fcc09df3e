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
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound       = gorm.ErrRecordNotFound
	ErrDuplicateVersionName = errors.New("同一个用户下简历版本名重复")
)

// 计数减到 0 为止
var decrApplicationCount = gorm.Expr("CASE WHEN `application_count` > 0 THEN `application_count` - 1 ELSE 0 END")

type Resume struct {
	ID          int64  `gorm:"primaryKey,autoIncrement"`
	Uid         int64  `gorm:"uniqueIndex:uid_version_name;not null"`
	VersionName string `gorm:"type:varchar(128);uniqueIndex:uid_version_name;not null"`
	FileName    string `gorm:"type:varchar(255);not null"`
	// 两阶段创建的中间状态下为空
	StoragePath      string `gorm:"type:varchar(512);not null;default:''"`
	MimeType         string `gorm:"type:varchar(128);not null;default:''"`
	FileSize         int64  `gorm:"not null;default:0"`
	Source           string `gorm:"type:ENUM('UPLOAD','GOOGLE_DRIVE','GENERATED');not null;default:'UPLOAD'"`
	UploadDate       int64  `gorm:"not null"`
	LastUsedDate     sql.NullInt64
	ApplicationCount int64  `gorm:"not null;default:0"`
	IsDefault        bool   `gorm:"not null;default:false"`
	Notes            string `gorm:"type:text"`
	Ctime            int64  `gorm:"index"`
	Utime            int64
}

func (Resume) TableName() string {
	return "resumes"
}

// JobApplication 这里只关心投递记录和简历的关联关系
type JobApplication struct {
	ID       int64         `gorm:"primaryKey,autoIncrement"`
	Uid      int64         `gorm:"index;not null"`
	Company  string        `gorm:"type:varchar(255);not null;default:''"`
	Position string        `gorm:"type:varchar(255);not null;default:''"`
	ResumeID sql.NullInt64 `gorm:"index"`
	Ctime    int64
	Utime    int64
}

func (JobApplication) TableName() string {
	return "job_applications"
}

type ResumeQuery struct {
	Source    string
	IsDefault sql.NullBool
	Keyword   string
	// OrderBy 只能是 orderColumns 里的列，否则按上传时间排
	OrderBy string
	Desc    bool
	Offset  int
	Limit   int
}

var orderColumns = map[string]string{
	"upload_date":       "upload_date",
	"last_used_date":    "last_used_date",
	"application_count": "application_count",
	"version_name":      "version_name",
}

//go:generate mockgen -source=./resume.go -package=daomocks -destination=mocks/resume.mock.go ResumeDAO
type ResumeDAO interface {
	Create(ctx context.Context, r Resume) (int64, error)
	// Commit 回填存储路径，isDefault 为 true 的时候顺便把它设置为默认简历
	Commit(ctx context.Context, uid, id int64, path string, isDefault bool) error
	// Delete 删除简历，同时解除投递记录上的关联
	Delete(ctx context.Context, uid, id int64) error
	// DeleteUncommitted 只删除还没有回填存储路径的记录
	DeleteUncommitted(ctx context.Context, id int64) (int64, error)
	FindByID(ctx context.Context, uid, id int64) (Resume, error)
	FindByVersionName(ctx context.Context, uid int64, name string) (Resume, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Resume, error)
	FindAll(ctx context.Context, uid int64) ([]Resume, error)
	Find(ctx context.Context, uid int64, q ResumeQuery) ([]Resume, error)
	Count(ctx context.Context, uid int64, q ResumeQuery) (int64, error)
	// FindCreatedBefore 按照 id 升序，从 afterID 之后开始找
	FindCreatedBefore(ctx context.Context, ctime, afterID int64, limit int) ([]Resume, error)
	UpdateMeta(ctx context.Context, r Resume) error
	SetDefault(ctx context.Context, uid, id int64) error
	Link(ctx context.Context, uid, resumeID, applicationID int64) error
	Unlink(ctx context.Context, uid, resumeID, applicationID int64) error
	ResumeOwnedBy(ctx context.Context, uid, id int64) (bool, error)
	ApplicationOwnedBy(ctx context.Context, uid, id int64) (bool, error)
}

type GORMResumeDAO struct {
	db *egorm.Component
}

func NewGORMResumeDAO(db *egorm.Component) ResumeDAO {
	return &GORMResumeDAO{db: db}
}

func (g *GORMResumeDAO) Create(ctx context.Context, r Resume) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	if r.UploadDate == 0 {
		r.UploadDate = now
	}
	err := g.db.WithContext(ctx).Create(&r).Error
	if isDuplicate(err) {
		return 0, ErrDuplicateVersionName
	}
	return r.ID, err
}

func (g *GORMResumeDAO) Commit(ctx context.Context, uid, id int64, path string, isDefault bool) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isDefault {
			if err := g.clearDefault(tx, uid, id, now); err != nil {
				return err
			}
		}
		values := map[string]any{
			"storage_path": path,
			"utime":        now,
		}
		if isDefault {
			values["is_default"] = true
		}
		res := tx.Model(&Resume{}).
			Where("id = ? AND uid = ? AND storage_path = ''", id, uid).
			Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrRecordNotFound
		}
		return nil
	})
}

func (g *GORMResumeDAO) Delete(ctx context.Context, uid, id int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&JobApplication{}).
			Where("uid = ? AND resume_id = ?", uid, id).
			Updates(map[string]any{
				"resume_id": nil,
				"utime":     now,
			}).Error
		if err != nil {
			return err
		}
		res := tx.Where("id = ? AND uid = ?", id, uid).Delete(&Resume{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrRecordNotFound
		}
		return nil
	})
}

func (g *GORMResumeDAO) DeleteUncommitted(ctx context.Context, id int64) (int64, error) {
	res := g.db.WithContext(ctx).
		Where("id = ? AND storage_path = ''", id).
		Delete(&Resume{})
	return res.RowsAffected, res.Error
}

func (g *GORMResumeDAO) FindByID(ctx context.Context, uid, id int64) (Resume, error) {
	var r Resume
	err := g.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&r).Error
	return r, err
}

func (g *GORMResumeDAO) FindByVersionName(ctx context.Context, uid int64, name string) (Resume, error) {
	var r Resume
	err := g.db.WithContext(ctx).Where("uid = ? AND version_name = ?", uid, name).First(&r).Error
	return r, err
}

func (g *GORMResumeDAO) FindByIDs(ctx context.Context, ids []int64) ([]Resume, error) {
	var res []Resume
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMResumeDAO) FindAll(ctx context.Context, uid int64) ([]Resume, error) {
	var res []Resume
	err := g.db.WithContext(ctx).
		Where("uid = ? AND storage_path <> ''", uid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMResumeDAO) Find(ctx context.Context, uid int64, q ResumeQuery) ([]Resume, error) {
	var res []Resume
	col, ok := orderColumns[q.OrderBy]
	if !ok {
		col = "upload_date"
	}
	err := g.filter(g.db.WithContext(ctx), uid, q).
		Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: q.Desc}).
		Order("id DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (g *GORMResumeDAO) Count(ctx context.Context, uid int64, q ResumeQuery) (int64, error) {
	var total int64
	err := g.filter(g.db.WithContext(ctx), uid, q).Count(&total).Error
	return total, err
}

// filter 未提交的记录对用户不可见
func (g *GORMResumeDAO) filter(db *gorm.DB, uid int64, q ResumeQuery) *gorm.DB {
	tx := db.Model(&Resume{}).Where("uid = ? AND storage_path <> ''", uid)
	if q.Source != "" {
		tx = tx.Where("source = ?", q.Source)
	}
	if q.IsDefault.Valid {
		tx = tx.Where("is_default = ?", q.IsDefault.Bool)
	}
	if q.Keyword != "" {
		kw := "%" + escapeLike(q.Keyword) + "%"
		tx = tx.Where("(version_name LIKE ? OR file_name LIKE ? OR notes LIKE ?)", kw, kw, kw)
	}
	return tx
}

func (g *GORMResumeDAO) FindCreatedBefore(ctx context.Context, ctime, afterID int64, limit int) ([]Resume, error) {
	var res []Resume
	err := g.db.WithContext(ctx).
		Where("ctime < ? AND id > ?", ctime, afterID).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMResumeDAO) UpdateMeta(ctx context.Context, r Resume) error {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := g.lockCommitted(tx, r.Uid, r.ID); err != nil {
			return err
		}
		if r.IsDefault {
			if err := g.clearDefault(tx, r.Uid, r.ID, now); err != nil {
				return err
			}
		}
		return tx.Model(&Resume{}).
			Where("id = ? AND uid = ?", r.ID, r.Uid).
			Updates(map[string]any{
				"version_name": r.VersionName,
				"notes":        r.Notes,
				"source":       r.Source,
				"is_default":   r.IsDefault,
				"utime":        now,
			}).Error
	})
	if isDuplicate(err) {
		return ErrDuplicateVersionName
	}
	return err
}

func (g *GORMResumeDAO) SetDefault(ctx context.Context, uid, id int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := g.lockCommitted(tx, uid, id); err != nil {
			return err
		}
		if err := g.clearDefault(tx, uid, id, now); err != nil {
			return err
		}
		return tx.Model(&Resume{}).
			Where("id = ? AND uid = ?", id, uid).
			Updates(map[string]any{
				"is_default": true,
				"utime":      now,
			}).Error
	})
}

// lockCommitted 锁住一条已经提交的简历。
// 后续 UPDATE 的 RowsAffected 只统计真正变化的行，不能用来判断记录是否存在。
func (g *GORMResumeDAO) lockCommitted(tx *gorm.DB, uid, id int64) error {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ? AND uid = ? AND storage_path <> ''", id, uid).
		First(&Resume{}).Error
}

func (g *GORMResumeDAO) clearDefault(tx *gorm.DB, uid, exceptID, now int64) error {
	return tx.Model(&Resume{}).
		Where("uid = ? AND id <> ? AND is_default = ?", uid, exceptID, true).
		Updates(map[string]any{
			"is_default": false,
			"utime":      now,
		}).Error
}

// Link 在一个事务里面建立关联并且增加计数。
// 投递记录已经关联了别的简历的话，旧简历的计数会被减掉。
func (g *GORMResumeDAO) Link(ctx context.Context, uid, resumeID, applicationID int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app JobApplication
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND uid = ?", applicationID, uid).
			First(&app).Error
		if err != nil {
			return err
		}
		if app.ResumeID.Valid && app.ResumeID.Int64 == resumeID {
			return nil
		}
		now := time.Now().UnixMilli()
		if app.ResumeID.Valid {
			err = tx.Model(&Resume{}).
				Where("id = ?", app.ResumeID.Int64).
				Updates(map[string]any{
					"application_count": decrApplicationCount,
					"utime":             now,
				}).Error
			if err != nil {
				return err
			}
		}
		res := tx.Model(&Resume{}).
			Where("id = ? AND uid = ?", resumeID, uid).
			Updates(map[string]any{
				"application_count": gorm.Expr("`application_count` + 1"),
				"last_used_date":    now,
				"utime":             now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrRecordNotFound
		}
		return tx.Model(&JobApplication{}).
			Where("id = ?", applicationID).
			Updates(map[string]any{
				"resume_id": resumeID,
				"utime":     now,
			}).Error
	})
}

// Unlink 解除关联并减少计数，计数最小为 0，last_used_date 保持不变。
// 投递记录没有关联这份简历的时候什么都不做，所以重复解除关联不会多减。
func (g *GORMResumeDAO) Unlink(ctx context.Context, uid, resumeID, applicationID int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&JobApplication{}).
			Where("id = ? AND uid = ? AND resume_id = ?", applicationID, uid, resumeID).
			Updates(map[string]any{
				"resume_id": nil,
				"utime":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return nil
		}
		// 计数已经是 0 的时候 MySQL 可能报告 0 行受影响，这里不能当成简历不存在
		return tx.Model(&Resume{}).
			Where("id = ? AND uid = ?", resumeID, uid).
			Updates(map[string]any{
				"application_count": decrApplicationCount,
				"utime":             now,
			}).Error
	})
}

func (g *GORMResumeDAO) ResumeOwnedBy(ctx context.Context, uid, id int64) (bool, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Resume{}).
		Where("id = ? AND uid = ? AND storage_path <> ''", id, uid).
		Count(&cnt).Error
	return cnt > 0, err
}

func (g *GORMResumeDAO) ApplicationOwnedBy(ctx context.Context, uid, id int64) (bool, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&JobApplication{}).
		Where("id = ? AND uid = ?", id, uid).
		Count(&cnt).Error
	return cnt > 0, err
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
