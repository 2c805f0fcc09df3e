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

package domain

import "time"

type Source string

const (
	SourceUpload      Source = "UPLOAD"
	SourceGoogleDrive Source = "GOOGLE_DRIVE"
	SourceGenerated   Source = "GENERATED"
)

// Sources 全部来源，统计的时候每一种都要出现
func Sources() []Source {
	return []Source{SourceUpload, SourceGoogleDrive, SourceGenerated}
}

func (s Source) String() string {
	return string(s)
}

func (s Source) Valid() bool {
	switch s {
	case SourceUpload, SourceGoogleDrive, SourceGenerated:
		return true
	}
	return false
}

type Resume struct {
	ID          int64
	Uid         int64
	VersionName string
	// FileName 清洗过的原始文件名
	FileName string
	// StoragePath 存储层返回的句柄，为空说明文件还没有提交
	StoragePath string
	MimeType    string
	FileSize    int64
	Source      Source
	// 毫秒
	UploadDate int64
	// LastUsedDate 最近一次关联到投递记录的时间，0 表示从来没用过
	LastUsedDate     int64
	ApplicationCount int64
	IsDefault        bool
	Notes            string
	Ctime            int64
	Utime            int64
}

func (r Resume) Committed() bool {
	return r.StoragePath != ""
}

func (r Resume) UsedWithin(now time.Time, window time.Duration) bool {
	return r.LastUsedDate > 0 && r.LastUsedDate >= now.Add(-window).UnixMilli()
}

// File 待上传的文件，数据整个放在内存里
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

// Meta 用户可以修改的简历信息
type Meta struct {
	VersionName string
	Notes       string
	IsDefault   bool
	Source      Source
}

type SortField string

const (
	SortByUploadDate       SortField = "upload_date"
	SortByLastUsedDate     SortField = "last_used_date"
	SortByApplicationCount SortField = "application_count"
	SortByVersionName      SortField = "version_name"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByUploadDate, SortByLastUsedDate, SortByApplicationCount, SortByVersionName:
		return true
	}
	return false
}

type ListFilter struct {
	// 为空表示不限
	Source Source
	// nil 表示不限
	IsDefault *bool
	// 模糊匹配版本名和备注
	Keyword string
	SortBy  SortField
	Desc    bool
	Offset  int
	Limit   int
}

type Analytics struct {
	TotalResumes      int64
	TotalApplications int64
	// 没有简历的时候为 nil
	MostUsedResume          *Resume
	RecentlyUsedResumes     []Resume
	ResumesBySource         map[Source]int64
	AverageApplicationCount float64
	// 0 表示没有设置默认简历
	DefaultResumeID int64
}
