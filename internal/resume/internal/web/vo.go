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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type LinkReq struct {
	ResumeID      int64 `json:"resumeId"`
	ApplicationID int64 `json:"applicationId"`
}

type ListReq struct {
	Source    string `json:"source,omitempty"`
	IsDefault *bool  `json:"isDefault,omitempty"`
	Keyword   string `json:"keyword,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	Desc      bool   `json:"desc,omitempty"`
	Offset    int    `json:"offset,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

type UpdateReq struct {
	ID          int64  `json:"id"`
	VersionName string `json:"versionName"`
	Notes       string `json:"notes"`
	IsDefault   bool   `json:"isDefault"`
	Source      string `json:"source"`
}

type Resume struct {
	ID               int64  `json:"id"`
	VersionName      string `json:"versionName"`
	FileName         string `json:"fileName"`
	MimeType         string `json:"mimeType"`
	FileSize         int64  `json:"fileSize"`
	Source           string `json:"source"`
	UploadDate       int64  `json:"uploadDate"`
	LastUsedDate     int64  `json:"lastUsedDate,omitempty"`
	ApplicationCount int64  `json:"applicationCount"`
	IsDefault        bool   `json:"isDefault"`
	Notes            string `json:"notes,omitempty"`
	Utime            int64  `json:"utime"`
}

func newResume(r domain.Resume) Resume {
	return Resume{
		ID:               r.ID,
		VersionName:      r.VersionName,
		FileName:         r.FileName,
		MimeType:         r.MimeType,
		FileSize:         r.FileSize,
		Source:           r.Source.String(),
		UploadDate:       r.UploadDate,
		LastUsedDate:     r.LastUsedDate,
		ApplicationCount: r.ApplicationCount,
		IsDefault:        r.IsDefault,
		Notes:            r.Notes,
		Utime:            r.Utime,
	}
}

func newResumes(rs []domain.Resume) []Resume {
	return slice.Map(rs, func(_ int, src domain.Resume) Resume {
		return newResume(src)
	})
}

type ListResp struct {
	Total int64    `json:"total"`
	List  []Resume `json:"list"`
}

type ValidationVO struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

type AnalyticsVO struct {
	TotalResumes            int64            `json:"totalResumes"`
	TotalApplications       int64            `json:"totalApplications"`
	MostUsedResume          *Resume          `json:"mostUsedResume"`
	RecentlyUsedResumes     []Resume         `json:"recentlyUsedResumes"`
	ResumesBySource         map[string]int64 `json:"resumesBySource"`
	AverageApplicationCount float64          `json:"averageApplicationCount"`
	DefaultResumeID         int64            `json:"defaultResumeId"`
}

func newAnalyticsVO(a domain.Analytics) AnalyticsVO {
	vo := AnalyticsVO{
		TotalResumes:            a.TotalResumes,
		TotalApplications:       a.TotalApplications,
		RecentlyUsedResumes:     newResumes(a.RecentlyUsedResumes),
		ResumesBySource:         make(map[string]int64, len(a.ResumesBySource)),
		AverageApplicationCount: a.AverageApplicationCount,
		DefaultResumeID:         a.DefaultResumeID,
	}
	if a.MostUsedResume != nil {
		r := newResume(*a.MostUsedResume)
		vo.MostUsedResume = &r
	}
	for src, cnt := range a.ResumesBySource {
		vo.ResumesBySource[src.String()] = cnt
	}
	return vo
}
