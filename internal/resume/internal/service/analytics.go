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
	"fmt"
	"sort"
	"time"

	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

type AnalyticsConfig struct {
	// RecentWindow 最近使用的时间范围
	RecentWindow time.Duration `yaml:"recentWindow"`
	RecentLimit  int           `yaml:"recentLimit"`
}

func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		RecentWindow: 30 * 24 * time.Hour,
		RecentLimit:  5,
	}
}

//go:generate mockgen -source=./analytics.go -package=resumemocks -destination=../../mocks/analytics.mock.go AnalyticsService
type AnalyticsService interface {
	Analytics(ctx context.Context, uid int64) (domain.Analytics, error)
}

type analyticsService struct {
	repo   repository.ResumeRepository
	cfg    AnalyticsConfig
	logger *elog.Component
}

func NewAnalyticsService(repo repository.ResumeRepository, cfg AnalyticsConfig) AnalyticsService {
	def := DefaultAnalyticsConfig()
	if cfg.RecentWindow <= 0 {
		cfg.RecentWindow = def.RecentWindow
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = def.RecentLimit
	}
	return &analyticsService{
		repo:   repo,
		cfg:    cfg,
		logger: elog.DefaultLogger.With(elog.FieldComponent("resume.analytics")),
	}
}

func (s *analyticsService) Analytics(ctx context.Context, uid int64) (domain.Analytics, error) {
	a, err := s.repo.GetAnalytics(ctx, uid)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, repository.ErrAnalyticsNotFound) {
		s.logger.Warn("读取简历统计缓存失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	resumes, err := s.repo.FindAll(ctx, uid)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("%w: 查询简历失败 %w", ErrInternal, err)
	}
	a = Aggregate(resumes, time.Now(), s.cfg)
	if err = s.repo.SetAnalytics(ctx, uid, a); err != nil {
		s.logger.Warn("回写简历统计缓存失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	return a, nil
}

// Aggregate 计算简历的使用统计。
// 使用次数最多的简历如果有多份，取上传时间最早的，上传时间也一样就取 ID 最小的。
func Aggregate(resumes []domain.Resume, now time.Time, cfg AnalyticsConfig) domain.Analytics {
	res := domain.Analytics{
		TotalResumes:        int64(len(resumes)),
		RecentlyUsedResumes: []domain.Resume{},
		ResumesBySource:     make(map[domain.Source]int64, len(domain.Sources())),
	}
	for _, src := range domain.Sources() {
		res.ResumesBySource[src] = 0
	}
	if len(resumes) == 0 {
		return res
	}

	var mostUsed *domain.Resume
	for i := range resumes {
		r := resumes[i]
		res.TotalApplications += r.ApplicationCount
		res.ResumesBySource[r.Source]++
		if r.IsDefault {
			res.DefaultResumeID = r.ID
		}
		if mostUsed == nil || moreUsed(r, *mostUsed) {
			mostUsed = &r
		}
		if r.UsedWithin(now, cfg.RecentWindow) {
			res.RecentlyUsedResumes = append(res.RecentlyUsedResumes, r)
		}
	}
	res.MostUsedResume = mostUsed
	res.AverageApplicationCount = float64(res.TotalApplications) / float64(len(resumes))

	sort.SliceStable(res.RecentlyUsedResumes, func(i, j int) bool {
		a, b := res.RecentlyUsedResumes[i], res.RecentlyUsedResumes[j]
		if a.LastUsedDate != b.LastUsedDate {
			return a.LastUsedDate > b.LastUsedDate
		}
		return a.ID < b.ID
	})
	if cfg.RecentLimit > 0 && len(res.RecentlyUsedResumes) > cfg.RecentLimit {
		res.RecentlyUsedResumes = res.RecentlyUsedResumes[:cfg.RecentLimit]
	}
	return res
}

func moreUsed(a, b domain.Resume) bool {
	if a.ApplicationCount != b.ApplicationCount {
		return a.ApplicationCount > b.ApplicationCount
	}
	if a.UploadDate != b.UploadDate {
		return a.UploadDate < b.UploadDate
	}
	return a.ID < b.ID
}
