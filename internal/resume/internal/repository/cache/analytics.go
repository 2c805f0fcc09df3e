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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/domain"
	"github.com/pkg/errors"
)

var ErrAnalyticsNotFound = errors.New("简历统计数据不在缓存中")

//go:generate mockgen -source=./analytics.go -package=cachemocks -destination=./mocks/analytics.mock.go AnalyticsCache
type AnalyticsCache interface {
	Get(ctx context.Context, uid int64) (domain.Analytics, error)
	Set(ctx context.Context, uid int64, a domain.Analytics) error
	Delete(ctx context.Context, uid int64) error
}

type analyticsCache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewAnalyticsCache(ec ecache.Cache, expiration time.Duration) AnalyticsCache {
	if expiration <= 0 {
		expiration = 10 * time.Minute
	}
	return &analyticsCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "resume:",
		},
		expiration: expiration,
	}
}

func (c *analyticsCache) Get(ctx context.Context, uid int64) (domain.Analytics, error) {
	val := c.ec.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Analytics{}, ErrAnalyticsNotFound
	}
	if val.Err != nil {
		return domain.Analytics{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var a domain.Analytics
	if err := val.JSONScan(&a); err != nil {
		return domain.Analytics{}, errors.Wrap(err, "反序列化简历统计数据失败")
	}
	return a, nil
}

func (c *analyticsCache) Set(ctx context.Context, uid int64, a domain.Analytics) error {
	data, err := json.Marshal(a)
	if err != nil {
		return errors.Wrap(err, "序列化简历统计数据失败")
	}
	return c.ec.Set(ctx, c.key(uid), string(data), c.expiration)
}

func (c *analyticsCache) Delete(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.key(uid))
	return err
}

func (c *analyticsCache) key(uid int64) string {
	return fmt.Sprintf("analytics:%d", uid)
}
