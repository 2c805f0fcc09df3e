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

package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// SessionKey 测试里面通过中间件把 session 放到这个 key 上
const SessionKey = "_session"

func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

var _ session.Provider = &SessionProvider{}

// SessionProvider 直接从 gin 上下文里面取 session，不依赖 redis
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(SessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(SessionKey)
	if !ok {
		return nil, errors.New("未登录")
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	ctx.Set(SessionKey, session.NewMemorySession(claims))
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}
