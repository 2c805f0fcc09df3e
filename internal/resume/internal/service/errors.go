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
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("参数校验失败")
	ErrConflict   = errors.New("简历版本名冲突")
	// ErrNotFound 不存在和不属于当前用户都是这个错误
	ErrNotFound = errors.New("简历不存在")
	ErrStorage  = errors.New("文件存储失败")
	ErrInternal = errors.New("系统内部错误")
)

// ValidationError 带上了全部的校验问题，方便前端一次性展示
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func newValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Errors: msgs}
}

func (e *ValidationError) Error() string {
	return "简历文件校验失败: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
