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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/errs"
	"github.com/ecodeclub/jobtracker/internal/resume/internal/service"
)

var (
	systemErrorResult = resultOf(errs.SystemError)
	notFoundResult    = resultOf(errs.NotFoundError)
	conflictResult    = resultOf(errs.ConflictError)
	storageResult     = resultOf(errs.StorageError)
	validationResult  = resultOf(errs.ValidationError)
)

func resultOf(code errs.ErrorCode) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}

// errorResult 把业务错误转换为前端能看懂的结果，内部错误只返回固定文案
func errorResult(err error) ginx.Result {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		res := validationResult
		res.Data = ValidationVO{Errors: ve.Errors, Warnings: ve.Warnings}
		return res
	case errors.Is(err, service.ErrValidation):
		return validationResult
	case errors.Is(err, service.ErrConflict):
		return conflictResult
	case errors.Is(err, service.ErrNotFound):
		return notFoundResult
	case errors.Is(err, service.ErrStorage):
		return storageResult
	default:
		return systemErrorResult
	}
}
