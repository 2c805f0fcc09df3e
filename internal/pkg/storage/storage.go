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

// Package storage 定义简历文件的存储接口，并提供本地磁盘和 S3 兼容两种实现。
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const KeyPrefix = "resumes"

var (
	ErrFileNotFound = errors.New("文件不存在")
	ErrInvalidPath  = errors.New("非法的文件路径")
)

type UploadResult struct {
	// Path 是后续 Delete、Stat 等操作使用的句柄
	Path string
	Size int64
}

type FileStat struct {
	Size    int64
	ModTime time.Time
}

//go:generate mockgen -source=./storage.go -package=storagemocks -destination=./mocks/storage.mock.go Storage
type Storage interface {
	// Upload 保存文件。uid 和 resumeID 用于决定文件存放的位置
	Upload(ctx context.Context, data []byte, uid, resumeID int64, fileName string) (UploadResult, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	// Stat 文件不存在的时候返回 ErrFileNotFound
	Stat(ctx context.Context, path string) (FileStat, error)
	PublicURL(path string) string
}

// Walker 由能够枚举全部文件的实现提供，对账任务会用到
type Walker interface {
	Walk(ctx context.Context, prefix string, fn func(path string, stat FileStat) error) error
}

// ObjectKey 生成 resumes/{uid}/{resumeID}-{随机串}{ext}。
// 随机部分保证同一份简历重复上传也不会覆盖旧文件。
func ObjectKey(uid, resumeID int64, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%s/%d/%d-%s%s", KeyPrefix, uid, resumeID, shortuuid.New(), ext)
}

// UserPrefix 某个用户全部简历文件的公共前缀
func UserPrefix(uid int64) string {
	return fmt.Sprintf("%s/%d/", KeyPrefix, uid)
}

// ParseObjectKey 是 ObjectKey 的逆操作，格式不对的时候 ok 为 false
func ParseObjectKey(key string) (uid, resumeID int64, ok bool) {
	segs := strings.Split(key, "/")
	if len(segs) != 3 || segs[0] != KeyPrefix {
		return 0, 0, false
	}
	uid, err := strconv.ParseInt(segs[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	idPart, _, found := strings.Cut(segs[2], "-")
	if !found {
		return 0, 0, false
	}
	resumeID, err = strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return uid, resumeID, true
}
