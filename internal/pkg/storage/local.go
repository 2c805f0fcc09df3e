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

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage 把文件保存在本地磁盘，适合单机部署和测试
type LocalStorage struct {
	root    string
	baseURL string
}

func NewLocalStorage(root, baseURL string) (*LocalStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("创建存储目录失败 %w", err)
	}
	return &LocalStorage{root: abs, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *LocalStorage) Upload(ctx context.Context, data []byte, uid, resumeID int64, fileName string) (UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return UploadResult{}, err
	}
	key := ObjectKey(uid, resumeID, fileName)
	full, err := l.fullPath(key)
	if err != nil {
		return UploadResult{}, err
	}
	if err = os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return UploadResult{}, err
	}
	// 先写临时文件再改名，避免别人看到写了一半的文件
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return UploadResult{}, err
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return UploadResult{}, err
	}
	if err = tmp.Close(); err != nil {
		return UploadResult{}, err
	}
	if err = os.Rename(tmp.Name(), full); err != nil {
		return UploadResult{}, err
	}
	return UploadResult{Path: key, Size: int64(len(data))}, nil
}

func (l *LocalStorage) Delete(ctx context.Context, path string) error {
	full, err := l.fullPath(path)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotFound
	}
	return err
}

func (l *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := l.Stat(ctx, path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrFileNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (l *LocalStorage) Stat(ctx context.Context, path string) (FileStat, error) {
	full, err := l.fullPath(path)
	if err != nil {
		return FileStat{}, err
	}
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return FileStat{}, ErrFileNotFound
	}
	if err != nil {
		return FileStat{}, err
	}
	return FileStat{Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (l *LocalStorage) PublicURL(path string) string {
	return l.baseURL + "/" + (&url.URL{Path: path}).EscapedPath()
}

func (l *LocalStorage) Walk(ctx context.Context, prefix string, fn func(path string, stat FileStat) error) error {
	start, err := l.fullPath(prefix)
	if err != nil {
		return err
	}
	err = filepath.WalkDir(start, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// 跳过目录和还没改名的临时文件
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(l.root, p)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), FileStat{Size: info.Size(), ModTime: info.ModTime()})
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// fullPath 把句柄转换成磁盘路径，并且拒绝逃出根目录的路径
func (l *LocalStorage) fullPath(key string) (string, error) {
	if key == "" || filepath.IsAbs(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	full := filepath.Join(l.root, filepath.FromSlash(key))
	if full != l.root && !strings.HasPrefix(full, l.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	return full, nil
}
