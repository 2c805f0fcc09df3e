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

package ioc

import (
	"context"
	"fmt"

	"github.com/ecodeclub/jobtracker/internal/pkg/storage"
	"github.com/gotomicro/ego/core/econf"
)

const (
	storageTypeLocal = "local"
	storageTypeS3    = "s3"
)

type StorageConfig struct {
	// Type local 或者 s3，默认是 local
	Type  string             `yaml:"type"`
	Local LocalStorageConfig `yaml:"local"`
	S3    storage.S3Config   `yaml:"s3"`
}

type LocalStorageConfig struct {
	Root    string `yaml:"root"`
	BaseURL string `yaml:"baseURL"`
}

func InitStorage() storage.Storage {
	var cfg StorageConfig
	err := econf.UnmarshalKey("storage", &cfg)
	if err != nil {
		panic(fmt.Errorf("读取存储配置失败 %w", err))
	}
	store, err := newStorage(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	return store
}

func newStorage(ctx context.Context, cfg StorageConfig) (storage.Storage, error) {
	switch cfg.Type {
	case "", storageTypeLocal:
		root := cfg.Local.Root
		if root == "" {
			root = "./data"
		}
		return storage.NewLocalStorage(root, cfg.Local.BaseURL)
	case storageTypeS3:
		client, err := storage.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return storage.NewS3Storage(client, cfg.S3), nil
	default:
		return nil, fmt.Errorf("未知的存储类型 %q", cfg.Type)
	}
}
