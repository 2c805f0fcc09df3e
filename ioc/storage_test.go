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
	"testing"

	"github.com/ecodeclub/jobtracker/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorage(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      StorageConfig
		wantType any
		wantErr  bool
	}{
		{
			name:     "默认使用本地存储",
			cfg:      StorageConfig{Local: LocalStorageConfig{Root: t.TempDir()}},
			wantType: &storage.LocalStorage{},
		},
		{
			name: "S3",
			cfg: StorageConfig{
				Type: storageTypeS3,
				S3: storage.S3Config{
					Bucket:    "resumes",
					Endpoint:  "http://localhost:9000",
					AccessKey: "ak",
					SecretKey: "sk",
				},
			},
			wantType: &storage.S3Storage{},
		},
		{
			name:    "未知类型",
			cfg:     StorageConfig{Type: "ftp"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := newStorage(context.Background(), tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.wantType, store)
		})
	}
}
