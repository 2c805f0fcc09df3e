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

package filevalidator

import (
	"path/filepath"
	"regexp"
	"strings"
)

const PlaceholderFileName = "resume"

var (
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9 _.\-]`)
	separatorRuns = regexp.MustCompile(`[\s_]+`)
)

// SanitizeFileName 把用户给的文件名清洗成可以安全落盘的名字。
// 只保留目录之后的部分，去掉非法字符，空白和下划线合并为一个下划线，扩展名转小写。
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSpace(name)

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	ext = strings.ToLower(unsafeChars.ReplaceAllString(ext, ""))
	if ext == "." {
		ext = ""
	}

	base = unsafeChars.ReplaceAllString(base, "")
	base = separatorRuns.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")

	if base == "" || strings.Trim(base, ".") == "" || strings.HasPrefix(base, ".") {
		return PlaceholderFileName + ext
	}
	return base + ext
}
