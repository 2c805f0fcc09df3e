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
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// checkStructure 尝试真正打开文档。打不开只给警告，
// 因为有些合法文件这两个库也解析不了。
func checkStructure(data []byte, mimeType string) (warning string) {
	defer func() {
		// 两个库遇到畸形文件都可能 panic
		if r := recover(); r != nil {
			warning = fmt.Sprintf("无法解析 %s 结构: %v", kindOf(mimeType), r)
		}
	}()
	switch mimeType {
	case MimePDF:
		r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return fmt.Sprintf("无法解析 %s 结构: %s", kindOf(mimeType), err.Error())
		}
		if r.NumPage() == 0 {
			return "PDF 文档没有任何页面"
		}
	case MimeDOCX:
		doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return fmt.Sprintf("无法解析 %s 结构: %s", kindOf(mimeType), err.Error())
		}
		defer doc.Close()
	}
	return ""
}

func kindOf(mimeType string) string {
	switch mimeType {
	case MimePDF:
		return "PDF"
	case MimeDOC:
		return "DOC"
	case MimeDOCX:
		return "DOCX"
	}
	return mimeType
}
