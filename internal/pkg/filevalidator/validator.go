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

// Package filevalidator 校验用户上传的简历文件。
// 所有函数都是纯函数，不会访问磁盘、数据库或者网络。
package filevalidator

import (
	"bytes"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	DefaultMaxSize int64 = 10 << 20

	// 内容启发式检查只扫描开头这么多字节
	heuristicWindow = 1024
	maxFileNameLen  = 255
)

var (
	allowedMimeTypes = map[string]struct{}{
		MimePDF:  {},
		MimeDOC:  {},
		MimeDOCX: {},
	}

	// 扩展名 => 对应的 MIME 类型
	allowedExtensions = map[string]string{
		".pdf":  MimePDF,
		".doc":  MimeDOC,
		".docx": MimeDOCX,
	}

	// DOCX 本质上是 ZIP，所以签名就是 ZIP 的本地文件头
	signatures = map[string][]byte{
		MimePDF:  {0x25, 0x50, 0x44, 0x46},
		MimeDOC:  {0xD0, 0xCF, 0x11, 0xE0},
		MimeDOCX: {0x50, 0x4B, 0x03, 0x04},
	}
	signatureOrder = []string{MimePDF, MimeDOC, MimeDOCX}

	reservedNames = map[string]struct{}{
		"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
		"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
		"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
		"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
		"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
	}

	executableExtensions = map[string]struct{}{
		".exe": {}, ".bat": {}, ".cmd": {}, ".com": {}, ".scr": {},
		".pif": {}, ".msi": {}, ".dll": {}, ".vbs": {}, ".js": {},
		".jar": {}, ".sh": {}, ".ps1": {}, ".app": {}, ".cpl": {},
	}

	elfMagic      = []byte{0x7F, 'E', 'L', 'F'}
	dosHeader     = []byte("MZ")
	dosStub       = []byte("this program cannot be run in dos mode")
	scriptMarkers = [][]byte{
		[]byte("<script"),
		[]byte("javascript:"),
	}
)

type Options struct {
	// MaxSize 文件大小上限，单位字节。小于等于 0 时使用 DefaultMaxSize
	MaxSize int64
	// SkipStructureCheck 为 true 时不尝试解析 PDF/DOCX 的内部结构
	SkipStructureCheck bool
}

func DefaultOptions() Options {
	return Options{MaxSize: DefaultMaxSize}
}

// Result 是一次校验的结论。Errors 不为空时 IsValid 一定是 false，
// Warnings 不影响结论。
type Result struct {
	IsValid           bool
	Errors            []string
	Warnings          []string
	SanitizedFileName string
	DetectedMimeType  string
	FileSize          int64
}

func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate 依次执行所有检查，不会在第一个错误处停下，
// 这样调用方一次就能拿到全部问题。
func Validate(data []byte, declaredMimeType, originalFileName string, opts Options) Result {
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	res := Result{
		SanitizedFileName: SanitizeFileName(originalFileName),
		FileSize:          int64(len(data)),
	}
	declared := NormalizeMimeType(declaredMimeType)

	// 1. 空文件
	if len(data) == 0 {
		res.addError("文件为空")
	}

	// 2. 大小
	if res.FileSize > opts.MaxSize {
		res.addError("文件大小 %d 字节超过上限 %d 字节", res.FileSize, opts.MaxSize)
	}

	// 3. 声明的 MIME 类型
	_, mimeAllowed := allowedMimeTypes[declared]
	if !mimeAllowed {
		res.addError("不支持的文件类型 %q，只允许 PDF、DOC、DOCX", declaredMimeType)
	}

	// 4. 扩展名
	ext := strings.ToLower(filepath.Ext(originalFileName))
	extMime, extAllowed := allowedExtensions[ext]
	if !extAllowed {
		res.addError("不支持的文件扩展名 %q", ext)
	} else if mimeAllowed && extMime != declared {
		res.addWarning("扩展名 %s 与声明的类型 %s 不一致", ext, declared)
	}

	// 5. 文件签名
	res.DetectedMimeType = detectMimeType(data)
	if sig, ok := signatures[declared]; ok && len(data) > 0 && !bytes.HasPrefix(data, sig) {
		res.addError("文件内容与声明的类型 %s 不符", declared)
	}

	// 6. 文件名
	for _, msg := range checkFileName(originalFileName) {
		res.addError("%s", msg)
	}

	// 7. 内容启发式检查
	for _, msg := range scanSuspiciousContent(data) {
		res.addError("%s", msg)
	}

	res.IsValid = len(res.Errors) == 0
	if res.IsValid && !opts.SkipStructureCheck {
		if w := checkStructure(data, declared); w != "" {
			res.addWarning("%s", w)
		}
	}
	return res
}

// NormalizeMimeType 去掉参数部分并转为小写，例如 "Application/PDF; charset=binary"
func NormalizeMimeType(mt string) string {
	mt = strings.TrimSpace(mt)
	if mt == "" {
		return ""
	}
	parsed, _, err := mime.ParseMediaType(mt)
	if err != nil {
		return strings.ToLower(mt)
	}
	return parsed
}

// MimeTypeByExtension 返回允许的扩展名对应的 MIME 类型
func MimeTypeByExtension(fileName string) (string, bool) {
	mt, ok := allowedExtensions[strings.ToLower(filepath.Ext(fileName))]
	return mt, ok
}

func detectMimeType(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	for _, mt := range signatureOrder {
		if bytes.HasPrefix(data, signatures[mt]) {
			return mt
		}
	}
	return mimetype.Detect(data).String()
}

func checkFileName(name string) []string {
	var problems []string
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return append(problems, "文件名不能为空")
	}
	if len(trimmed) > maxFileNameLen {
		problems = append(problems, fmt.Sprintf("文件名长度超过 %d", maxFileNameLen))
	}
	if strings.ContainsAny(trimmed, `/\`) || strings.Contains(trimmed, "..") {
		problems = append(problems, "文件名不能包含路径")
	}
	if strings.HasPrefix(trimmed, ".") {
		problems = append(problems, "不允许上传隐藏文件")
	}
	base := trimmed
	if idx := strings.IndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}
	if _, ok := reservedNames[strings.ToUpper(strings.TrimSpace(base))]; ok {
		problems = append(problems, fmt.Sprintf("文件名 %q 是系统保留名称", base))
	}
	// resume.exe.pdf 这种双扩展名也要拦下来
	segments := strings.Split(strings.ToLower(trimmed), ".")
	for _, seg := range segments[1:] {
		if _, ok := executableExtensions["."+seg]; ok {
			problems = append(problems, fmt.Sprintf("文件名包含可执行文件扩展名 .%s", seg))
			break
		}
	}
	return problems
}

func scanSuspiciousContent(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	window := data
	if len(window) > heuristicWindow {
		window = window[:heuristicWindow]
	}
	var problems []string
	// MZ 只有两个字节，只认文件开头，避免误伤二进制内容
	if bytes.HasPrefix(window, dosHeader) {
		problems = append(problems, "文件包含 Windows 可执行文件头")
	}
	lower := bytes.ToLower(window)
	if bytes.Contains(lower, dosStub) {
		problems = append(problems, "文件包含 Windows 可执行程序片段")
	}
	if bytes.Contains(window, elfMagic) {
		problems = append(problems, "文件包含 ELF 可执行文件头")
	}
	for _, marker := range scriptMarkers {
		if bytes.Contains(lower, marker) {
			problems = append(problems, fmt.Sprintf("文件包含可疑脚本内容 %q", marker))
		}
	}
	return problems
}
