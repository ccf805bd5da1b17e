// Package source 提供读取文本的外部协作者，供 WalkFile 使用。
// 内存缓冲、网络等来源可通过实现 Reader 替换。
package source

import (
	"io"
	"io/fs"
	"os"
	"strings"
)

// Reader 读取 path 指向的全部内容。
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// OS 直接读本地文件系统
type OS struct{}

func (OS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// FS 从 fs.FS 读取（embed.FS、fstest.MapFS 等）。
type FS struct {
	FS fs.FS
}

func (f FS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(f.FS, strings.TrimPrefix(path, "/"))
}

// Func 函数适配为 Reader
type Func func(path string) ([]byte, error)

func (fn Func) ReadFile(path string) ([]byte, error) { return fn(path) }

// Default WalkFile 使用的默认来源
var Default Reader = OS{}

// ReadAll io.Reader 全量读取
func ReadAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// IsYAML 按扩展名判断 YAML 文件
func IsYAML(path string) bool {
	p := strings.ToLower(path)
	return strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")
}
