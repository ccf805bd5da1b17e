// Package pathmeta 提供最常见的 metadata：节点路径。
//
// 字符串路径采用 gjson 的点路径语法，特殊字符用 `\` 转义，
// 因此拼出来的路径可以直接交给 gjson.Get 取回同一个节点。
package pathmeta

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/icloudza/jsonwalk/category"
	pathplan "github.com/icloudza/jsonwalk/internal"
	"github.com/icloudza/jsonwalk/walker"
)

// Concat 把 key 接到父路径 meta 后面。
// 根节点（没有 key）原样返回 meta；meta 为空时只返回 key。
//
// 空字符串键在点路径里没有独立写法：根下的 "" 键与根同为 ""，
// 嵌套时表现为末尾的 "."（如 "a."）。需要区分时用 Segments。
func Concat(meta string, key walker.Key) string {
	if key.IsRoot() {
		return meta
	}
	seg := gjson.Escape(key.String())
	if meta == "" {
		return seg
	}
	return meta + "." + seg
}

// Split Concat 的逆操作，返回反转义后的各段。
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return pathplan.Compile(path).Texts()
}

// Segments 结构化路径：不拼字符串，逐段保留 Key。
type Segments []walker.Key

// Append 返回追加后的新切片，不修改接收者（兄弟节点共享同一个父路径）。
func (s Segments) Append(k walker.Key) Segments {
	if k.IsRoot() {
		return s
	}
	out := make(Segments, len(s), len(s)+1)
	copy(out, s)
	return append(out, k)
}

// String 转为与 Concat 相同格式的点路径
func (s Segments) String() string {
	var b strings.Builder
	for i, k := range s {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(gjson.Escape(k.String()))
	}
	return b.String()
}

// Visit 带完整路径的节点回调。
type Visit func(path string, key walker.Key, value any, parent category.Category) error

// Handlers 为所有类别生成维护路径的 handler：
// 每个节点先算出自身路径再回调 fn，容器把自身路径交给子节点。
// fn 为 nil 时只维护路径。
func Handlers(fn Visit) walker.Handlers[string] {
	return walker.Uniform(func(key walker.Key, value any, parent category.Category, meta string) (string, error) {
		p := Concat(meta, key)
		if fn != nil {
			if err := fn(p, key, value, parent); err != nil {
				return "", err
			}
		}
		return p, nil
	})
}
