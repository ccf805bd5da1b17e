// Package convert 把调用方传入的任意值整理成可遍历的 JSON 值树。
package convert

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/bytedance/sonic"

	"github.com/icloudza/jsonwalk/category"
	"github.com/icloudza/jsonwalk/ordered"
	"github.com/icloudza/jsonwalk/parser"
)

var (
	errInvalidUTF8 = errors.New("invalid UTF-8 text")
	errNonFinite   = errors.New("NaN or Inf is not a json number")
)

//go:nosplit
func UnsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

//go:nosplit
func ValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// Text string -> []byte（零拷贝，只读），并校验 UTF-8。
func Text(s string) ([]byte, error) {
	b := UnsafeStringToBytes(s)
	if !ValidUTF8(b) {
		return nil, errInvalidUTF8
	}
	return b, nil
}

// Bytes 校验 UTF-8
func Bytes(b []byte) ([]byte, error) {
	if !ValidUTF8(b) {
		return nil, errInvalidUTF8
	}
	return b, nil
}

// Normalize 返回可直接遍历的值。
// 已经是原生 JSON 值树（见 IsNative）时原样返回，不拷贝；
// 否则（结构体、带类型的 map/slice、指针等）用 sonic 编码后重新解析，
// 结构体字段按声明顺序成为对象成员。
func Normalize(v any) (any, error) {
	if IsNative(v) {
		return v, nil
	}
	if nonFinite(v) {
		return nil, fmt.Errorf("cannot encode %T as json: %w", v, errNonFinite)
	}
	b, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %T as json: %w", v, err)
	}
	return parser.Parse(b)
}

// IsNative 整棵树是否只由 category.Classify 认识的类型构成。
func IsNative(v any) bool {
	switch x := v.(type) {
	case []any:
		for _, it := range x {
			if !IsNative(it) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, it := range x {
			if !IsNative(it) {
				return false
			}
		}
		return true
	case ordered.Object:
		return nativeMembers(x)
	case *ordered.Object:
		return x == nil || nativeMembers(*x)
	default:
		return category.Classify(v) != category.Invalid
	}
}

func nativeMembers(o ordered.Object) bool {
	for _, m := range o {
		if !IsNative(m.Value) {
			return false
		}
	}
	return true
}

// nonFinite 原生容器里是否混有 NaN / ±Inf（结构体字段交给 sonic 报错）
func nonFinite(v any) bool {
	switch x := v.(type) {
	case float64:
		return math.IsNaN(x) || math.IsInf(x, 0)
	case float32:
		return math.IsNaN(float64(x)) || math.IsInf(float64(x), 0)
	case []any:
		for _, it := range x {
			if nonFinite(it) {
				return true
			}
		}
	case map[string]any:
		for _, it := range x {
			if nonFinite(it) {
				return true
			}
		}
	case ordered.Object:
		for _, m := range x {
			if nonFinite(m.Value) {
				return true
			}
		}
	case *ordered.Object:
		return x != nil && nonFinite(*x)
	}
	return false
}
