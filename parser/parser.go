// Package parser 把 JSON / YAML 文本解析为可遍历的值树。
//
// 对象落地为 ordered.Object（保持键的出现顺序，重复键保留首个位置、取最后的值），数组为 []any，
// 整数字面量优先 int64，其余数字 float64，两者都放不下时保留 json.Number。
package parser

import (
	"encoding/json"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"

	"github.com/icloudza/jsonwalk/ordered"
	"github.com/icloudza/jsonwalk/walkerr"
)

//go:nosplit
func IsIntegerLiteral(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' || c == 'e' || c == 'E' || c == '+' || (c == '-' && i > 0) {
			return false
		}
	}
	return true
}

//go:nosplit
func ParseIntFast(s string) (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	i := 0
	neg := false
	if s[0] == '-' {
		neg, i = true, 1
		if len(s) == 1 {
			return 0, false
		}
	}
	var n int64
	for ; i < len(s); i++ {
		c := s[i] - '0'
		if c > 9 {
			return 0, false
		}
		d := int64(c)
		if n > (9223372036854775807-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	if neg {
		n = -n
	}
	return n, true
}

func ParseFloat64(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// Parse 校验并解析 JSON 文本。
// 校验走 gjson；不合法时再用 sonic 解一次，拿到更具体的诊断信息。
func Parse(b []byte) (any, error) {
	if !gjson.ValidBytes(b) {
		return nil, diagnose(b)
	}
	return ToValue(gjson.ParseBytes(b)), nil
}

func diagnose(b []byte) error {
	pe := &walkerr.ParseError{Offset: -1, Message: "invalid json"}
	var v any
	if err := sonic.ConfigStd.Unmarshal(b, &v); err != nil {
		pe.Cause = err
		if off, ok := syntaxOffset(err); ok {
			pe.Offset = off
		}
	}
	return pe
}

// ToValue gjson.Result -> 值树
func ToValue(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.True, gjson.False:
		return r.Bool()
	case gjson.String:
		return r.String()
	case gjson.Number:
		return numberOf(r.Raw)
	case gjson.JSON:
		if r.IsArray() {
			out := make([]any, 0, 8)
			r.ForEach(func(_, v gjson.Result) bool {
				out = append(out, ToValue(v))
				return true
			})
			return out
		}
		obj := make(ordered.Object, 0, 8)
		r.ForEach(func(k, v gjson.Result) bool {
			obj = obj.Set(k.String(), ToValue(v))
			return true
		})
		return obj
	default:
		return nil
	}
}

func numberOf(raw string) any {
	if IsIntegerLiteral(raw) {
		if i, ok := ParseIntFast(raw); ok {
			return i
		}
	}
	if f, ok := ParseFloat64(raw); ok {
		return f
	}
	return json.Number(raw)
}
