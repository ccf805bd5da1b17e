// Package category 定义 JSON 值的分类以及分类器。
package category

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/icloudza/jsonwalk/ordered"
)

// Category JSON 值的类别标签。
//
// 零值 None 表示“没有父节点”，只出现在根节点的 parent 参数里；
// Invalid 表示非 JSON 的 Go 值，不会被分发。
type Category uint8

const (
	None Category = iota
	Object
	Array
	String
	Number
	Boolean
	Null
	Invalid
)

// All 六个真实类别，按固定顺序。
func All() []Category {
	return []Category{Object, Array, String, Number, Boolean, Null}
}

func (c Category) String() string {
	switch c {
	case None:
		return "N/A"
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// IsContainer object / array 才有子节点
func (c Category) IsContainer() bool { return c == Object || c == Array }

// Valid 是否六个真实类别之一
func (c Category) Valid() bool { return c >= Object && c <= Null }

// Parse 名称 -> 类别，名称同 String() 输出。
func Parse(name string) (Category, bool) {
	for _, c := range All() {
		if c.String() == name {
			return c, true
		}
	}
	return Invalid, false
}

// Classify 判定值的类别。
// 顺序：先数组，再 null，最后按基础类型（对象/字符串/数字/布尔）。
// 不属于 JSON 值域的 Go 值返回 Invalid，NaN / ±Inf 也算。
func Classify(v any) Category {
	switch x := v.(type) {
	case []any:
		return Array
	case nil:
		return Null
	case *ordered.Object:
		if x == nil {
			return Null
		}
		return Object
	case ordered.Object, map[string]any:
		return Object
	case string:
		return String
	case bool:
		return Boolean
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Invalid
		}
		return Number
	case float32:
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
			return Invalid
		}
		return Number
	case json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return Number
	default:
		return Invalid
	}
}
