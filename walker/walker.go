// Package walker 实现 JSON 树的递归遍历。
//
// 每个节点恰好访问一次：先分类，再调用对应类别的 handler（若注册），
// 最后对容器节点（object / array）递归其子节点。
// 父 handler 的返回值作为 metadata 传给所有直接子节点，
// 没有 handler 的容器仍会被遍历，但子节点收到的是 M 的零值。
//
// 递归深度等于树深度，没有深度上限；极深的输入可能耗尽栈。
package walker

import (
	"fmt"
	"sort"

	"github.com/icloudza/jsonwalk/category"
	"github.com/icloudza/jsonwalk/ordered"
	"github.com/icloudza/jsonwalk/walkerr"
)

// Handler 每个被访问节点调用一次。
// 容器节点的返回值成为子节点的 metadata；标量节点的返回值被忽略。
// 返回的错误会立即终止遍历并原样返回给调用方。
type Handler[M any] func(key Key, value any, parent category.Category, meta M) (M, error)

// Handlers 类别 -> handler 的分发表；nil 字段表示该类别不分发。
type Handlers[M any] struct {
	Object  Handler[M]
	Array   Handler[M]
	String  Handler[M]
	Number  Handler[M]
	Boolean Handler[M]
	Null    Handler[M]
}

// For 返回类别对应的 handler。
func (h *Handlers[M]) For(c category.Category) Handler[M] {
	if h == nil {
		return nil
	}
	switch c {
	case category.Object:
		return h.Object
	case category.Array:
		return h.Array
	case category.String:
		return h.String
	case category.Number:
		return h.Number
	case category.Boolean:
		return h.Boolean
	case category.Null:
		return h.Null
	default:
		return nil
	}
}

// Set 按类别注册 handler；None / Invalid 被忽略。
func (h *Handlers[M]) Set(c category.Category, fn Handler[M]) {
	switch c {
	case category.Object:
		h.Object = fn
	case category.Array:
		h.Array = fn
	case category.String:
		h.String = fn
	case category.Number:
		h.Number = fn
	case category.Boolean:
		h.Boolean = fn
	case category.Null:
		h.Null = fn
	}
}

// Uniform 所有类别使用同一个 handler。
func Uniform[M any](fn Handler[M]) Handlers[M] {
	return Handlers[M]{Object: fn, Array: fn, String: fn, Number: fn, Boolean: fn, Null: fn}
}

// Walk 从根节点开始遍历：key 为 RootKey，parent 为 category.None。
func Walk[M any](value any, h Handlers[M], meta M) error {
	return Descend(RootKey, value, category.None, &h, meta)
}

// Descend 遍历以 value 为根的子树。
func Descend[M any](key Key, value any, parent category.Category, h *Handlers[M], meta M) error {
	c := category.Classify(value)
	if c == category.Invalid {
		return &walkerr.InvalidInputError{
			Entry:   "Descend",
			Message: fmt.Sprintf("unsupported value of type %T at key %q", value, key.String()),
		}
	}

	var next M
	if fn := h.For(c); fn != nil {
		var err error
		if next, err = fn(key, value, parent, meta); err != nil {
			return err
		}
	}

	switch x := value.(type) {
	case []any:
		for i, v := range x {
			if err := Descend(IndexKey(i), v, category.Array, h, next); err != nil {
				return err
			}
		}
	case ordered.Object:
		return descendMembers(x, h, next)
	case *ordered.Object:
		if x != nil {
			return descendMembers(*x, h, next)
		}
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := Descend(NameKey(k), x[k], category.Object, h, next); err != nil {
				return err
			}
		}
	}
	return nil
}

func descendMembers[M any](o ordered.Object, h *Handlers[M], meta M) error {
	for _, m := range o {
		if err := Descend(NameKey(m.Key), m.Value, category.Object, h, meta); err != nil {
			return err
		}
	}
	return nil
}
