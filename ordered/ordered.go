// Package ordered 提供保持插入顺序的 JSON 对象表示。
//
// Go 的 map 没有插入顺序，因此解析 JSON 文本时对象统一落地为 Object，
// 遍历时按成员出现的先后访问。
package ordered

import (
	"github.com/bytedance/sonic"
)

// Member 对象中的一个键值对。
type Member struct {
	Key   string
	Value any
}

// Object 按插入顺序保存成员。
// 用 Set 构造时键唯一；Append 不去重，重复键会各自成为独立节点。
type Object []Member

// Len 成员数量
func (o Object) Len() int { return len(o) }

// Keys 按顺序返回所有键
func (o Object) Keys() []string {
	out := make([]string, len(o))
	for i, m := range o {
		out[i] = m.Key
	}
	return out
}

// Get 返回第一个匹配 key 的值。
func (o Object) Get(key string) (any, bool) {
	for i := range o {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Append 追加成员，返回新的 Object（与 append 语义一致）。
func (o Object) Append(key string, value any) Object {
	return append(o, Member{Key: key, Value: value})
}

// Set 键已存在时原位覆盖值（位置保持第一次出现处），否则追加。
// 与 JSON.parse / map 赋值一致：重复键以最后一次为准。
func (o Object) Set(key string, value any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Member{Key: key, Value: value})
}

// Map 转为普通 map；重复键以最后一次出现为准，顺序信息丢失。
func (o Object) Map() map[string]any {
	m := make(map[string]any, len(o))
	for _, it := range o {
		m[it.Key] = it.Value
	}
	return m
}

// MarshalJSON 按成员顺序编码为 JSON 对象，而不是 [{"Key":..,"Value":..}] 数组。
func (o Object) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(o)*16)
	buf = append(buf, '{')
	for i, m := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := sonic.ConfigStd.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		v, err := sonic.ConfigStd.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}
