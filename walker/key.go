package walker

import "strconv"

type keyKind uint8

const (
	keyRoot keyKind = iota
	keyName
	keyIndex
)

// Key 子节点在父节点中的位置：对象里是属性名，数组里是下标；根节点没有 Key。
// 零值即根。
type Key struct {
	kind  keyKind
	name  string
	index int
}

// RootKey 根节点的 Key
var RootKey = Key{}

// NameKey 对象成员
func NameKey(name string) Key { return Key{kind: keyName, name: name} }

// IndexKey 数组元素
func IndexKey(i int) Key { return Key{kind: keyIndex, index: i} }

func (k Key) IsRoot() bool  { return k.kind == keyRoot }
func (k Key) IsName() bool  { return k.kind == keyName }
func (k Key) IsIndex() bool { return k.kind == keyIndex }

// Name 属性名；非对象成员返回 ""
func (k Key) Name() string { return k.name }

// Index 数组下标；非数组元素返回 -1
func (k Key) Index() int {
	if k.kind != keyIndex {
		return -1
	}
	return k.index
}

// String 根节点返回空串，下标转十进制。
func (k Key) String() string {
	switch k.kind {
	case keyName:
		return k.name
	case keyIndex:
		return strconv.Itoa(k.index)
	default:
		return ""
	}
}
