// Package collect 基于 walker 的常用消费者。
// 结果写入调用方持有的 Accumulator，不使用包级可变状态。
package collect

import (
	"fmt"

	"github.com/icloudza/jsonwalk/category"
	"github.com/icloudza/jsonwalk/convert"
	"github.com/icloudza/jsonwalk/pathmeta"
	"github.com/icloudza/jsonwalk/walker"
)

// Entry 一个被收集的节点
type Entry struct {
	Path     string
	Category category.Category
	Value    any
}

func (e Entry) String() string {
	if e.Category.IsContainer() {
		return e.Path
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Value)
}

// Accumulator 收集器状态；Filter 为 nil 时收集全部节点。
type Accumulator struct {
	Filter  func(c category.Category) bool
	Entries []Entry
	Counts  map[category.Category]int
}

// Handlers 把累加器接到一次遍历上；metadata 为点路径。
func (a *Accumulator) Handlers() walker.Handlers[string] {
	return pathmeta.Handlers(func(path string, _ walker.Key, value any, _ category.Category) error {
		c := category.Classify(value)
		if a.Counts == nil {
			a.Counts = make(map[category.Category]int, 6)
		}
		a.Counts[c]++
		if a.Filter == nil || a.Filter(c) {
			a.Entries = append(a.Entries, Entry{Path: path, Category: c, Value: value})
		}
		return nil
	})
}

// Run 遍历 v 并累加
func (a *Accumulator) Run(v any) error {
	tree, err := convert.Normalize(v)
	if err != nil {
		return err
	}
	return walker.Walk(tree, a.Handlers(), "")
}

// Strings 所有字符串节点（路径 + 值），对应“收集全部字符串”的用法。
func Strings(v any) ([]Entry, error) {
	a := &Accumulator{Filter: func(c category.Category) bool { return c == category.String }}
	if err := a.Run(v); err != nil {
		return nil, err
	}
	return a.Entries, nil
}

// Paths 所有节点的路径与类别，按访问顺序。
func Paths(v any) ([]Entry, error) {
	a := &Accumulator{}
	if err := a.Run(v); err != nil {
		return nil, err
	}
	return a.Entries, nil
}

// Counts 按类别计数
func Counts(v any) (map[category.Category]int, error) {
	a := &Accumulator{Filter: func(category.Category) bool { return false }}
	if err := a.Run(v); err != nil {
		return nil, err
	}
	return a.Counts, nil
}
