package jsonwalk

import (
	"errors"
	"io"

	"github.com/tidwall/gjson"

	"github.com/icloudza/jsonwalk/category"
	"github.com/icloudza/jsonwalk/convert"
	"github.com/icloudza/jsonwalk/ordered"
	"github.com/icloudza/jsonwalk/parser"
	"github.com/icloudza/jsonwalk/pathmeta"
	"github.com/icloudza/jsonwalk/source"
	"github.com/icloudza/jsonwalk/walker"
	"github.com/icloudza/jsonwalk/walkerr"
)

type (
	Category = category.Category
	Key      = walker.Key
	Object   = ordered.Object
	Member   = ordered.Member
)

type Handler[M any] = walker.Handler[M]

type Handlers[M any] = walker.Handlers[M]

func init() {
	gjson.DisableModifiers = true
}

// Walk 遍历已解析的值。根节点可以是任意 JSON 值（包括标量和 null）。
// 非原生类型（结构体等）先经 sonic 编码再解析；无法编码时返回 InvalidInput，
// 此时不会调用任何 handler。
func Walk[M any](v any, h Handlers[M], meta M) error {
	tree, err := convert.Normalize(v)
	if err != nil {
		return &walkerr.InvalidInputError{Entry: "Walk", Cause: err}
	}
	return walker.Walk(tree, h, meta)
}

// WalkString 解析 JSON 文本后遍历。
// 非法 UTF-8 -> InvalidInput；格式错误 -> ParseError；两者都发生在遍历开始之前。
func WalkString[M any](text string, h Handlers[M], meta M) error {
	b, err := convert.Text(text)
	if err != nil {
		return &walkerr.InvalidInputError{Entry: "WalkString", Cause: err}
	}
	return walkJSON(b, "<string>", h, meta)
}

// WalkBytes 同 WalkString，输入为 []byte
func WalkBytes[M any](b []byte, h Handlers[M], meta M) error {
	if _, err := convert.Bytes(b); err != nil {
		return &walkerr.InvalidInputError{Entry: "WalkBytes", Cause: err}
	}
	return walkJSON(b, "<bytes>", h, meta)
}

// WalkReader 读完 r 再按 WalkBytes 处理；读取失败 -> IOError。
func WalkReader[M any](r io.Reader, h Handlers[M], meta M) error {
	b, err := source.ReadAll(r)
	if err != nil {
		return &walkerr.IOError{Op: "read", Cause: err}
	}
	if _, err := convert.Bytes(b); err != nil {
		return &walkerr.InvalidInputError{Entry: "WalkReader", Cause: err}
	}
	return walkJSON(b, "<reader>", h, meta)
}

// WalkFile 读取本地文件后按 JSON 遍历。
func WalkFile[M any](path string, h Handlers[M], meta M) error {
	return WalkFileWith(source.Default, path, h, meta)
}

// WalkFileWith 使用指定的 source.Reader 读取 path。
func WalkFileWith[M any](r source.Reader, path string, h Handlers[M], meta M) error {
	b, err := readFile(r, path)
	if err != nil {
		return err
	}
	if _, err := convert.Bytes(b); err != nil {
		return &walkerr.InvalidInputError{Entry: "WalkFile", Message: path, Cause: err}
	}
	return walkJSON(b, path, h, meta)
}

// WalkYAML 解析 YAML 文本后遍历，映射键保持原顺序。
func WalkYAML[M any](b []byte, h Handlers[M], meta M) error {
	return walkYAML(b, "<yaml>", h, meta)
}

// WalkYAMLFile 读取 YAML 文件后遍历。
func WalkYAMLFile[M any](path string, h Handlers[M], meta M) error {
	b, err := readFile(source.Default, path)
	if err != nil {
		return err
	}
	return walkYAML(b, path, h, meta)
}

// WalkAt 只遍历 gjson 路径选中的子树；被选中的节点作为根（key 为空、parent 为 None）。
// 路径不存在时返回 InvalidInput（包装 ErrPathNotFound）。
func WalkAt[M any](b []byte, path string, h Handlers[M], meta M) error {
	return walkAt(b, "<bytes>", "WalkAt", path, h, meta)
}

// WalkFileAt 读取本地文件，只遍历 gjson 路径选中的子树。
// 读失败返回 IOError，解析错误的 Source 为文件路径。
func WalkFileAt[M any](file, path string, h Handlers[M], meta M) error {
	b, err := readFile(source.Default, file)
	if err != nil {
		return err
	}
	return walkAt(b, file, "WalkFileAt", path, h, meta)
}

// ConcatPath 路径拼接，见 pathmeta.Concat。
func ConcatPath(meta string, key Key) string {
	return pathmeta.Concat(meta, key)
}

func walkAt[M any](b []byte, src, entry, path string, h Handlers[M], meta M) error {
	if _, err := convert.Bytes(b); err != nil {
		return &walkerr.InvalidInputError{Entry: entry, Cause: err}
	}
	if !gjson.ValidBytes(b) {
		_, err := parser.Parse(b)
		return withSource(err, src)
	}
	r := gjson.GetBytes(b, path)
	if !r.Exists() {
		return &walkerr.InvalidInputError{Entry: entry, Message: path, Cause: walkerr.ErrPathNotFound}
	}
	return walker.Walk(parser.ToValue(r), h, meta)
}

func walkJSON[M any](b []byte, src string, h Handlers[M], meta M) error {
	tree, err := parser.Parse(b)
	if err != nil {
		return withSource(err, src)
	}
	return walker.Walk(tree, h, meta)
}

func walkYAML[M any](b []byte, src string, h Handlers[M], meta M) error {
	tree, err := parser.ParseYAML(b)
	if err != nil {
		return withSource(err, src)
	}
	return walker.Walk(tree, h, meta)
}

func readFile(r source.Reader, path string) ([]byte, error) {
	b, err := r.ReadFile(path)
	if err != nil {
		return nil, &walkerr.IOError{Op: "read file", Path: path, Cause: err}
	}
	return b, nil
}

func withSource(err error, src string) error {
	var pe *walkerr.ParseError
	if errors.As(err, &pe) && pe.Source == "" {
		pe.Source = src
	}
	return err
}
