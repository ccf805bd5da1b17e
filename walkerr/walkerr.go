// Package walkerr 定义遍历入口可能返回的错误类型。
//
// 三类错误都带哨兵值，可用 errors.Is 判断类别，用 errors.As 取结构化信息：
//
//	err := jsonwalk.WalkString(text, h, "")
//	var pe *walkerr.ParseError
//	if errors.As(err, &pe) {
//	    fmt.Println(pe.Offset)
//	}
//
// handler 自己返回的错误不会被包装，原样透传。
package walkerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput 入口参数类型不符（非 JSON 值、非法 UTF-8 文本等）。
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse JSON/YAML 文本格式错误。
	ErrParse = errors.New("parse error")

	// ErrIO 文件或 reader 读取失败。
	ErrIO = errors.New("io error")

	// ErrPathNotFound WalkAt 的路径在文档中不存在。
	ErrPathNotFound = errors.New("path not found")
)

// InvalidInputError 入口参数校验失败；发生在任何 handler 调用之前。
type InvalidInputError struct {
	// Entry 出错的入口名，如 "Walk"、"WalkString"
	Entry   string
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	msg := "walker: invalid input"
	if e.Entry != "" {
		msg += " to " + e.Entry
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InvalidInputError) Unwrap() error { return e.Cause }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// ParseError 文本不是合法 JSON（或 YAML）。
type ParseError struct {
	// Source 来源标识：文件路径，或 "<string>"、"<bytes>"
	Source string
	// Offset 出错的字节偏移；未知时为 -1
	Offset  int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := "walker: parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// IOError 读取失败。
type IOError struct {
	Path  string
	Op    string
	Cause error
}

func (e *IOError) Error() string {
	msg := "walker: " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *IOError) Unwrap() error { return e.Cause }

func (e *IOError) Is(target error) bool { return target == ErrIO }
