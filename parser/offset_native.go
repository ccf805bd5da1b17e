//go:build (amd64 && go1.17 && !go1.26) || (arm64 && go1.20 && !go1.26)

package parser

import (
	"encoding/json"
	"errors"

	"github.com/bytedance/sonic/decoder"
)

// syntaxOffset 从 sonic 的解码错误里取出出错位置
func syntaxOffset(err error) (int, bool) {
	var se decoder.SyntaxError
	if errors.As(err, &se) {
		return se.Pos, true
	}
	var sp *decoder.SyntaxError
	if errors.As(err, &sp) && sp != nil {
		return sp.Pos, true
	}
	var je *json.SyntaxError
	if errors.As(err, &je) {
		return int(je.Offset), true
	}
	return 0, false
}
