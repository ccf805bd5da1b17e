//go:build !((amd64 && go1.17 && !go1.26) || (arm64 && go1.20 && !go1.26))

package parser

import (
	"encoding/json"
	"errors"
)

// 该平台上 sonic 直接使用 encoding/json
func syntaxOffset(err error) (int, bool) {
	var je *json.SyntaxError
	if errors.As(err, &je) {
		return int(je.Offset), true
	}
	return 0, false
}
