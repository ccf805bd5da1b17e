package pathplan

import (
	"strconv"
	"strings"
)

type seg struct {
	Key string // 对象键；与 idx 互斥
	Idx int    // 数组索引；>=0 有效
}

// IsIndex 纯数字段（也可能是对象的数字键，由调用方结合节点类型判断）
func (s seg) IsIndex() bool { return s.Idx >= 0 }

// Text 段的原文（已反转义）
func (s seg) Text() string {
	if s.Idx >= 0 {
		return strconv.Itoa(s.Idx)
	}
	return s.Key
}

type Plan struct {
	Segs []seg
}

// ===== 编译器 =====

// Compile 把 gjson 风格的点路径拆成段；`\` 转义下一个字符。
func Compile(path string) *Plan {
	if path == "" {
		return &Plan{}
	}

	segs := make([]seg, 0, 8)
	var cur strings.Builder
	escaped := false
	flush := func() {
		token := cur.String()
		cur.Reset()
		// 纯数字 → 数组索引
		if n, ok := atoiDigits(token); ok {
			segs = append(segs, seg{Idx: n})
		} else {
			segs = append(segs, seg{Key: token, Idx: -1})
		}
	}
	rawDigits := true
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
			rawDigits = false
		case c == '\\':
			escaped = true
		case c == '.':
			if rawDigits {
				flush()
			} else {
				segs = append(segs, seg{Key: cur.String(), Idx: -1})
				cur.Reset()
			}
			rawDigits = true
		default:
			cur.WriteByte(c)
		}
	}
	if rawDigits {
		flush()
	} else {
		segs = append(segs, seg{Key: cur.String(), Idx: -1})
	}
	return &Plan{Segs: segs}
}

func atoiDigits(s string) (int, bool) {
	if len(s) == 0 || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i] - '0'
		if c > 9 {
			return 0, false
		}
		n = n*10 + int(c)
	}
	return n, true
}

// Texts 所有段的原文
func (p *Plan) Texts() []string {
	out := make([]string, len(p.Segs))
	for i, s := range p.Segs {
		out[i] = s.Text()
	}
	return out
}
