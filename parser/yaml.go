package parser

import (
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/icloudza/jsonwalk/category"
	"github.com/icloudza/jsonwalk/ordered"
	"github.com/icloudza/jsonwalk/walkerr"
)

// ParseYAML 解析 YAML 文本（JSON 是其子集）。
// 先解到 yaml.Node 再转换，映射的键顺序得以保留。
// 空文档视为 null。
func ParseYAML(b []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, &walkerr.ParseError{Offset: -1, Message: "invalid yaml", Cause: err}
	}
	return fromNode(&doc)
}

func fromNode(n *yaml.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])

	case yaml.MappingNode:
		// Content 依次为 key, value, key, value...
		obj := make(ordered.Object, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj = obj.Set(n.Content[i].Value, v)
		}
		return obj, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.AliasNode:
		return fromNode(n.Alias)

	case yaml.ScalarNode:
		return scalarOf(n)

	default:
		return nil, nil
	}
}

func scalarOf(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool", "!!int", "!!float":
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, &walkerr.ParseError{
				Offset:  -1,
				Message: "invalid yaml scalar at line " + strconv.Itoa(n.Line),
				Cause:   err,
			}
		}
		if category.Classify(v) == category.Invalid {
			return n.Value, nil
		}
		return v, nil
	default:
		// 时间戳、二进制等按原文字符串处理
		return n.Value, nil
	}
}
