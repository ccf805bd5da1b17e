// Package jsonwalk 提供通用的 JSON 树遍历能力。
//
// 特点：
//   - 每个节点恰好访问一次，对象按键出现顺序、数组按下标顺序。
//   - 按类别分发：object / array / string / number / boolean / null，未注册的类别跳过。
//   - metadata 泛型化：父节点 handler 的返回值原样传给直接子节点，常用来拼路径。
//   - 输入可以是已解析的值、JSON 文本、文件、io.Reader，或 YAML。
//
// 内部依赖：
//   - 使用 gjson 校验与解析 JSON 文本，sonic 负责把任意 Go 值编码为 JSON。
//
// # 示例
//
// 收集所有字符串及其路径：
//
//	var out []string
//	h := jsonwalk.Handlers[string]{
//	    Object: func(k jsonwalk.Key, _ any, _ jsonwalk.Category, meta string) (string, error) {
//	        return jsonwalk.ConcatPath(meta, k), nil
//	    },
//	    Array: func(k jsonwalk.Key, _ any, _ jsonwalk.Category, meta string) (string, error) {
//	        return jsonwalk.ConcatPath(meta, k), nil
//	    },
//	    String: func(k jsonwalk.Key, v any, _ jsonwalk.Category, meta string) (string, error) {
//	        out = append(out, jsonwalk.ConcatPath(meta, k)+": "+v.(string))
//	        return "", nil
//	    },
//	}
//	err := jsonwalk.WalkString(`{"a":{"b":"x"}}`, h, "")
//
// 错误：
//
//	errors.Is(err, walkerr.ErrInvalidInput) // 入口参数不合法
//	errors.Is(err, walkerr.ErrParse)        // 文本不是合法 JSON
//	errors.Is(err, walkerr.ErrIO)           // 文件读取失败
//
// handler 返回的错误原样透传，遍历立即停止。
package jsonwalk
