package walker_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icloudza/jsonwalk/category"
	"github.com/icloudza/jsonwalk/ordered"
	"github.com/icloudza/jsonwalk/walker"
	"github.com/icloudza/jsonwalk/walkerr"
)

type visit struct {
	cat    category.Category
	key    string
	root   bool
	parent category.Category
	meta   string
}

func recorder(out *[]visit) walker.Handlers[string] {
	return walker.Uniform(func(k walker.Key, v any, parent category.Category, meta string) (string, error) {
		*out = append(*out, visit{
			cat:    category.Classify(v),
			key:    k.String(),
			root:   k.IsRoot(),
			parent: parent,
			meta:   meta,
		})
		return meta, nil
	})
}

// 嵌套样本：3 层，覆盖全部六种类别
func sample() any {
	return ordered.Object{
		{Key: "name", Value: "alice"},
		{Key: "tags", Value: []any{"a", int64(2), true, nil}},
		{Key: "profile", Value: ordered.Object{
			{Key: "age", Value: 30.5},
			{Key: "extra", Value: map[string]any{"z": false, "y": "why"}},
		}},
	}
}

// ========== 场景 ==========

func TestScenario_ObjectWithNumber(t *testing.T) {
	var got []visit
	h := recorder(&got)

	err := walker.Walk(ordered.Object{{Key: "a", Value: int64(1)}}, h, "")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, category.Object, got[0].cat)
	assert.True(t, got[0].root)
	assert.Equal(t, category.None, got[0].parent)

	assert.Equal(t, category.Number, got[1].cat)
	assert.Equal(t, "a", got[1].key)
	assert.Equal(t, category.Object, got[1].parent)
}

func TestScenario_ArrayMetadata(t *testing.T) {
	var metas []string
	h := walker.Handlers[string]{
		Array: func(walker.Key, any, category.Category, string) (string, error) {
			return "root", nil
		},
		Number: func(_ walker.Key, _ any, _ category.Category, meta string) (string, error) {
			metas = append(metas, meta)
			return "", nil
		},
	}
	require.NoError(t, walker.Walk([]any{10.0, 20.0}, h, ""))
	assert.Equal(t, []string{"root", "root"}, metas)
}

func TestScenario_PathConcatenation(t *testing.T) {
	concat := func(k walker.Key, _ any, _ category.Category, meta string) (string, error) {
		if k.IsRoot() {
			return meta, nil
		}
		return meta + "." + k.String(), nil
	}
	var got string
	h := walker.Handlers[string]{
		Object: concat,
		String: func(k walker.Key, _ any, p category.Category, meta string) (string, error) {
			got = meta + "." + k.String()
			return "", nil
		},
	}
	in := ordered.Object{{Key: "a", Value: ordered.Object{{Key: "b", Value: "x"}}}}
	require.NoError(t, walker.Walk(in, h, "$"))
	assert.Equal(t, "$.a.b", got)
}

func TestScenario_UnhandledNull(t *testing.T) {
	calls := 0
	h := walker.Handlers[string]{
		Object: func(walker.Key, any, category.Category, string) (string, error) {
			calls++
			return "", nil
		},
	}
	require.NoError(t, walker.Walk(map[string]any{"a": nil}, h, ""))
	assert.Equal(t, 1, calls)
}

// ========== 性质 ==========

func TestWalk_VisitsEveryNodeOnce(t *testing.T) {
	var got []visit
	require.NoError(t, walker.Walk(sample(), recorder(&got), ""))
	// root, name, tags, 4 elems, profile, age, extra, y, z
	assert.Len(t, got, 12)
}

func TestWalk_Order(t *testing.T) {
	var got []visit
	require.NoError(t, walker.Walk(sample(), recorder(&got), ""))

	keys := make([]string, len(got))
	for i, v := range got {
		keys[i] = v.key
	}
	// map[string]any 的键按字典序
	assert.Equal(t, []string{"", "name", "tags", "0", "1", "2", "3", "profile", "age", "extra", "y", "z"}, keys)
}

func TestWalk_ParentCategory(t *testing.T) {
	var got []visit
	require.NoError(t, walker.Walk(sample(), recorder(&got), ""))
	for _, v := range got {
		switch v.key {
		case "":
			assert.Equal(t, category.None, v.parent)
		case "0", "1", "2", "3":
			assert.Equal(t, category.Array, v.parent)
		default:
			assert.Equal(t, category.Object, v.parent, v.key)
		}
	}
}

func TestWalk_MetadataFromImmediateParent(t *testing.T) {
	type seen struct{ key, meta string }
	var got []seen

	// 每个容器返回自己的 key，子节点应当只看到直接父节点的 key
	h := walker.Uniform(func(k walker.Key, v any, _ category.Category, meta string) (string, error) {
		got = append(got, seen{k.String(), meta})
		return "from:" + k.String(), nil
	})
	in := ordered.Object{{Key: "a", Value: ordered.Object{{Key: "b", Value: []any{"x"}}}}}
	require.NoError(t, walker.Walk(in, h, "init"))

	assert.Equal(t, []seen{
		{"", "init"},
		{"a", "from:"},
		{"b", "from:a"},
		{"0", "from:b"},
	}, got)
}

func TestWalk_UnhandledContainerPassesZeroMeta(t *testing.T) {
	var metas []string
	h := walker.Handlers[string]{
		String: func(_ walker.Key, _ any, _ category.Category, meta string) (string, error) {
			metas = append(metas, meta)
			return "ignored", nil
		},
	}
	require.NoError(t, walker.Walk(ordered.Object{{Key: "a", Value: []any{"x", "y"}}}, h, "init"))
	assert.Equal(t, []string{"", ""}, metas)
}

func TestWalk_StructuredMeta(t *testing.T) {
	var paths [][]string
	push := func(k walker.Key, _ any, _ category.Category, meta []string) ([]string, error) {
		if k.IsRoot() {
			return meta, nil
		}
		next := make([]string, len(meta), len(meta)+1)
		copy(next, meta)
		return append(next, k.String()), nil
	}
	h := walker.Handlers[[]string]{
		Object: push,
		Array:  push,
		Number: func(k walker.Key, _ any, _ category.Category, meta []string) ([]string, error) {
			p, _ := push(k, nil, category.None, meta)
			paths = append(paths, p)
			return nil, nil
		},
	}
	in := map[string]any{"a": []any{1.0, map[string]any{"b": 2.0}}}
	require.NoError(t, walker.Walk(in, h, nil))
	assert.Equal(t, [][]string{{"a", "0"}, {"a", "1", "b"}}, paths)
}

func TestWalk_Idempotent(t *testing.T) {
	var first, second []visit
	require.NoError(t, walker.Walk(sample(), recorder(&first), "m"))
	require.NoError(t, walker.Walk(sample(), recorder(&second), "m"))
	assert.Equal(t, first, second)
}

func TestWalk_ScalarRoot(t *testing.T) {
	for _, v := range []any{"s", 1.0, true, nil} {
		var got []visit
		require.NoError(t, walker.Walk(v, recorder(&got), ""))
		require.Len(t, got, 1)
		assert.True(t, got[0].root)
		assert.Equal(t, category.Classify(v), got[0].cat)
	}
}

func TestWalk_EmptyHandlers(t *testing.T) {
	assert.NoError(t, walker.Walk(sample(), walker.Handlers[int]{}, 0))
}

func TestWalk_NilOrderedPointerIsNull(t *testing.T) {
	var nilObj *ordered.Object
	var got []visit
	require.NoError(t, walker.Walk(nilObj, recorder(&got), ""))
	require.Len(t, got, 1)
	assert.Equal(t, category.Null, got[0].cat)
}

// ========== 错误 ==========

func TestWalk_HandlerErrorPropagates(t *testing.T) {
	stop := errors.New("stop here")
	var seen []string
	h := walker.Uniform(func(k walker.Key, _ any, _ category.Category, _ struct{}) (struct{}, error) {
		seen = append(seen, k.String())
		if k.String() == "1" {
			return struct{}{}, fmt.Errorf("wrapped: %w", stop)
		}
		return struct{}{}, nil
	})

	err := walker.Walk([]any{"a", "b", "c"}, h, struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, "wrapped: stop here", err.Error())
	// 累加器停在出错时的状态
	assert.Equal(t, []string{"", "0", "1"}, seen)
}

func TestWalk_InvalidNestedValue(t *testing.T) {
	err := walker.Walk(map[string]any{"f": func() {}}, walker.Handlers[int]{}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, walkerr.ErrInvalidInput)
}

// ========== Handlers ==========

func TestHandlers_ForAndSet(t *testing.T) {
	var h walker.Handlers[int]
	for _, c := range category.All() {
		assert.Nil(t, h.For(c))
	}

	fn := func(walker.Key, any, category.Category, int) (int, error) { return 7, nil }
	for _, c := range category.All() {
		h.Set(c, fn)
		require.NotNil(t, h.For(c), c.String())
	}
	h.Set(category.None, nil)
	assert.Nil(t, h.For(category.None))
	assert.Nil(t, h.For(category.Invalid))

	var nilH *walker.Handlers[int]
	assert.Nil(t, nilH.For(category.Object))
}

func TestKey(t *testing.T) {
	assert.True(t, walker.RootKey.IsRoot())
	assert.Equal(t, "", walker.RootKey.String())
	assert.Equal(t, -1, walker.RootKey.Index())

	k := walker.NameKey("a")
	assert.True(t, k.IsName())
	assert.Equal(t, "a", k.Name())
	assert.Equal(t, -1, k.Index())

	i := walker.IndexKey(3)
	assert.True(t, i.IsIndex())
	assert.Equal(t, 3, i.Index())
	assert.Equal(t, "3", i.String())

	// 空属性名不是根
	assert.False(t, walker.NameKey("").IsRoot())
}

// ========== 性能测试 ==========

func BenchmarkWalk(b *testing.B) {
	v := sample()
	h := walker.Uniform(func(_ walker.Key, _ any, _ category.Category, m int) (int, error) {
		return m + 1, nil
	})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = walker.Walk(v, h, 0)
	}
}
