package toonwriter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// num keeps the test tables readable.
func num(s string) json.Number {
	return json.Number(s)
}

func generate(t *testing.T, doc any, options Options) string {
	t.Helper()
	out, err := Generate(doc, options)
	require.NoError(t, err)
	return string(out)
}

func TestGenerate_Scalars(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want string
	}{
		{"number root", num("42"), "42\n"},
		{"string root", "hello", "hello\n"},
		{"bool root", true, "true\n"},
		{"null root", nil, "null\n"},
		{"float root", 1.5, "1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generate(t, tt.doc, DefaultOptions()))
		})
	}
}

func TestGenerate_SimpleObject(t *testing.T) {
	doc := map[string]any{"x": num("1")}
	assert.Equal(t, "x: 1\n", generate(t, doc, DefaultOptions()))
}

func TestGenerate_SortsKeys(t *testing.T) {
	doc := map[string]any{"b": num("1"), "a": num("2"), "c": num("3")}
	assert.Equal(t, "a: 2\nb: 1\nc: 3\n", generate(t, doc, DefaultOptions()))
}

func TestGenerate_NestedObject(t *testing.T) {
	doc := map[string]any{
		"name": "widget",
		"spec": map[string]any{"weight": num("1.5")},
	}
	want := "name: widget\n" +
		"spec:\n" +
		"  weight: 1.5\n"
	assert.Equal(t, want, generate(t, doc, DefaultOptions()))
}

func TestGenerate_IndentWidth(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": num("1")}}

	opts := DefaultOptions()
	opts.Indent = 4
	assert.Equal(t, "a:\n    b: 1\n", generate(t, doc, opts))

	opts.Indent = 0
	assert.Equal(t, "a:\nb: 1\n", generate(t, doc, opts))
}

func TestGenerate_InlineArray(t *testing.T) {
	doc := map[string]any{"nums": []any{num("1"), num("2"), num("3")}}

	tests := []struct {
		name      string
		delimiter string
		want      string
	}{
		{"comma", ",", "nums[3]: 1,2,3\n"},
		{"tab", "\t", "nums[3]: 1\t2\t3\n"},
		{"pipe", "|", "nums[3]: 1|2|3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Delimiter = tt.delimiter
			assert.Equal(t, tt.want, generate(t, doc, opts))
		})
	}
}

func TestGenerate_EmptyContainers(t *testing.T) {
	assert.Equal(t, "a[0]:\n", generate(t, map[string]any{"a": []any{}}, DefaultOptions()))
	assert.Equal(t, "a:\n", generate(t, map[string]any{"a": map[string]any{}}, DefaultOptions()))
	assert.Equal(t, "", generate(t, map[string]any{}, DefaultOptions()))
	assert.Equal(t, "[0]:\n", generate(t, []any{}, DefaultOptions()))
}

func TestGenerate_TabularArray(t *testing.T) {
	doc := map[string]any{
		"items": []any{
			map[string]any{"id": num("1"), "name": "bolt"},
			map[string]any{"id": num("2"), "name": "nut"},
		},
	}
	want := "items[2]{id,name}:\n" +
		"  1,bolt\n" +
		"  2,nut\n"
	assert.Equal(t, want, generate(t, doc, DefaultOptions()))
}

func TestGenerate_TabularArrayPipeDelimiter(t *testing.T) {
	doc := map[string]any{
		"items": []any{
			map[string]any{"id": num("1"), "name": "bolt"},
			map[string]any{"id": num("2"), "name": "nut"},
		},
	}
	opts := DefaultOptions()
	opts.Delimiter = "|"
	want := "items[2]{id|name}:\n" +
		"  1|bolt\n" +
		"  2|nut\n"
	assert.Equal(t, want, generate(t, doc, opts))
}

func TestGenerate_NonUniformObjectsUseListForm(t *testing.T) {
	doc := map[string]any{
		"items": []any{
			map[string]any{"id": num("1")},
			map[string]any{"name": "nut"},
		},
	}
	want := "items[2]:\n" +
		"  - id: 1\n" +
		"  - name: nut\n"
	assert.Equal(t, want, generate(t, doc, DefaultOptions()))
}

func TestGenerate_MixedListArray(t *testing.T) {
	doc := map[string]any{
		"mix": []any{
			num("1"),
			"a",
			[]any{num("2")},
			map[string]any{"k": "v", "obj": map[string]any{"z": num("1")}},
		},
	}
	want := "mix[4]:\n" +
		"  - 1\n" +
		"  - a\n" +
		"  - [1]: 2\n" +
		"  - k: v\n" +
		"    obj:\n" +
		"      z: 1\n"
	assert.Equal(t, want, generate(t, doc, DefaultOptions()))
}

func TestGenerate_RootArray(t *testing.T) {
	assert.Equal(t, "[2]: 1,2\n",
		generate(t, []any{num("1"), num("2")}, DefaultOptions()))

	want := "[2]{id}:\n" +
		"  1\n" +
		"  2\n"
	assert.Equal(t, want, generate(t, []any{
		map[string]any{"id": num("1")},
		map[string]any{"id": num("2")},
	}, DefaultOptions()))
}

func TestGenerate_StringQuoting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain word", "hello", "s: hello\n"},
		{"word with spaces", "hello world", "s: hello world\n"},
		{"empty", "", "s: \"\"\n"},
		{"leading space", " pad", "s: \" pad\"\n"},
		{"trailing space", "pad ", "s: \"pad \"\n"},
		{"looks like bool", "true", "s: \"true\"\n"},
		{"looks like null", "null", "s: \"null\"\n"},
		{"looks like number", "42", "s: \"42\"\n"},
		{"looks like float", "-1.5e3", "s: \"-1.5e3\"\n"},
		{"contains delimiter", "a,b", "s: \"a,b\"\n"},
		{"contains colon", "a:b", "s: \"a:b\"\n"},
		{"list marker", "- item", "s: \"- item\"\n"},
		{"bare dash", "-", "s: \"-\"\n"},
		{"bracket prefix", "[1]", "s: \"[1]\"\n"},
		{"brace prefix", "{x}", "s: \"{x}\"\n"},
		{"embedded newline", "a\nb", "s: \"a\\nb\"\n"},
		{"embedded quote", `say "hi"`, "s: \"say \\\"hi\\\"\"\n"},
		{"embedded backslash", `a\b`, "s: \"a\\\\b\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := map[string]any{"s": tt.in}
			assert.Equal(t, tt.want, generate(t, doc, DefaultOptions()))
		})
	}
}

func TestGenerate_QuotingDependsOnDelimiter(t *testing.T) {
	doc := map[string]any{"nums": []any{"a,b"}}

	opts := DefaultOptions()
	opts.Delimiter = "|"
	assert.Equal(t, "nums[1]: a,b\n", generate(t, doc, opts))

	opts.Delimiter = ","
	assert.Equal(t, "nums[1]: \"a,b\"\n", generate(t, doc, opts))
}

func TestGenerate_UnsafeKeysAreQuoted(t *testing.T) {
	assert.Equal(t, "\"my key\": 1\n",
		generate(t, map[string]any{"my key": num("1")}, DefaultOptions()))

	// A literal dotted key must never look like a folded path.
	assert.Equal(t, "\"a.b\": 1\n",
		generate(t, map[string]any{"a.b": num("1")}, DefaultOptions()))
}

func TestGenerate_KeyFolding(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": num("1")}},
	}

	t.Run("off keeps nesting", func(t *testing.T) {
		want := "a:\n" +
			"  b:\n" +
			"    c: 1\n"
		assert.Equal(t, want, generate(t, doc, DefaultOptions()))
	})

	t.Run("safe folds the chain", func(t *testing.T) {
		opts := DefaultOptions()
		opts.KeyFolding = FoldingSafe
		assert.Equal(t, "a.b.c: 1\n", generate(t, doc, opts))
	})

	t.Run("flatten depth caps the fold", func(t *testing.T) {
		opts := DefaultOptions()
		opts.KeyFolding = FoldingSafe
		opts.FlattenDepth = 1
		want := "a.b:\n" +
			"  c: 1\n"
		assert.Equal(t, want, generate(t, doc, opts))
	})

	t.Run("flatten depth zero disables folding", func(t *testing.T) {
		opts := DefaultOptions()
		opts.KeyFolding = FoldingSafe
		opts.FlattenDepth = 0
		want := "a:\n" +
			"  b:\n" +
			"    c: 1\n"
		assert.Equal(t, want, generate(t, doc, opts))
	})
}

func TestGenerate_KeyFoldingStopsAtMultiKeyObject(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": num("1"), "c": num("2")},
	}
	opts := DefaultOptions()
	opts.KeyFolding = FoldingSafe
	want := "a:\n" +
		"  b: 1\n" +
		"  c: 2\n"
	assert.Equal(t, want, generate(t, doc, opts))
}

func TestGenerate_KeyFoldingSkipsUnsafeKeys(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b c": num("1")},
	}
	opts := DefaultOptions()
	opts.KeyFolding = FoldingSafe
	want := "a:\n" +
		"  \"b c\": 1\n"
	assert.Equal(t, want, generate(t, doc, opts))
}

func TestGenerate_KeyFoldingIntoArray(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": []any{num("1"), num("2")}},
	}
	opts := DefaultOptions()
	opts.KeyFolding = FoldingSafe
	assert.Equal(t, "a.b[2]: 1,2\n", generate(t, doc, opts))
}

func TestGenerate_Deterministic(t *testing.T) {
	doc := map[string]any{
		"z":     num("1"),
		"a":     []any{num("1"), "x", nil},
		"inner": map[string]any{"q": "v", "p": "w"},
	}
	first := generate(t, doc, DefaultOptions())
	second := generate(t, doc, DefaultOptions())
	assert.Equal(t, first, second)
}

func TestGenerate_UnsupportedTypes(t *testing.T) {
	_, err := Generate(struct{}{}, DefaultOptions())
	assert.Error(t, err)

	_, err = Generate(map[string]any{"x": make(chan int)}, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "x"`)

	_, err = Generate(map[string]any{"arr": []any{map[string]any{"deep": struct{}{}}}}, DefaultOptions())
	assert.Error(t, err)
}

func TestGenerate_NegativeIndentRejected(t *testing.T) {
	opts := DefaultOptions()
	opts.Indent = -1
	_, err := Generate(map[string]any{"x": num("1")}, opts)
	assert.Error(t, err)
}
