package formats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minond/acm/models"
)

func parse(t *testing.T, ext, raw string) (models.Document, error) {
	t.Helper()
	p, err := NewRegistry().MustLookup(ext)
	require.NoError(t, err)
	return p.Parse([]byte(raw))
}

// ── json ────────────────────────────────────────────────────────────────────

func TestJSONParser(t *testing.T) {
	doc, err := parse(t, "json", `{"hi": true, "server": {"port": 8080}, "list": [1, "two"]}`)
	require.NoError(t, err)

	assert.Equal(t, true, doc["hi"])
	assert.Equal(t, models.Document{"port": float64(8080)}, doc["server"])
	assert.Equal(t, []any{float64(1), "two"}, doc["list"])
}

func TestJSONParser_Errors(t *testing.T) {
	_, err := parse(t, "json", `{ this is not json }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json")

	_, err = parse(t, "json", `[1, 2]`)
	assert.ErrorIs(t, err, ErrNotDocument)
}

// ── json5 ───────────────────────────────────────────────────────────────────

func TestJSON5Parser(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "double quoted string", raw: `{"a": "double"}`, want: "double"},
		{name: "single quoted string", raw: `{"a": 'single'}`, want: "single"},
		{name: "unquoted key", raw: `{a: 1}`, want: float64(1)},
		{name: "hexadecimal number", raw: `{"a": 0x10}`, want: float64(16)},
		{name: "leading decimal point", raw: `{"a": .5}`, want: 0.5},
		{name: "trailing decimal point", raw: `{"a": 5.}`, want: float64(5)},
		{name: "explicit plus sign", raw: `{"a": +1}`, want: float64(1)},
		{name: "trailing comma", raw: `{"a": [1, 2,],}`, want: []any{float64(1), float64(2)}},
		{name: "line comment", raw: "{\n// note\n\"a\": true\n}", want: true},
		{name: "block comment", raw: `{/* note */ "a": null}`, want: nil},
		{name: "nested object", raw: `{a: {deep: true,},}`, want: models.Document{"deep": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parse(t, "json5", tt.raw)
			require.NoError(t, err)
			require.Contains(t, doc, "a")
			assert.Equal(t, tt.want, doc["a"])
		})
	}
}

func TestJSON5Parser_Infinity(t *testing.T) {
	doc, err := parse(t, "json5", `{"a": Infinity, "b": -Infinity}`)
	require.NoError(t, err)

	a, ok := doc["a"].(float64)
	require.True(t, ok)
	assert.True(t, math.IsInf(a, 1))

	b, ok := doc["b"].(float64)
	require.True(t, ok)
	assert.True(t, math.IsInf(b, -1))
}

func TestJSON5Parser_NotDocument(t *testing.T) {
	_, err := parse(t, "json5", `['a', 'b']`)
	assert.ErrorIs(t, err, ErrNotDocument)

	doc, err := parse(t, "json5", "  \n")
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestJSON5Parser_Malformed(t *testing.T) {
	_, err := parse(t, "json5", `{unterminated: `)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json5")
}

// ── yaml ────────────────────────────────────────────────────────────────────

func TestYAMLParser(t *testing.T) {
	doc, err := parse(t, "yml", "yml: true\nserver:\n  port: 8080\n  hosts:\n    - a\n    - b\n")
	require.NoError(t, err)

	assert.Equal(t, true, doc["yml"])
	assert.Equal(t, models.Document{"port": 8080, "hosts": []any{"a", "b"}}, doc["server"])
}

func TestYAMLParser_NonStringKeys(t *testing.T) {
	doc, err := parse(t, "yaml", "codes:\n  1: one\n  2: two\n")
	require.NoError(t, err)

	assert.Equal(t, models.Document{"1": "one", "2": "two"}, doc["codes"])
}

func TestYAMLParser_EmptyFile(t *testing.T) {
	doc, err := parse(t, "yaml", "")
	require.NoError(t, err)
	assert.Equal(t, models.Document{}, doc)
}

func TestYAMLParser_Errors(t *testing.T) {
	_, err := parse(t, "yaml", "key: [unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml")

	_, err = parse(t, "yaml", "- a\n- b\n")
	assert.ErrorIs(t, err, ErrNotDocument)

	_, err = parse(t, "yaml", "just a string")
	assert.ErrorIs(t, err, ErrNotDocument)
}

// ── toml ────────────────────────────────────────────────────────────────────

func TestTOMLParser(t *testing.T) {
	doc, err := parse(t, "toml", `
title = "app"

[server]
port = 8080

[[backends]]
name = "a"

[[backends]]
name = "b"
`)
	require.NoError(t, err)

	assert.Equal(t, "app", doc["title"])
	assert.Equal(t, models.Document{"port": int64(8080)}, doc["server"])
	assert.Equal(t, []any{models.Document{"name": "a"}, models.Document{"name": "b"}}, doc["backends"])
}

func TestTOMLParser_Malformed(t *testing.T) {
	_, err := parse(t, "toml", `title = `)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding toml")
}

// ── ini ─────────────────────────────────────────────────────────────────────

func TestINIParser(t *testing.T) {
	doc, err := parse(t, "ini", `
ini = true
off = false
name = app
list[] = a
list[] = b

[database]
host = localhost

[a.b]
c = null
`)
	require.NoError(t, err)

	assert.Equal(t, true, doc["ini"])
	assert.Equal(t, false, doc["off"])
	assert.Equal(t, "app", doc["name"])
	assert.Equal(t, []any{"a", "b"}, doc["list"])
	assert.Equal(t, models.Document{"host": "localhost"}, doc["database"])

	a, ok := doc["a"].(models.Document)
	require.True(t, ok)
	b, ok := a["b"].(models.Document)
	require.True(t, ok)
	assert.Contains(t, b, "c")
	assert.Nil(t, b["c"])
}

func TestINIParser_BareKeys(t *testing.T) {
	doc, err := parse(t, "ini", "enabled\nname = app\n\n[feature]\nbeta\n")
	require.NoError(t, err)

	assert.Equal(t, true, doc["enabled"])
	assert.Equal(t, "app", doc["name"])
	assert.Equal(t, models.Document{"beta": true}, doc["feature"])
}

func TestINIParser_Malformed(t *testing.T) {
	_, err := parse(t, "ini", "[unclosed\nkey = value\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding ini")
}

// ── normalize ───────────────────────────────────────────────────────────────

func TestToDocument(t *testing.T) {
	doc, err := toDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, models.Document{}, doc)

	doc, err = toDocument(map[any]any{1: map[any]any{"x": []any{map[any]any{"y": 2}}}})
	require.NoError(t, err)
	assert.Equal(t, models.Document{"1": models.Document{"x": []any{models.Document{"y": 2}}}}, doc)

	_, err = toDocument("scalar")
	assert.ErrorIs(t, err, ErrNotDocument)
}
