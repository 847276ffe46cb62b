package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntryPath(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantFile string
		wantPath string
	}{
		{name: "single entry is the file with no path", key: "hi", wantFile: "hi", wantPath: ""},
		{name: "second entry is the path", key: "hi.there", wantFile: "hi", wantPath: "there"},
		{name: "rest of the entries form the path", key: "hi.there.again", wantFile: "hi", wantPath: "there.again"},
		{name: "empty key", key: "", wantFile: "", wantPath: ""},
		{name: "leading delimiter has no file", key: ".there", wantFile: "", wantPath: "there"},
		{name: "trailing delimiter keeps empty path", key: "hi.", wantFile: "hi", wantPath: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, path := ParseEntryPath(tt.key)
			assert.Equal(t, tt.wantFile, file)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestParseEntryVariable(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "", want: ""},
		{key: "hi", want: "HI"},
		{key: "hi.there.man", want: "HI_THERE_MAN"},
		{key: "a.b.c", want: "A_B_C"},
		{key: "acm.test_value", want: "ACM_TEST_VALUE"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEntryVariable(tt.key))
		})
	}
}

func TestDig(t *testing.T) {
	root := map[string]any{
		"config": map[string]any{
			"ini": map[string]any{"hey": true},
			"list": []any{
				"zero",
				map[string]any{"name": "one"},
			},
			"nil": nil,
		},
		"env": map[string]string{"HOME": "/root"},
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "nested object", path: "config.ini.hey", want: true, wantOK: true},
		{name: "array index", path: "config.list.0", want: "zero", wantOK: true},
		{name: "object inside array", path: "config.list.1.name", want: "one", wantOK: true},
		{name: "string map", path: "env.HOME", want: "/root", wantOK: true},
		{name: "present nil value", path: "config.nil", want: nil, wantOK: true},
		{name: "missing key", path: "config.bad.bad.bad", wantOK: false},
		{name: "index out of range", path: "config.list.2", wantOK: false},
		{name: "non numeric index", path: "config.list.first", wantOK: false},
		{name: "through a scalar", path: "config.ini.hey.deeper", wantOK: false},
		{name: "missing string map key", path: "env.USER", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Dig(root, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDig_EmptyPathReturnsRoot(t *testing.T) {
	root := map[string]any{"a": 1}

	got, ok := Dig(root, "")
	assert.True(t, ok)
	assert.Equal(t, root, got)
}

func TestDig_NilRoot(t *testing.T) {
	got, ok := Dig(nil, "a")
	assert.False(t, ok)
	assert.Nil(t, got)
}
