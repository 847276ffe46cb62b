package fields

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	fields := map[string]any{
		"env":  map[string]string{"HOME": "/home/app", "EMPTY": ""},
		"name": "Marcos",
		"port": 8080,
		"nil":  nil,
		"deep": map[string]any{"list": []any{"zero", "one"}},
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no placeholders", raw: "name: app", want: "name: app"},
		{name: "env field", raw: "home: ${env.HOME}", want: "home: /home/app"},
		{name: "top level field", raw: "name: ${name}", want: "name: Marcos"},
		{name: "non string value", raw: "port: ${port}", want: "port: 8080"},
		{name: "nil renders empty", raw: "v: '${nil}'", want: "v: ''"},
		{name: "empty env value", raw: "v: '${env.EMPTY}'", want: "v: ''"},
		{name: "array index", raw: "v: ${deep.list.1}", want: "v: one"},
		{name: "spaces inside braces", raw: "v: ${ name }", want: "v: Marcos"},
		{name: "several placeholders", raw: "${name}@${env.HOME}:${port}", want: "Marcos@/home/app:8080"},
		{name: "escaped placeholder", raw: "v: $${name}", want: "v: ${name}"},
		{name: "lone dollar and braces", raw: `{"price": "$5", "set": "{a}"}`, want: `{"price": "$5", "set": "{a}"}`},
		{name: "unterminated placeholder", raw: "v: ${name", want: "v: ${name"},
		{name: "dollar at end", raw: "v: $", want: "v: $"},
		{name: "unterminated before quote", raw: `{"price": "${name", "set": {}}`, want: `{"price": "${name", "set": {}}`},
		{name: "unterminated before line break", raw: "a: ${name\nb: {c: 1}", want: "a: ${name\nb: {c: 1}"},
		{name: "unterminated then placeholder", raw: "a: ${name ${port}", want: "a: ${name 8080"},
		{name: "unterminated at end of input", raw: "a: ${", want: "a: ${"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand([]byte(tt.raw), fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestExpand_UnresolvedField(t *testing.T) {
	fields := map[string]any{"env": map[string]string{}}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing env variable", raw: "v: ${env.MISSING}"},
		{name: "missing namespace", raw: "v: ${nope.value}"},
		{name: "empty placeholder", raw: "v: ${}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand([]byte(tt.raw), fields)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrUnresolvedField)
		})
	}
}

func TestExpand_NilFields(t *testing.T) {
	got, err := Expand([]byte("plain"), nil)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(got))

	_, err = Expand([]byte("${env.HOME}"), nil)
	assert.ErrorIs(t, err, ErrUnresolvedField)
}

func TestProcess(t *testing.T) {
	process := Process([]string{"--verbose", "run"})

	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, cwd, process["cwd"])
	assert.Equal(t, os.Getpid(), process["pid"])
	assert.Equal(t, runtime.GOOS, process["platform"])
	assert.Equal(t, runtime.GOARCH, process["arch"])
	assert.Equal(t, []any{"--verbose", "run"}, process["argv"])
	assert.Contains(t, process, "execPath")
}
