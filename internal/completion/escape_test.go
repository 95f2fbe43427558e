package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

func TestEscapeFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"plain.txt", "plain.txt"},
		{"with space", `with\ space`},
		{"100%", "100%%"},
		{"a;b|c&d", `a\;b\|c\&d`},
		{"$HOME", `\$HOME`},
		{"(x)[y]{z}", `\(x\)\[y\]\{z\}`},
		{`quote"s'`, `quote\"s\'`},
		{"~file", `\~file`},
		{"a~b", "a~b"},
		{"#tag", `\#tag`},
		{"a#b", "a#b"},
		{"-rf", "./-rf"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeFilename(tt.name))
		})
	}
}

func TestEscapeForCD(t *testing.T) {
	assert.Equal(t, `Program\ Files`, escapeForCD("Program Files"))
	assert.Equal(t, `C:\\dir`, escapeForCD(`C:\dir`))
	assert.Equal(t, `\$x%%`, escapeForCD("$x%"))
	assert.Equal(t, "a;b", escapeForCD("a;b"))
}

func TestCompletionType_Escape(t *testing.T) {
	skipOnWindows(t)

	assert.Equal(t, `a\ b`, AllEscaped.escape("a b"))
	assert.Equal(t, `a\ b`, DirOnly.escape("a b"))
	assert.Equal(t, "a b", AllUnescaped.escape("a b"))
	assert.Equal(t, "a b", FileOnlyUnescaped.escape("a b"))
}

func TestExpandEnvVars(t *testing.T) {
	env := osenv.Map{"HOME": "/home/user", "X_1": "one"}

	tests := []struct {
		in   string
		want string
	}{
		{"no vars", "no vars"},
		{"$HOME/docs", "/home/user/docs"},
		{"$X_1-$X_1", "one-one"},
		{"$UNSET/x", "/x"},
		{`\$HOME`, "$HOME"},
		{"cost$", "cost$"},
		{"$ alone", "$ alone"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnvVars(tt.in, env))
		})
	}
}
