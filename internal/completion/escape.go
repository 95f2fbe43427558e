package completion

import (
	"runtime"
	"strings"
)

// escapeName escapes a file name for reinsertion into the command line
func escapeName(name string) string {
	if runtime.GOOS == "windows" {
		return escapeForCD(name)
	}
	return escapeFilename(name)
}

// escapeFilename backslash-escapes shell metacharacters. A leading "-" gets a
// "./" prefix so the name is not taken for an option, and "%" is doubled so it
// is not taken for a macro.
func escapeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name) * 2)

	if strings.HasPrefix(name, "-") {
		b.WriteString("./")
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch c {
		case '%':
			b.WriteByte('%')
		case '\'', '\\', '\r', '\n', '\t', '"', ';', ' ', '?', '|', '[', ']',
			'{', '}', '<', '>', '`', '!', '$', '&', '*', '(', ')':
			b.WriteByte('\\')
		case '~', '#':
			if i == 0 {
				b.WriteByte('\\')
			}
		}
		b.WriteByte(c)
	}

	return b.String()
}

// escapeForCD escapes names for cmd.exe-style command lines
func escapeForCD(name string) string {
	var b strings.Builder
	b.Grow(len(name) * 2)

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch c {
		case '\\', ' ', '$':
			b.WriteByte('\\')
		case '%':
			b.WriteByte('%')
		}
		b.WriteByte(c)
	}

	return b.String()
}
