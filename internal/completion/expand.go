package completion

import (
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

// expandEnvVars replaces $NAME references with their values. Unset variables
// expand to nothing and "\$" stands for a literal dollar sign.
func expandEnvVars(s string, env osenv.Env) string {
	if !strings.Contains(s, "$") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '$':
			b.WriteByte('$')
			i++
		case c == '$':
			j := i + 1
			for j < len(s) && isVarNameChar(s[j]) {
				j++
			}
			if j == i+1 {
				b.WriteByte('$')
				continue
			}
			b.WriteString(env.Getenv(s[i+1 : j]))
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isVarNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
