package completion

import (
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// CompleteEnvVar completes the name of an environment variable, the text that
// follows a "$". The prefix is matched against whole "NAME=value" entries and
// only the name is offered.
func (e *Engine) CompleteEnvVar(list *candidates.List, prefix string) {
	for _, entry := range e.env.Environ() {
		if !strings.HasPrefix(entry, prefix) {
			continue
		}
		name, _, _ := strings.Cut(entry, "=")
		list.Add(name)
	}
	list.EndGroup()
	list.Add(prefix)
}
