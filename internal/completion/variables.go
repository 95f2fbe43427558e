package completion

import (
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// CompleteVariable completes a "$NAME" variable reference and returns the
// offset of the completed name within text. Only environment variables exist,
// so text without a leading "$" is just offered back.
func (e *Engine) CompleteVariable(list *candidates.List, text string) int {
	if !strings.HasPrefix(text, "$") {
		list.Add(text)
		return 0
	}

	e.CompleteEnvVar(list, text[1:])
	return 1
}
