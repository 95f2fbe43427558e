package completion

import (
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// CompleteHelp completes help tags containing fragment anywhere. Without the
// vim help integration nothing is added at all.
func (e *Engine) CompleteHelp(list *candidates.List, fragment string) {
	if !e.state.UseVimHelp() {
		return
	}

	if e.tags != nil {
		for _, tag := range e.tags.Tags() {
			if strings.Contains(tag, fragment) {
				list.Add(tag)
			}
		}
	}
	list.EndGroup()
	list.Add(fragment)
}
