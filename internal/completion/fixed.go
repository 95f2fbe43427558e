package completion

import (
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// historyKinds are the arguments :history accepts
var historyKinds = []string{
	".",
	"dir",
	"@",
	"input",
	"/",
	"search",
	"fsearch",
	"?",
	"bsearch",
	":",
	"cmd",
}

// winrunVariants select the windows :winrun applies to
var winrunVariants = []string{"^", "$", "%", ".", ","}

// completeFixed adds the words of table starting with prefix, then the prefix
func completeFixed(list *candidates.List, table []string, prefix string, ignoreCase bool) {
	for _, word := range table {
		if hasPrefix(word, prefix, ignoreCase) {
			list.Add(word)
		}
	}
	list.EndGroup()
	list.Add(prefix)
}

func hasPrefix(s, prefix string, ignoreCase bool) bool {
	if len(prefix) > len(s) {
		return false
	}
	if ignoreCase {
		return strings.EqualFold(s[:len(prefix)], prefix)
	}
	return strings.HasPrefix(s, prefix)
}

// CompleteHistory completes the kind argument of :history
func (e *Engine) CompleteHistory(list *candidates.List, fragment string) {
	completeFixed(list, historyKinds, fragment, false)
}

// CompleteWinrun completes the window selector of :winrun
func (e *Engine) CompleteWinrun(list *candidates.List, fragment string) {
	completeFixed(list, winrunVariants, fragment, false)
}
