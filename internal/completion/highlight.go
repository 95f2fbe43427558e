package completion

import (
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// HighlightGroups are the names :highlight accepts as its first argument
var HighlightGroups = []string{
	"Win",
	"Directory",
	"Link",
	"BrokenLink",
	"Socket",
	"Device",
	"Fifo",
	"Executable",
	"Selected",
	"CurrLine",
	"TopLine",
	"TopLineSel",
	"StatusLine",
	"WildMenu",
	"CmdLine",
	"ErrorMsg",
	"Border",
}

// ColorNames are the named terminal colors
var ColorNames = []string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
}

var highlightKeys = []string{
	"cterm",
	"ctermfg",
	"ctermbg",
}

var highlightStyles = []string{
	"bold",
	"underline",
	"reverse",
	"inverse",
	"standout",
	"none",
}

const stylesKey = "cterm"

// CompleteHighlightGroup completes a highlight group name, ignoring case
func (e *Engine) CompleteHighlightGroup(list *candidates.List, fragment string) {
	completeFixed(list, HighlightGroups, fragment, true)
}

// CompleteHighlightArg completes one "key=value" argument of :highlight and
// returns how many leading bytes of arg the completed part skips.
//
// Without "=" the key is completed. After "=" the value is completed: style
// flags when the key is (a prefix of) "cterm", where only the part after the
// last "," is completed, and color names otherwise.
func (e *Engine) CompleteHighlightArg(list *candidates.List, arg string) int {
	key, value, found := strings.Cut(arg, "=")
	if !found {
		for _, k := range highlightKeys {
			if strings.HasPrefix(k, arg) {
				list.Add(k)
			}
		}
		list.EndGroup()
		list.Add(arg)
		return 0
	}

	offset := len(key) + 1
	if strings.HasPrefix(stylesKey, key) {
		if comma := strings.LastIndexByte(value, ','); comma >= 0 {
			offset += comma + 1
			value = value[comma+1:]
		}
		for _, style := range highlightStyles {
			if hasPrefix(style, value, true) {
				list.Add(style)
			}
		}
	} else {
		for _, literal := range []string{"default", "none"} {
			if hasPrefix(literal, value, true) {
				list.Add(literal)
			}
		}
		for _, color := range ColorNames {
			if hasPrefix(color, value, true) {
				list.Add(color)
			}
		}
	}
	list.EndGroup()
	list.Add(value)
	return offset
}
