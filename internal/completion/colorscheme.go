package completion

import (
	"os"
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// colorSchemeExt is stripped from scheme file names
const colorSchemeExt = ".vifm"

// CompleteColorScheme completes the name of a color scheme found in the colors
// directory
func (e *Engine) CompleteColorScheme(list *candidates.List, fragment string) {
	for _, name := range e.colorSchemes() {
		if hasPrefix(name, fragment, false) {
			list.Add(name)
		}
	}
	list.EndGroup()
	list.Add(fragment)
}

func (e *Engine) colorSchemes() []string {
	if e.colorsDir == "" {
		return nil
	}

	entries, err := os.ReadDir(e.colorsDir)
	if err != nil {
		e.log.Debug().Str("dir", e.colorsDir).Err(err).Msg("Colors directory not readable")
		return nil
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, colorSchemeExt))
	}
	return names
}
