package completion

import (
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

// CompleteFilename completes a path fragment relative to the active pane
func (e *Engine) CompleteFilename(list *candidates.List, fragment string, typ CompletionType) {
	e.CompleteFilenameIn(list, e.state.CurrentDir(), fragment, typ)
}

// CompleteFilenameIn completes a path fragment relative to base.
//
// A "~name" fragment without a slash is a complete target by itself and is
// offered expanded as the only candidate. Otherwise the directory part is
// listed and matching entries are added as one group followed by the name
// prefix as fallback. Unreadable directories yield just the name prefix.
func (e *Engine) CompleteFilenameIn(list *candidates.List, base, fragment string, typ CompletionType) {
	if strings.HasPrefix(fragment, "~") && !strings.Contains(fragment, "/") {
		list.Add(osenv.ExpandTilde(fragment, e.env))
		return
	}

	dir, name := splitFragment(fragment, typ, e.env)
	lister, target := e.resolveDir(base, dir)

	names, err := lister.List(target)
	if err != nil {
		e.log.Debug().Str("dir", target).Err(err).Msg("Directory not readable, offering fragment")
		if typ != ExecOnly {
			list.Add(name)
		}
		return
	}

	e.addEntries(list, lister, target, names, name, typ)
}

// splitFragment expands the fragment and splits it into the directory to list
// and the name prefix to match. The name keeps "$VAR" references unexpanded
// unless the fragment has a directory part.
func splitFragment(fragment string, typ CompletionType, env osenv.Env) (dir, name string) {
	name = osenv.ExpandTilde(fragment, env)
	expanded := expandEnvVars(name, env)

	if i := strings.LastIndexByte(expanded, '/'); i >= 0 && typ.splitsPath() {
		return expanded[:i+1], expanded[i+1:]
	}
	return ".", name
}

func (e *Engine) addEntries(list *candidates.List, lister Lister, dir string, names []string, prefix string, typ CompletionType) {
	for _, n := range names {
		if prefix == "" && strings.HasPrefix(n, ".") {
			continue
		}
		if !osenv.HasPathPrefix(n, prefix) {
			continue
		}

		isDir := lister.IsDir(dir, n)
		switch typ {
		case DirOnly:
			if !isDir {
				continue
			}
		case ExecOnly:
			if !lister.IsExec(dir, n) {
				continue
			}
		case DirOrExec:
			if !isDir && !lister.IsExec(dir, n) {
				continue
			}
		}

		if isDir && typ.marksDirs() {
			n += "/"
		}
		list.Add(typ.escape(n))
	}

	list.EndGroup()

	// Executable search adds one fallback after scanning every directory.
	if typ == ExecOnly {
		return
	}
	if list.Count() == 0 {
		list.Add(prefix)
	} else {
		list.Add(typ.escape(prefix))
	}
}
