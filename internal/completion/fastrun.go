package completion

import (
	"strings"

	"github.com/google/shlex"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
	"github.com/NikitaCOEUR/vicmd/internal/derrors"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

// CompleteExecutable completes a program name from the executables found in
// the search path directories. An executable present in several directories
// is offered once.
func (e *Engine) CompleteExecutable(list *candidates.List, fragment string) {
	for _, dir := range e.searchDirs() {
		e.CompleteFilenameIn(list, dir, fragment, ExecOnly)
	}
	list.Add(fragment)
}

// FastRun expands the command name at the start of cmdline to the executable
// it abbreviates so the line can be run right away.
//
// A name matching no executable or exactly one is replaced by that match. When
// several executables match and one of them is the name itself the line is
// returned unchanged. Otherwise the name is ambiguous and an
// *derrors.AmbiguousCommandError lists the candidates.
func (e *Engine) FastRun(cmdline string) (string, error) {
	raw, tail := splitCommand(cmdline)
	command := unescapeWord(raw)

	list := candidates.New()
	e.CompleteExecutable(list, command)

	items := list.Items()
	matches := items[:len(items)-1]

	switch {
	case len(matches) <= 1:
		expanded := raw
		if len(matches) == 1 {
			expanded = matches[0]
		}
		e.log.Debug().Str("command", command).Str("expanded", expanded).Msg("Fast run expanded")
		if tail == "" {
			return expanded, nil
		}
		return expanded + " " + tail, nil

	case containsPath(matches, raw):
		return cmdline, nil

	default:
		e.log.Debug().Str("command", command).Strs("matches", matches).Msg("Fast run ambiguous")
		return "", derrors.NewAmbiguousCommandError(command, matches)
	}
}

// splitCommand splits a command line at the first unescaped blank into the
// command word as typed and the remaining arguments
func splitCommand(cmdline string) (command, tail string) {
	cmdline = strings.TrimLeft(cmdline, " \t")

	i := 0
	for ; i < len(cmdline); i++ {
		if cmdline[i] == '\\' {
			i++
			continue
		}
		if cmdline[i] == ' ' || cmdline[i] == '\t' {
			break
		}
	}
	if i > len(cmdline) {
		i = len(cmdline)
	}
	return cmdline[:i], strings.TrimLeft(cmdline[i:], " \t")
}

// unescapeWord removes shell quoting from a single word
func unescapeWord(word string) string {
	words, err := shlex.Split(word)
	if err != nil || len(words) != 1 {
		return word
	}
	return words[0]
}

func containsPath(paths []string, p string) bool {
	for _, candidate := range paths {
		if osenv.PathEqual(candidate, p) {
			return true
		}
	}
	return false
}
