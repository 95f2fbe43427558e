// Package completion completes arguments of the file manager's command line:
// file names, executables, environment variables, accounts, options, colors
// and the other small grammars the commands accept.
package completion

import (
	"github.com/NikitaCOEUR/vicmd/internal/filetype"
)

// CompletionType selects which directory entries qualify for filename
// completion and whether the results are escaped
type CompletionType int

const (
	// AllEscaped keeps every entry and escapes it for the command line
	AllEscaped CompletionType = iota
	// AllUnescaped keeps every entry and inserts it verbatim
	AllUnescaped
	// AllWithoutSlash keeps every entry without marking directories with "/"
	AllWithoutSlash
	// DirOnly keeps directories and links to directories
	DirOnly
	// ExecOnly keeps executable non-directories
	ExecOnly
	// DirOrExec keeps directories and executables
	DirOrExec
	// FileOnly treats the whole fragment as a name in the base directory
	FileOnly
	// FileOnlyUnescaped is FileOnly without escaping
	FileOnlyUnescaped
)

var typeNames = map[CompletionType]string{
	AllEscaped:        "all",
	AllUnescaped:      "all-unescaped",
	AllWithoutSlash:   "all-without-slash",
	DirOnly:           "dir",
	ExecOnly:          "exec",
	DirOrExec:         "dir-or-exec",
	FileOnly:          "file",
	FileOnlyUnescaped: "file-unescaped",
}

func (t CompletionType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// escapes reports whether candidates are escaped for the command line
func (t CompletionType) escapes() bool {
	return t != AllUnescaped && t != FileOnlyUnescaped
}

// marksDirs reports whether directories get a trailing slash
func (t CompletionType) marksDirs() bool {
	return t != AllWithoutSlash
}

// splitsPath reports whether the fragment may name a directory to search in
func (t CompletionType) splitsPath() bool {
	return t != FileOnly && t != FileOnlyUnescaped
}

func (t CompletionType) escape(name string) string {
	if !t.escapes() {
		return name
	}
	return escapeName(name)
}

// State is the part of the file manager's state completion depends on
type State interface {
	// UseVimHelp reports whether help tags come from the vim help integration
	UseVimHelp() bool
	// CurrentDir is the directory of the active pane
	CurrentDir() string
	// OtherDir is the directory of the inactive pane
	OtherDir() string
	// CurrentFile is the name of the file under cursor in the active pane
	CurrentFile() string
}

// Panes is a plain State value
type Panes struct {
	Current string
	Other   string
	File    string
	VimHelp bool
}

// UseVimHelp implements State
func (p Panes) UseVimHelp() bool { return p.VimHelp }

// CurrentDir implements State
func (p Panes) CurrentDir() string { return p.Current }

// OtherDir implements State
func (p Panes) OtherDir() string { return p.Other }

// CurrentFile implements State
func (p Panes) CurrentFile() string { return p.File }

// Associations yields the programs that can open a file
type Associations interface {
	// Programs returns programs associated with the file by name
	Programs(path string) []filetype.Record
	// MagicHandlers returns programs associated with the file's content type
	MagicHandlers(path string) []filetype.Record
}

// TagIndex yields help tags
type TagIndex interface {
	Tags() []string
}

// Accounts enumerates user and group names
type Accounts interface {
	UserNames() ([]string, error)
	GroupNames() ([]string, error)
}
