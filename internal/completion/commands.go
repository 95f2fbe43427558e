package completion

import "strings"

// CommandID identifies a command whose arguments get special completion
type CommandID int

const (
	// CmdOther is any command completed as plain file names
	CmdOther CommandID = iota
	CmdColorscheme
	CmdSet
	CmdLet
	CmdUnlet
	CmdHelp
	CmdHistory
	CmdChown
	CmdFile
	CmdHighlight
	CmdCd
	CmdPushd
	CmdExecute
	CmdSource
	CmdWindo
	CmdWinrun
	CmdSync
	CmdMkdir
	CmdCopy
	CmdMove
	CmdAlink
	CmdRlink
	CmdSplit
	CmdVsplit
	CmdFind
	CmdTouch
	CmdRename
)

type commandName struct {
	id   CommandID
	name string
	// min is the shortest accepted abbreviation
	min int
}

var commandNames = []commandName{
	{CmdExecute, "!", 1},
	{CmdAlink, "alink", 2},
	{CmdCd, "cd", 2},
	{CmdChown, "chown", 3},
	{CmdColorscheme, "colorscheme", 4},
	{CmdCopy, "copy", 2},
	{CmdFile, "file", 1},
	{CmdFind, "find", 3},
	{CmdHelp, "help", 1},
	{CmdHighlight, "highlight", 2},
	{CmdHistory, "history", 3},
	{CmdLet, "let", 3},
	{CmdMkdir, "mkdir", 2},
	{CmdMove, "move", 1},
	{CmdPushd, "pushd", 5},
	{CmdRename, "rename", 6},
	{CmdRlink, "rlink", 2},
	{CmdSet, "set", 2},
	{CmdSource, "source", 2},
	{CmdSplit, "split", 2},
	{CmdSync, "sync", 4},
	{CmdTouch, "touch", 5},
	{CmdUnlet, "unlet", 3},
	{CmdVsplit, "vsplit", 2},
	{CmdWindo, "windo", 5},
	{CmdWinrun, "winrun", 6},
}

// LookupCommand resolves a command name, full or abbreviated down to its
// minimum length, to its id. Unknown names yield CmdOther and false.
func LookupCommand(name string) (CommandID, bool) {
	if name == "" {
		return CmdOther, false
	}
	for _, c := range commandNames {
		if len(name) >= c.min && strings.HasPrefix(c.name, name) {
			return c.id, true
		}
	}
	return CmdOther, false
}

// String returns the full command name
func (id CommandID) String() string {
	for _, c := range commandNames {
		if c.id == id {
			return c.name
		}
	}
	return "other"
}
