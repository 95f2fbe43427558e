package completion

import (
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// OptionKind is the value type of an option
type OptionKind int

const (
	// BoolOption is switched with "opt", "noopt" and "invopt"
	BoolOption OptionKind = iota
	// IntOption takes a number
	IntOption
	// StringOption takes free text
	StringOption
	// EnumOption takes one of Values
	EnumOption
	// SetOption takes a comma separated list of Values
	SetOption
)

// OptionSpec describes one :set option
type OptionSpec struct {
	Name   string
	Abbr   string
	Kind   OptionKind
	Values []string
}

var sortKeys = []string{
	"ext", "name", "gid", "gname", "mode", "uid", "uname", "size",
	"atime", "ctime", "mtime",
	"+ext", "+name", "+gid", "+gname", "+mode", "+uid", "+uname", "+size",
	"+atime", "+ctime", "+mtime",
	"-ext", "-name", "-gid", "-gname", "-mode", "-uid", "-uname", "-size",
	"-atime", "-ctime", "-mtime",
}

// Options is the option table used by :set completion
var Options = []OptionSpec{
	{Name: "autochpos", Kind: BoolOption},
	{Name: "columns", Abbr: "co", Kind: IntOption},
	{Name: "confirm", Abbr: "cf", Kind: BoolOption},
	{Name: "cpoptions", Abbr: "cpo", Kind: StringOption},
	{Name: "fastrun", Kind: BoolOption},
	{Name: "followlinks", Kind: BoolOption},
	{Name: "fusehome", Kind: StringOption},
	{Name: "gdefault", Abbr: "gd", Kind: BoolOption},
	{Name: "history", Abbr: "hi", Kind: IntOption},
	{Name: "hlsearch", Abbr: "hls", Kind: BoolOption},
	{Name: "iec", Kind: BoolOption},
	{Name: "ignorecase", Abbr: "ic", Kind: BoolOption},
	{Name: "incsearch", Abbr: "is", Kind: BoolOption},
	{Name: "laststatus", Abbr: "ls", Kind: BoolOption},
	{Name: "lines", Kind: IntOption},
	{Name: "rulerformat", Abbr: "ruf", Kind: StringOption},
	{Name: "runexec", Kind: BoolOption},
	{Name: "scrollbind", Abbr: "scb", Kind: BoolOption},
	{Name: "scrolloff", Abbr: "so", Kind: IntOption},
	{Name: "shell", Abbr: "sh", Kind: StringOption},
	{Name: "shortmess", Abbr: "shm", Kind: StringOption},
	{Name: "slowfs", Kind: SetOption, Values: []string{"curlftpfs", "sshfs", "fuse.sshfs", "nfs", "cifs", "smbfs"}},
	{Name: "smartcase", Abbr: "scs", Kind: BoolOption},
	{Name: "sort", Kind: SetOption, Values: sortKeys},
	{Name: "sortnumbers", Kind: BoolOption},
	{Name: "sortorder", Kind: EnumOption, Values: []string{"ascending", "descending"}},
	{Name: "statusline", Abbr: "stl", Kind: StringOption},
	{Name: "tabstop", Abbr: "ts", Kind: IntOption},
	{Name: "timefmt", Kind: StringOption},
	{Name: "timeoutlen", Abbr: "tm", Kind: IntOption},
	{Name: "trash", Kind: BoolOption},
	{Name: "trashdir", Kind: StringOption},
	{Name: "undolevels", Abbr: "ul", Kind: IntOption},
	{Name: "vicmd", Kind: StringOption},
	{Name: "viewcolumns", Kind: StringOption},
	{Name: "vimhelp", Kind: BoolOption},
	{Name: "vixcmd", Kind: StringOption},
	{Name: "wildmenu", Abbr: "wmnu", Kind: BoolOption},
	{Name: "wrap", Kind: BoolOption},
	{Name: "wrapscan", Abbr: "ws", Kind: BoolOption},
}

func findOption(name string) (OptionSpec, bool) {
	for _, opt := range Options {
		if opt.Name == name || (opt.Abbr != "" && opt.Abbr == name) {
			return opt, true
		}
	}
	return OptionSpec{}, false
}

// CompleteOptions completes the last setting in the argument text of :set and
// returns the offset of the completed part within args.
//
//	set hls    -> option names
//	set nohl   -> boolean option names after "no" (also "inv")
//	set sort=  -> values of an enumerated option, after the last "," for lists
func (e *Engine) CompleteOptions(list *candidates.List, args string) int {
	start := strings.LastIndexByte(args, ' ') + 1
	word := args[start:]

	if i := strings.IndexAny(word, "=:"); i >= 0 {
		return start + completeOptionValue(list, word, i)
	}

	if strings.ContainsAny(word, "?!&") {
		list.Add(word)
		return start
	}

	for _, neg := range []string{"no", "inv"} {
		rest, ok := strings.CutPrefix(word, neg)
		if !ok || !anyBoolOption(rest) {
			continue
		}
		for _, opt := range Options {
			if opt.Kind == BoolOption && strings.HasPrefix(opt.Name, rest) {
				list.Add(opt.Name)
			}
		}
		list.EndGroup()
		list.Add(rest)
		return start + len(neg)
	}

	if strings.HasPrefix("all", word) {
		list.Add("all")
	}
	for _, opt := range Options {
		if strings.HasPrefix(opt.Name, word) {
			list.Add(opt.Name)
		}
	}
	list.EndGroup()
	list.Add(word)
	return start
}

func anyBoolOption(prefix string) bool {
	for _, opt := range Options {
		if opt.Kind == BoolOption && strings.HasPrefix(opt.Name, prefix) {
			return true
		}
	}
	return false
}

// completeOptionValue completes the value after the separator at sep and
// returns the value's offset within word
func completeOptionValue(list *candidates.List, word string, sep int) int {
	name := strings.TrimRight(word[:sep], "+-^")
	offset := sep + 1
	value := word[offset:]

	opt, ok := findOption(name)
	if ok && opt.Kind == SetOption {
		if comma := strings.LastIndexByte(value, ','); comma >= 0 {
			offset += comma + 1
			value = value[comma+1:]
		}
	}

	if ok && (opt.Kind == EnumOption || opt.Kind == SetOption) {
		for _, v := range opt.Values {
			if strings.HasPrefix(v, value) {
				list.Add(v)
			}
		}
	}
	list.EndGroup()
	list.Add(value)
	return offset
}
