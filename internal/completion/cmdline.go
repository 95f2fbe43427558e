package completion

import (
	"strings"

	"github.com/google/shlex"
)

// Request is one completion request for the argument text of a command
type Request struct {
	// ID selects the completion grammar
	ID CommandID
	// Args is the raw argument text up to the cursor
	Args string
	// Argv is Args split into words with quoting and escapes removed
	Argv []string
	// ArgPos is the byte offset in Args where the last argument starts
	ArgPos int
}

// NewRequest builds a request for the argument text of command id
func NewRequest(id CommandID, args string) Request {
	return Request{
		ID:     id,
		Args:   args,
		Argv:   splitArgs(args),
		ArgPos: lastArgPos(args),
	}
}

// ParseCommandLine splits a command line typed after ":" into the command and
// its arguments. "!cmd" runs cmd in the shell, so everything after the "!" is
// argument text.
func ParseCommandLine(line string) (name string, req Request) {
	line = strings.TrimLeft(line, ": ")

	var args string
	if strings.HasPrefix(line, "!") {
		name = "!"
		args = strings.TrimPrefix(line[1:], "!")
	} else {
		end := 0
		for end < len(line) && isCommandNameChar(line[end]) {
			end++
		}
		name = line[:end]
		args = strings.TrimPrefix(line[end:], "!")
		args = strings.TrimLeft(args, " ")
	}

	id, _ := LookupCommand(name)
	return name, NewRequest(id, args)
}

func isCommandNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// splitArgs splits argument text into words. Text with unbalanced quotes is
// split on blanks.
func splitArgs(args string) []string {
	argv, err := shlex.Split(args)
	if err != nil {
		return strings.Fields(args)
	}
	return argv
}

// lastArgPos returns where the argument under the cursor starts: after the
// last unescaped blank.
func lastArgPos(args string) int {
	pos := 0
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case '\\':
			i++
		case ' ', '\t':
			pos = i + 1
		}
	}
	if pos > len(args) {
		return len(args)
	}
	return pos
}

// endsWithSpace reports whether the text ends with a blank that is not
// escaped, i.e. whether a new argument has been started.
func endsWithSpace(args string) bool {
	i := 0
	for i+1 < len(args) {
		if args[i] == '\\' {
			i++
		}
		i++
	}
	return i < len(args) && args[i] == ' '
}
