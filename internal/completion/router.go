package completion

import (
	"context"
	"fmt"
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
	"github.com/NikitaCOEUR/vicmd/internal/trace"
)

// routeContext holds the positions every route decision is based on. All
// offsets are byte indexes into Request.Args.
type routeContext struct {
	req Request
	// arg starts the current word, after the last space
	arg int
	// dollar is the last "$" within the current word, or -1
	dollar int
	// slash is the last "/" within the last argument, or -1
	slash int
}

func newRouteContext(req Request) routeContext {
	req.ArgPos = clampOffset(req.ArgPos, len(req.Args))
	rc := routeContext{req: req, dollar: -1, slash: -1}
	rc.arg = strings.LastIndexByte(req.Args, ' ') + 1
	if i := strings.LastIndexByte(req.Args[rc.arg:], '$'); i >= 0 {
		rc.dollar = rc.arg + i
	}
	if i := strings.LastIndexByte(req.Args[req.ArgPos:], '/'); i >= 0 {
		rc.slash = req.ArgPos + i
	}
	return rc
}

func (rc routeContext) argc() int {
	return len(rc.req.Argv)
}

// typingFirst reports whether the first argument is still being typed
func (rc routeContext) typingFirst() bool {
	return rc.argc() == 0 || (rc.argc() == 1 && !endsWithSpace(rc.req.Args))
}

// word returns the current word as typed
func (rc routeContext) word() string {
	return rc.req.Args[rc.arg:]
}

// lastArg returns the argument being completed with escapes removed, or the
// current word when a new argument has just been started
func (rc routeContext) lastArg() string {
	if rc.argc() > 0 && !endsWithSpace(rc.req.Args) {
		return rc.req.Argv[rc.argc()-1]
	}
	return rc.word()
}

// routeFunc completes one request and returns the replacement offset
type routeFunc func(e *Engine, list *candidates.List, rc routeContext) int

// fullControl are commands whose arguments never fall back to file names
var fullControl = map[CommandID]routeFunc{
	CmdColorscheme: func(e *Engine, list *candidates.List, rc routeContext) int {
		fragment := rc.word()
		if rc.argc() > 0 {
			fragment = rc.req.Argv[rc.argc()-1]
		}
		e.CompleteColorScheme(list, fragment)
		return rc.arg
	},
	CmdSet: func(e *Engine, list *candidates.List, rc routeContext) int {
		return e.CompleteOptions(list, rc.req.Args)
	},
	CmdLet: func(e *Engine, list *candidates.List, rc routeContext) int {
		from := rc.arg
		if rc.dollar > rc.arg {
			from = rc.dollar
		}
		return from + e.CompleteVariable(list, rc.req.Args[from:])
	},
	CmdUnlet: func(e *Engine, list *candidates.List, rc routeContext) int {
		return rc.arg + e.CompleteVariable(list, rc.word())
	},
	CmdHelp: func(e *Engine, list *candidates.List, rc routeContext) int {
		e.CompleteHelp(list, rc.word())
		return rc.arg
	},
	CmdHistory: func(e *Engine, list *candidates.List, rc routeContext) int {
		e.CompleteHistory(list, rc.word())
		return rc.arg
	},
	CmdChown: func(e *Engine, list *candidates.List, rc routeContext) int {
		return rc.arg + e.CompleteOwner(list, rc.word())
	},
	CmdFile: func(e *Engine, list *candidates.List, rc routeContext) int {
		e.CompleteFileType(list, rc.word())
		return rc.arg
	},
	CmdHighlight: func(e *Engine, list *candidates.List, rc routeContext) int {
		if rc.typingFirst() {
			e.CompleteHighlightGroup(list, rc.word())
			return rc.arg
		}
		return rc.arg + e.CompleteHighlightArg(list, rc.word())
	},
	CmdWindo: func(_ *Engine, _ *candidates.List, rc routeContext) int {
		return rc.arg
	},
	CmdWinrun: func(e *Engine, list *candidates.List, rc routeContext) int {
		if rc.typingFirst() {
			e.CompleteWinrun(list, rc.word())
		}
		return rc.arg
	},
}

// envVarCommands complete "$NAME" inside a path as a variable name
var envVarCommands = map[CommandID]bool{
	CmdCd:      true,
	CmdPushd:   true,
	CmdExecute: true,
	CmdSource:  true,
}

// fileFunc completes the last argument as a file name
type fileFunc func(e *Engine, list *candidates.List, rc routeContext, fragment string)

func dirOnly(e *Engine, list *candidates.List, _ routeContext, fragment string) {
	e.CompleteFilename(list, fragment, DirOnly)
}

func inOtherPane(e *Engine, list *candidates.List, _ routeContext, fragment string) {
	e.CompleteFilenameIn(list, e.state.OtherDir(), fragment, AllEscaped)
}

func withoutSlash(e *Engine, list *candidates.List, _ routeContext, fragment string) {
	e.CompleteFilename(list, fragment, AllWithoutSlash)
}

// fileCompletion picks the filter and base directory per command. Commands
// not listed complete any file in the current pane.
var fileCompletion = map[CommandID]fileFunc{
	CmdCd:     dirOnly,
	CmdPushd:  dirOnly,
	CmdSync:   dirOnly,
	CmdMkdir:  dirOnly,
	CmdCopy:   inOtherPane,
	CmdMove:   inOtherPane,
	CmdAlink:  inOtherPane,
	CmdRlink:  inOtherPane,
	CmdSplit:  inOtherPane,
	CmdVsplit: inOtherPane,
	CmdTouch:  withoutSlash,
	CmdRename: withoutSlash,
	CmdFind: func(e *Engine, list *candidates.List, rc routeContext, fragment string) {
		if rc.argc() == 1 && !endsWithSpace(rc.req.Args) {
			e.CompleteFilename(list, fragment, DirOnly)
		}
	},
	CmdExecute: func(e *Engine, list *candidates.List, rc routeContext, fragment string) {
		switch {
		case !rc.typingFirst():
			e.CompleteFilename(list, fragment, AllEscaped)
		case strings.HasPrefix(fragment, "."):
			e.CompleteFilename(list, fragment, DirOrExec)
		default:
			e.CompleteExecutable(list, fragment)
		}
	},
}

// Router maps command arguments to the completer that understands them
type Router struct {
	engine *Engine
}

// NewRouter creates a router completing through engine
func NewRouter(engine *Engine) *Router {
	return &Router{engine: engine}
}

// Route completes the argument under the cursor of req into list and returns
// the offset in req.Args where the replaceable text starts.
//
// Commands with their own grammar are served first. Then "$NAME" in a path of
// the navigation and execution commands completes the variable name. Anything
// else completes file names, the filter and base directory depending on the
// command.
func (r *Router) Route(ctx context.Context, list *candidates.List, req Request) int {
	defer trace.Region(ctx, "completion.route")()

	e := r.engine
	rc := newRouteContext(req)

	var offset int
	switch route, ok := fullControl[req.ID]; {
	case ok:
		e.log.Debug().Str("command", req.ID.String()).Str("route", "command").Msg("Routing completion")
		offset = route(e, list, rc)

	case envVarCommands[req.ID] && rc.dollar >= 0 && rc.dollar > rc.slash:
		e.log.Debug().Str("command", req.ID.String()).Str("route", "envvar").Msg("Routing completion")
		offset = rc.dollar + 1
		e.CompleteEnvVar(list, req.Args[offset:])

	default:
		offset = rc.req.ArgPos
		if rc.slash >= 0 {
			offset = rc.slash + 1
		}

		complete, ok := fileCompletion[req.ID]
		if !ok {
			complete = func(e *Engine, list *candidates.List, _ routeContext, fragment string) {
				e.CompleteFilename(list, fragment, AllEscaped)
			}
		}
		fragment := rc.lastArg()
		e.log.Debug().Str("command", req.ID.String()).Str("route", "file").Str("fragment", fragment).Msg("Routing completion")
		complete(e, list, rc, fragment)
	}

	offset = clampOffset(offset, len(req.Args))
	trace.Log(ctx, "completion", fmt.Sprintf("%s offset=%d candidates=%d", req.ID, offset, list.Count()))
	return offset
}

func clampOffset(offset, n int) int {
	if offset < 0 {
		return 0
	}
	if offset > n {
		return n
	}
	return offset
}
