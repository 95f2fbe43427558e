package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
	"github.com/NikitaCOEUR/vicmd/internal/completion"
	"github.com/NikitaCOEUR/vicmd/internal/timing"
	"github.com/NikitaCOEUR/vicmd/internal/trace"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	EngineParams
	Line   string // Command line up to the cursor, without the leading ":"
	Pretty bool   // Render for a terminal instead of the plain line format
}

// Complete completes the last argument of a command line.
//
// The plain format prints the byte offset in the line where candidates start
// on the first line, then one candidate per line. The last candidate is always
// the text that was typed.
func Complete(ctx context.Context, params CompleteParams) error {
	timer := timing.NewTimer()

	c, err := initializeComponents(params.EngineParams)
	if err != nil {
		return err
	}
	timer.Mark("init")

	result := completeLine(ctx, c, params.Line)
	timer.Mark("route")
	result.Timing = timer.Summary()

	c.log.Debug().
		Str("line", params.Line).
		Int("offset", result.Offset).
		Int("candidates", len(result.Candidates)).
		Str("timing", result.Timing).
		Msg("Completion done")

	out := params.output()
	if params.Pretty {
		_, err = fmt.Fprint(out, renderCompletion(result))
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", result.Offset)
	for _, candidate := range result.Candidates {
		b.WriteString(candidate)
		b.WriteString("\n")
	}
	_, err = fmt.Fprint(out, b.String())
	return err
}

// completeLine routes the arguments of line and maps the offset back to line
func completeLine(ctx context.Context, c *components, line string) CompletionResult {
	name, req := completion.ParseCommandLine(line)

	list := candidates.New()
	var offset int
	trace.WithRegion(ctx, "completeLine", func() {
		offset = completion.NewRouter(c.engine).Route(ctx, list, req)
	})

	command := req.ID.String()
	if req.ID == completion.CmdOther && name != "" {
		command = name + " (files)"
	}

	return CompletionResult{
		Line:       line,
		Command:    command,
		Offset:     len(line) - len(req.Args) + offset,
		Candidates: list.Items(),
	}
}
