package cli

import (
	"errors"
	"fmt"

	"github.com/NikitaCOEUR/vicmd/internal/derrors"
)

// FastRunParams contains parameters for the FastRun command
type FastRunParams struct {
	EngineParams
	Line string // Shell command line whose program name may be abbreviated
}

// FastRun expands an abbreviated program name at the start of a shell
// command line and prints the line to run
func FastRun(params FastRunParams) error {
	c, err := initializeComponents(params.EngineParams)
	if err != nil {
		return err
	}

	expanded, err := c.engine.FastRun(params.Line)
	if err != nil {
		var ambiguous *derrors.AmbiguousCommandError
		if errors.As(err, &ambiguous) {
			fmt.Fprint(params.errOutput(), renderAmbiguous(ambiguous.Command, ambiguous.Matches))
		}
		return err
	}

	c.log.Debug().Str("line", params.Line).Str("expanded", expanded).Msg("Fast run")

	_, err = fmt.Fprintln(params.output(), expanded)
	return err
}
