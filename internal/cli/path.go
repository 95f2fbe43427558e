package cli

import (
	"fmt"
	"strings"
)

// Path prints the directories searched for executables, in search order
func Path(params EngineParams) error {
	c, err := initializeComponents(params)
	if err != nil {
		return err
	}

	dirs := c.paths.Dirs()
	if len(dirs) == 0 {
		return nil
	}
	_, err = fmt.Fprintln(params.output(), strings.Join(dirs, "\n"))
	return err
}
