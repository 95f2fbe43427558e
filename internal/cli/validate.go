package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/vicmd/internal/config"
	"github.com/NikitaCOEUR/vicmd/internal/derrors"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

// Validate validates a vicmd configuration file. Without a path the config
// file of the default directory is checked.
func Validate(configPath string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	if configPath == "" {
		dir := config.DefaultDir(osenv.System{})
		configPath = config.FindConfigFile(dir)
		if configPath == "" {
			return derrors.NewNotFoundError(dir, "no config file found in "+dir)
		}
	}

	result, err := config.Validate(configPath)
	if err != nil {
		return err
	}

	fmt.Fprint(out, renderValidation(configPath, result))
	if err := result.Err(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
