package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/vicmd/internal/config"
	"github.com/NikitaCOEUR/vicmd/internal/derrors"
)

// SchemaFileName is the name Init gives the JSON Schema next to the config
const SchemaFileName = "vicmd.schema.json"

// Init writes a config file holding the built-in defaults to dir, along
// with the schema editors use to check it
func Init(dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return derrors.NewConfigurationError(dir, "failed to create config directory", err)
	}

	if existing := config.FindConfigFile(dir); existing != "" {
		return derrors.NewConfigurationError(existing, fmt.Sprintf("config file already exists: %s", existing), nil)
	}

	schemaPath := filepath.Join(dir, SchemaFileName)
	if err := os.WriteFile(schemaPath, []byte(config.GetSchemaJSON()), 0644); err != nil {
		return derrors.NewConfigurationError(schemaPath, "failed to write schema", err)
	}

	configPath := filepath.Join(dir, config.SupportedConfigNames[0])
	header := []byte("# yaml-language-server: $schema=" + schemaPath + "\n")
	if err := os.WriteFile(configPath, append(header, config.DefaultConfig()...), 0644); err != nil {
		return derrors.NewConfigurationError(configPath, "failed to write config file", err)
	}

	fmt.Fprintf(out, "Created %s\n", configPath)
	return nil
}
