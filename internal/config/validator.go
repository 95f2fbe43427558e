package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/NikitaCOEUR/vicmd/internal/derrors"
	"github.com/NikitaCOEUR/vicmd/internal/filetype"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) add(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Err returns the problems as joined *derrors.ValidationError values, or nil
// when the config is valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, derrors.NewValidationError(e.Field, e.Message, nil))
	}
	return errors.Join(errs...)
}

// Validate validates a config file: its shape against the schema, then the
// values the schema cannot check
func Validate(path string) (*ValidationResult, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil || !result.Valid {
		return result, err
	}

	cfg, err := New().Load(path)
	if err != nil {
		result.add("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	validateAssociations(result, "filetypes", cfg.FileTypes, true)
	validateAssociations(result, "magic", cfg.Magic, false)

	if cfg.UseVimHelp {
		if _, err := os.Stat(cfg.HelpTags); err != nil {
			result.add("help_tags", fmt.Sprintf("Help tags file not readable: %s", cfg.HelpTags))
		}
	}

	return result, nil
}

func validateAssociations(result *ValidationResult, field string, assocs []Association, globs bool) {
	for i, a := range assocs {
		name := fmt.Sprintf("%s/%d", field, i)
		for _, pattern := range filetype.SplitPatterns(a.Pattern) {
			if pattern == "" {
				result.add(name, "Empty pattern in list")
				continue
			}
			if globs && !doublestar.ValidatePattern(pattern) {
				result.add(name, fmt.Sprintf("Invalid pattern: %s", pattern))
			}
		}
		for _, prog := range a.Programs {
			if strings.TrimSpace(prog) == "" {
				result.add(name, "Program command is empty")
			}
		}
	}
}
