package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/vicmd/internal/derrors"
)

func TestValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	tags := writeConfig(t, dir, "tags", "vifm-:set\tvifm.txt\t/*vifm-:set*\n")
	path := writeConfig(t, dir, "config.yml", `use_vim_help: true
help_tags: `+tags+`
filetypes:
  - pattern: "*.jpg,**/*.gif,*.[pP][nN][gG],*.{tar.gz,tgz}"
    programs: ["feh %f"]
`)

	result, err := Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid, "%v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.NoError(t, result.Err())
}

func TestValidate_FileNotFound(t *testing.T) {
	_, err := Validate("/nonexistent/path/config.yml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestValidate_InvalidSyntax(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yml", "log_level: [unclosed\n")

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidate_InvalidPattern(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yml", `filetypes:
  - pattern: "*.txt,,[abc"
    programs: ["vim"]
`)

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "filetypes/0", result.Errors[0].Field)
	assert.Contains(t, result.Errors[0].Message, "Empty pattern")
	assert.Contains(t, result.Errors[1].Message, "[abc")

	err = result.Err()
	require.Error(t, err)
	var validationErr *derrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "filetypes/0", validationErr.Field)
	assert.Equal(t, "VALIDATION_ERROR", validationErr.Code())
}

func TestValidate_BlankProgram(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yml", `magic:
  - pattern: "video/*"
    programs: ["mpv %f", "   "]
`)

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "magic/0", result.Errors[0].Field)
}

func TestValidate_MissingHelpTags(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yml", "use_vim_help: true\nhelp_tags: "+filepath.Join(dir, "none")+"\n")

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "help_tags", result.Errors[0].Field)
}

func TestValidate_BrokenTemplate(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yml", "colors_dir: \"{{ .Nope \"\n")

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidate_Unreadable(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root reads everything")
	}
	path := writeConfig(t, t.TempDir(), "config.yml", "log_level: info\n")
	require.NoError(t, os.Chmod(path, 0))

	_, err := Validate(path)
	assert.Error(t, err)
}
