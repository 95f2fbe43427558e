// Package config handles loading of the vicmd configuration file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/vicmd/internal/derrors"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

//go:embed default.yml
var defaultConfig []byte

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// Association binds comma separated patterns to the programs that open
// matching files
type Association struct {
	Pattern  string   `koanf:"pattern"`
	Programs []string `koanf:"programs"`
}

// Config represents a vicmd configuration
type Config struct {
	LogLevel    string        `koanf:"log_level"`
	UseVimHelp  bool          `koanf:"use_vim_help"`
	HelpTags    string        `koanf:"help_tags"`
	ScriptsDir  string        `koanf:"scripts_dir"`
	ColorsDir   string        `koanf:"colors_dir"`
	ShareLister string        `koanf:"share_lister"`
	FileTypes   []Association `koanf:"filetypes"`
	Magic       []Association `koanf:"magic"`

	// Dir is the directory the configuration was loaded from
	Dir string `koanf:"-"`
}

// cachedConfig stores a parsed config with its modification time
type cachedConfig struct {
	config  *Config
	modTime time.Time
	size    int64
}

// Loader handles loading and parsing configuration files
type Loader struct {
	env         osenv.Env
	parsedCache map[string]*cachedConfig
}

// New creates a new config loader reading the process environment
func New() *Loader {
	return NewWithEnv(osenv.System{})
}

// NewWithEnv creates a config loader that resolves paths with env
func NewWithEnv(env osenv.Env) *Loader {
	return &Loader{
		env:         env,
		parsedCache: make(map[string]*cachedConfig),
	}
}

// DefaultDir returns the configuration directory: $VICMD_DIR, else
// $XDG_CONFIG_HOME/vicmd, else ~/.config/vicmd
func DefaultDir(env osenv.Env) string {
	if dir := env.Getenv("VICMD_DIR"); dir != "" {
		return dir
	}
	configHome := env.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(osenv.HomeDir(env), ".config")
	}
	return filepath.Join(configHome, "vicmd")
}

// FindConfigFile returns the first supported config file in dir, or "" if
// there is none
func FindConfigFile(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// parserFor picks the koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// DefaultConfig returns the built-in defaults as a YAML document
func DefaultConfig() []byte {
	return append([]byte(nil), defaultConfig...)
}

// LoadDefault loads the config file of the default directory, or the built-in
// defaults when there is none
func (l *Loader) LoadDefault() (*Config, error) {
	dir := DefaultDir(l.env)
	if path := FindConfigFile(dir); path != "" {
		return l.Load(path)
	}
	return l.load("", dir)
}

// Load reads a configuration file on top of the built-in defaults
func (l *Loader) Load(path string) (*Config, error) {
	if cached, exists := l.parsedCache[path]; exists {
		// Verify file hasn't been modified (check both modtime and size)
		fileInfo, err := os.Stat(path)
		if err == nil && !fileInfo.ModTime().After(cached.modTime) && fileInfo.Size() == cached.size {
			return cached.config, nil
		}
		delete(l.parsedCache, path)
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, derrors.NewNotFoundError(path, "config file not found: "+path)
	}

	cfg, err := l.load(path, filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	l.parsedCache[path] = &cachedConfig{
		config:  cfg,
		modTime: fileInfo.ModTime(),
		size:    fileInfo.Size(),
	}
	return cfg, nil
}

func (l *Loader) load(path, dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return nil, derrors.NewConfigurationError("default.yml", "failed to load defaults", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, derrors.NewConfigurationError(path, err.Error(), nil)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load config", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}
	cfg.Dir = dir

	if err := l.renderPaths(cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to render paths", err)
	}
	return cfg, nil
}

// renderPaths expands templates and "~" in path settings
func (l *Loader) renderPaths(cfg *Config) error {
	data := map[string]string{
		"VICMD_DIR": cfg.Dir,
		"HOME":      osenv.HomeDir(l.env),
	}

	for _, field := range []struct {
		name  string
		value *string
	}{
		{"help_tags", &cfg.HelpTags},
		{"scripts_dir", &cfg.ScriptsDir},
		{"colors_dir", &cfg.ColorsDir},
	} {
		rendered, err := RenderPath(*field.value, data)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = osenv.ExpandTilde(rendered, l.env)
	}
	return nil
}

// RenderPath executes a path template with the sprig function set
func RenderPath(value string, data map[string]string) (string, error) {
	if !strings.Contains(value, "{{") {
		return value, nil
	}

	tmpl, err := template.New("path").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return b.String(), nil
}
