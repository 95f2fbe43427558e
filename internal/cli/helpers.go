package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/vicmd/internal/completion"
	"github.com/NikitaCOEUR/vicmd/internal/config"
	"github.com/NikitaCOEUR/vicmd/internal/filetype"
	"github.com/NikitaCOEUR/vicmd/internal/logger"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
	"github.com/NikitaCOEUR/vicmd/internal/pathcache"
	"github.com/NikitaCOEUR/vicmd/internal/tags"
)

// EngineParams describes the file manager state completion runs against
type EngineParams struct {
	ConfigPath string
	LogLevel   string
	Current    string // Directory of the active pane, the working directory when empty
	Other      string // Directory of the inactive pane, Current when empty
	File       string // File under cursor
	Env        osenv.Env
	Output     io.Writer // Results, stdout when nil
	ErrOutput  io.Writer // Logs and reports, stderr when nil
}

// components holds initialized vicmd components
type components struct {
	config *config.Config
	paths  *pathcache.SearchPath
	engine *completion.Engine
	log    *logger.Logger
}

func (p EngineParams) env() osenv.Env {
	if p.Env == nil {
		return osenv.System{}
	}
	return p.Env
}

func (p EngineParams) output() io.Writer {
	if p.Output == nil {
		return os.Stdout
	}
	return p.Output
}

func (p EngineParams) errOutput() io.Writer {
	if p.ErrOutput == nil {
		return os.Stderr
	}
	return p.ErrOutput
}

// loadConfig reads the explicit config file, or the one of the default
// directory
func loadConfig(params EngineParams) (*config.Config, error) {
	loader := config.NewWithEnv(params.env())
	if params.ConfigPath != "" {
		return loader.Load(params.ConfigPath)
	}
	return loader.LoadDefault()
}

// initializeComponents creates the completion engine and everything it reads
func initializeComponents(params EngineParams) (*components, error) {
	cfg, err := loadConfig(params)
	if err != nil {
		return nil, err
	}

	if params.LogLevel != "" {
		cfg.LogLevel = params.LogLevel
	}
	log := logger.New(cfg.LogLevel, params.errOutput())

	env := params.env()
	paths := pathcache.New(env, pathcache.WithScriptsDir(cfg.ScriptsDir), pathcache.WithLogger(log))

	current := params.Current
	if current == "" {
		current, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	other := params.Other
	if other == "" {
		other = current
	}

	opts := []completion.Option{
		completion.WithEnv(env),
		completion.WithLogger(log),
		completion.WithColorsDir(cfg.ColorsDir),
		completion.WithAssociations(buildRegistry(cfg)),
	}
	if cfg.ShareLister != "" {
		opts = append(opts, completion.WithShareEnumerator(completion.SMBClient{Tool: cfg.ShareLister}))
	}
	if cfg.UseVimHelp {
		index, err := tags.Load(cfg.HelpTags)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.HelpTags).Msg("Help tags unavailable")
		} else {
			opts = append(opts, completion.WithTags(index))
		}
	}

	state := completion.Panes{
		Current: current,
		Other:   other,
		File:    params.File,
		VimHelp: cfg.UseVimHelp,
	}

	log.Debug().
		Str("config_dir", cfg.Dir).
		Str("current", current).
		Str("other", other).
		Int("search_dirs", paths.Len()).
		Msg("Components initialized")

	return &components{
		config: cfg,
		paths:  paths,
		engine: completion.NewEngine(state, paths, opts...),
		log:    log,
	}, nil
}

// buildRegistry turns the configured associations into a registry
func buildRegistry(cfg *config.Config) *filetype.Registry {
	registry := filetype.New()
	for _, a := range cfg.FileTypes {
		registry.Add(a.Pattern, a.Programs...)
	}
	for _, a := range cfg.Magic {
		registry.AddMagic(a.Pattern, a.Programs...)
	}
	return registry
}
