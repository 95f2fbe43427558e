// Package pathcache keeps the list of directories searched for executables.
package pathcache

import (
	"os"
	"strings"
	"sync"

	"github.com/NikitaCOEUR/vicmd/internal/logger"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

// PathVar is the variable the cache is built from
const PathVar = "PATH"

// SearchPath is the de-duplicated list of existing directories named by PATH.
// It is rebuilt wholesale and never modified in place.
type SearchPath struct {
	mu         sync.RWMutex
	env        osenv.Env
	scriptsDir string
	separator  string
	dirs       []string
	log        *logger.Logger
}

// Option configures a SearchPath
type Option func(*SearchPath)

// WithScriptsDir puts dir in front of the PATH entries, like a user scripts
// directory that should shadow system programs
func WithScriptsDir(dir string) Option {
	return func(p *SearchPath) {
		p.scriptsDir = dir
	}
}

// WithSeparator overrides the platform's list separator
func WithSeparator(sep string) Option {
	return func(p *SearchPath) {
		p.separator = sep
	}
}

// WithLogger sets the logger used to report rebuilds
func WithLogger(log *logger.Logger) Option {
	return func(p *SearchPath) {
		p.log = log.Component("pathcache")
	}
}

// New creates the cache and builds it from the current environment
func New(env osenv.Env, opts ...Option) *SearchPath {
	p := &SearchPath{
		env:       env,
		separator: string(os.PathListSeparator),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Rebuild()
	return p
}

// Rebuild re-reads PATH and replaces the cached directory list
func (p *SearchPath) Rebuild() {
	value := p.env.Getenv(PathVar)
	if p.scriptsDir != "" {
		if value == "" {
			value = p.scriptsDir
		} else {
			value = p.scriptsDir + p.separator + value
		}
	}

	dirs := split(value, p.separator, p.env)

	p.mu.Lock()
	p.dirs = dirs
	p.mu.Unlock()

	p.log.Debug().Int("dirs", len(dirs)).Msg("Rebuilt search path")
}

// Dirs returns a snapshot of the cached directories in search order
func (p *SearchPath) Dirs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]string, len(p.dirs))
	copy(result, p.dirs)
	return result
}

// Len returns the number of cached directories
func (p *SearchPath) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.dirs)
}

func split(value, sep string, env osenv.Env) []string {
	if value == "" {
		return []string{}
	}

	parts := strings.Split(value, sep)
	dirs := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}

		dir := osenv.ExpandTilde(part, env)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if contains(dirs, dir) {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

func contains(dirs []string, dir string) bool {
	for _, d := range dirs {
		if osenv.PathEqual(d, dir) {
			return true
		}
	}
	return false
}
