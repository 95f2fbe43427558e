package completion

import (
	"runtime"

	"github.com/NikitaCOEUR/vicmd/internal/logger"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
	"github.com/NikitaCOEUR/vicmd/internal/pathcache"
)

// Engine owns everything completion reads: the environment, the search path
// cache, the file manager state and the optional collaborators behind the
// specialized completers. Calls are synchronous and must not overlap.
type Engine struct {
	env       osenv.Env
	state     State
	paths     *pathcache.SearchPath
	lister    Lister
	shares    Lister
	accounts  Accounts
	tags      TagIndex
	assoc     Associations
	colorsDir string
	log       *logger.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithEnv replaces the process environment
func WithEnv(env osenv.Env) Option {
	return func(e *Engine) { e.env = env }
}

// WithLister replaces the local directory lister
func WithLister(l Lister) Option {
	return func(e *Engine) { e.lister = l }
}

// WithShareEnumerator sets the source of network share names
func WithShareEnumerator(s ShareEnumerator) Option {
	return func(e *Engine) { e.shares = ShareLister{Enumerator: s} }
}

// WithAccounts sets the user and group directory
func WithAccounts(a Accounts) Option {
	return func(e *Engine) { e.accounts = a }
}

// WithTags sets the help tag index
func WithTags(t TagIndex) Option {
	return func(e *Engine) { e.tags = t }
}

// WithAssociations sets the file association service
func WithAssociations(a Associations) Option {
	return func(e *Engine) { e.assoc = a }
}

// WithColorsDir sets the directory holding color schemes
func WithColorsDir(dir string) Option {
	return func(e *Engine) { e.colorsDir = dir }
}

// WithLogger sets the logger
func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) { e.log = log.Component("completion") }
}

// NewEngine creates a completion engine. The search path may be nil, in which
// case executable completion finds nothing.
func NewEngine(state State, paths *pathcache.SearchPath, opts ...Option) *Engine {
	e := &Engine{
		env:    osenv.System{},
		state:  state,
		paths:  paths,
		lister: DirLister{},
		shares: ShareLister{},
		log:    logger.Nop(),
	}
	if runtime.GOOS != "windows" {
		e.accounts = EtcAccounts{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) searchDirs() []string {
	if e.paths == nil {
		return nil
	}
	return e.paths.Dirs()
}
