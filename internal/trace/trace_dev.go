//go:build dev

// Package trace records runtime traces of completion requests in development
// builds.
//
//	go build -tags dev ./cmd/vicmd
//	VICMD_TRACE=trace.out vicmd complete 'cd ~/'
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"os"
	"runtime/trace"
	"sync"
)

var (
	mu     sync.Mutex
	out    *os.File
	active bool
)

// Start writes a runtime trace to path until the returned function is called.
// An empty path disables tracing.
func Start(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}

	mu.Lock()
	defer mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return func() {}, fmt.Errorf("failed to create trace file %s: %w", path, err)
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return func() {}, fmt.Errorf("failed to start trace: %w", err)
	}
	out, active = f, true

	return stop, nil
}

func stop() {
	mu.Lock()
	defer mu.Unlock()

	if active {
		trace.Stop()
		active = false
	}
	if out != nil {
		_ = out.Close()
		out = nil
	}
}

// Region opens a trace region and returns the function closing it
func Region(ctx context.Context, name string) func() {
	if !active {
		return func() {}
	}
	return trace.StartRegion(ctx, name).End
}

// Log attaches a message to the trace
func Log(ctx context.Context, category, message string) {
	if active {
		trace.Log(ctx, category, message)
	}
}

// WithRegion runs f inside a trace region
func WithRegion(ctx context.Context, name string, f func()) {
	if !active {
		f()
		return
	}
	trace.WithRegion(ctx, name, f)
}
