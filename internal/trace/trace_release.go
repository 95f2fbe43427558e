//go:build !dev

// Package trace records runtime traces of completion requests in development
// builds. Release builds compile it to no-ops.
package trace

import "context"

// Start does nothing in release builds
func Start(_ string) (func(), error) {
	return func() {}, nil
}

// Region returns a no-op closer
func Region(_ context.Context, _ string) func() {
	return func() {}
}

// Log does nothing in release builds
func Log(_ context.Context, _, _ string) {}

// WithRegion calls f
func WithRegion(_ context.Context, _ string, f func()) {
	f()
}
