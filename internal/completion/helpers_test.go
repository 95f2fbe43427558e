package completion

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
)

// tree creates files under root. Names ending in "/" become directories.
func tree(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
}

// executable creates files with the execute bit set
func executable(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	}
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX names and permissions")
	}
}

func newTestEngine(panes Panes, opts ...Option) *Engine {
	return NewEngine(panes, nil, opts...)
}

func complete(f func(list *candidates.List)) []string {
	list := candidates.New()
	f(list)
	return list.Items()
}

// fakeAccounts is an in-memory account directory
type fakeAccounts struct {
	users  []string
	groups []string
}

func (f fakeAccounts) UserNames() ([]string, error)  { return f.users, nil }
func (f fakeAccounts) GroupNames() ([]string, error) { return f.groups, nil }

// fakeShares serves fixed share lists per server
type fakeShares map[string][]string

func (f fakeShares) Shares(server string) ([]string, error) {
	shares, ok := f[server]
	if !ok {
		return nil, os.ErrNotExist
	}
	return shares, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
