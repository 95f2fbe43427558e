// Package osenv abstracts the process environment and the platform's path rules
// so completion code can be exercised against a fake environment in tests.
package osenv

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Env provides read access to environment variables
type Env interface {
	// Getenv returns the value of the variable or "" when it is not set
	Getenv(key string) string
	// Environ returns all variables as "KEY=value" strings
	Environ() []string
}

// System reads the real process environment
type System struct{}

// Getenv implements Env
func (System) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ implements Env
func (System) Environ() []string {
	return os.Environ()
}

// Map is an in-memory environment, mostly used by tests
type Map map[string]string

// Getenv implements Env
func (m Map) Getenv(key string) string {
	return m[key]
}

// Environ implements Env. Entries are returned sorted by name.
func (m Map) Environ() []string {
	result := make([]string, 0, len(m))
	for k, v := range m {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// lookupHome returns the home directory of the named user
var lookupHome = func(name string) (string, bool) {
	u, err := user.Lookup(name)
	if err != nil || u.HomeDir == "" {
		return "", false
	}
	return u.HomeDir, true
}

// HomeDir returns the current user's home directory, preferring $HOME from env
func HomeDir(env Env) string {
	if home := env.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// ExpandTilde replaces a leading "~" or "~user" with the matching home
// directory. Paths that do not start with "~", or name an unknown user, are
// returned unchanged.
func ExpandTilde(path string, env Env) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	name, rest, _ := strings.Cut(path[1:], "/")
	var home string
	if name == "" {
		home = HomeDir(env)
		if home == "" {
			return path
		}
	} else {
		var ok bool
		if home, ok = lookupHome(name); !ok {
			return path
		}
	}

	home = strings.TrimRight(home, "/")
	if !strings.Contains(path, "/") {
		if home == "" {
			return "/"
		}
		return home
	}
	return home + "/" + rest
}

// CaseInsensitivePaths reports whether the platform compares paths ignoring case
func CaseInsensitivePaths() bool {
	return runtime.GOOS == "windows"
}

// PathEqual compares two paths the way the platform's filesystem does
func PathEqual(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if CaseInsensitivePaths() {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// HasPathPrefix reports whether name starts with prefix under the platform's
// case rules
func HasPathPrefix(name, prefix string) bool {
	if len(prefix) > len(name) {
		return false
	}
	if CaseInsensitivePaths() {
		return strings.EqualFold(name[:len(prefix)], prefix)
	}
	return strings.HasPrefix(name, prefix)
}
