package completion

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Lister is a source of directory entries for filename completion.
// Directories are always named by absolute (or share) paths; listing never
// touches the process working directory.
type Lister interface {
	// List returns the entry names of dir
	List(dir string) ([]string, error)
	// IsDir reports whether the entry is a directory or a link to one
	IsDir(dir, name string) bool
	// IsExec reports whether the entry is an executable non-directory
	IsExec(dir, name string) bool
}

// DirLister lists the local filesystem
type DirLister struct{}

// List implements Lister. The "." and ".." entries are included, as readdir
// reports them.
func (DirLister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries)+2)
	names = append(names, ".", "..")
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// IsDir implements Lister
func (DirLister) IsDir(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.IsDir()
}

// IsExec implements Lister. Links are resolved before checking.
func (DirLister) IsExec(dir, name string) bool {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return isExecutable(path)
}

// ShareEnumerator lists the resources a server exposes
type ShareEnumerator interface {
	Shares(server string) ([]string, error)
}

// ShareLister presents the shares of a server ("//server") as directories
type ShareLister struct {
	Enumerator ShareEnumerator
}

// List implements Lister
func (s ShareLister) List(dir string) ([]string, error) {
	if s.Enumerator == nil {
		return nil, os.ErrNotExist
	}
	return s.Enumerator.Shares(shareServer(dir))
}

// IsDir implements Lister. Every share is a directory.
func (ShareLister) IsDir(_, _ string) bool {
	return true
}

// IsExec implements Lister
func (ShareLister) IsExec(_, _ string) bool {
	return false
}

// isSharePath reports whether p has the "//server..." shape
func isSharePath(p string) bool {
	if !strings.HasPrefix(p, "//") || len(p) < 3 || p[2] == '/' {
		return false
	}
	return true
}

// isShareRoot reports whether p names a server itself: "//server" or "//server/"
func isShareRoot(p string) bool {
	if !isSharePath(p) {
		return false
	}
	rest := strings.TrimSuffix(p[2:], "/")
	return rest != "" && !strings.Contains(rest, "/")
}

// shareServer returns the "//server" part of a share path
func shareServer(p string) string {
	if !isSharePath(p) {
		return p
	}
	if i := strings.IndexByte(p[2:], '/'); i >= 0 {
		return p[:i+2]
	}
	return p
}

// isRootDir reports whether p names a filesystem root
func isRootDir(p string) bool {
	if p == "/" {
		return true
	}
	vol := filepath.VolumeName(p)
	return vol != "" && (p == vol || p == vol+"/" || p == vol+`\`)
}

// isAbsolute treats "/"-rooted paths as absolute on every platform
func isAbsolute(p string) bool {
	return strings.HasPrefix(p, "/") || filepath.IsAbs(p)
}

// sharePaths reports whether "//server/..." names a network share rather than
// a plain path. POSIX treats a leading "//" like "/", so shares are only
// recognized on Windows or when an enumerator is configured.
func (e *Engine) sharePaths() bool {
	if runtime.GOOS == "windows" {
		return true
	}
	s, ok := e.shares.(ShareLister)
	return ok && s.Enumerator != nil
}

// resolveDir picks the lister for dir and turns dir into the path to list.
// base is the directory relative paths are resolved against.
func (e *Engine) resolveDir(base, dir string) (Lister, string) {
	if e.sharePaths() {
		switch {
		case isShareRoot(dir):
			return e.shares, dir
		case dir == "." && isShareRoot(base):
			return e.shares, base
		case dir == "/" && isSharePath(base):
			return e.shares, shareServer(base)
		case isSharePath(base) && !isSharePath(dir):
			if isAbsolute(dir) {
				return e.lister, shareServer(base) + dir
			}
			return e.lister, strings.TrimSuffix(base, "/") + "/" + dir
		}
	}

	if isRootDir(dir) || isAbsolute(dir) {
		return e.lister, dir
	}
	return e.lister, filepath.Join(base, dir)
}
