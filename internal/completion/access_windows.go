//go:build windows

package completion

import (
	"os"
	"path/filepath"
	"strings"
)

// isExecutable checks the extension against PATHEXT
func isExecutable(path string) bool {
	exts := os.Getenv("PATHEXT")
	if exts == "" {
		exts = ".com;.exe;.bat;.cmd"
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, e := range strings.Split(strings.ToLower(exts), ";") {
		if e == ext {
			return true
		}
	}
	return false
}
