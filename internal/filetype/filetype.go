// Package filetype maps files to the programs associated with them, by name
// pattern and by detected content type.
package filetype

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/shlex"
)

// Record is one program associated with a file
type Record struct {
	Command     string // Full command line, possibly with macros such as %f
	Description string // Optional human readable description
}

// CommandName returns the program part of the command: its first shell word
func (r Record) CommandName() string {
	words, err := shlex.Split(r.Command)
	if err != nil || len(words) == 0 {
		fields := strings.Fields(r.Command)
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	}
	return words[0]
}

// association binds a comma separated list of name patterns to programs
type association struct {
	patterns []string
	records  []Record
}

// Registry holds name-based associations and content-based (magic) handlers
type Registry struct {
	byName  []association
	byMagic []association
	detect  func(path string) (*mimetype.MIME, error)
}

// New creates an empty registry
func New() *Registry {
	return &Registry{detect: mimetype.DetectFile}
}

// Add associates programs with files whose name matches any of the comma
// separated patterns, e.g. "*.jpg,*.png"
func (r *Registry) Add(patterns string, programs ...string) {
	r.byName = append(r.byName, newAssociation(patterns, programs))
}

// AddMagic associates programs with files whose detected MIME type matches
// any of the comma separated patterns, e.g. "image/*"
func (r *Registry) AddMagic(patterns string, programs ...string) {
	r.byMagic = append(r.byMagic, newAssociation(patterns, programs))
}

func newAssociation(patterns string, programs []string) association {
	a := association{}
	for _, p := range SplitPatterns(patterns) {
		if p != "" {
			a.patterns = append(a.patterns, strings.ToLower(p))
		}
	}
	for _, prog := range programs {
		a.records = append(a.records, parseRecord(prog))
	}
	return a
}

// SplitPatterns splits a comma separated pattern list. Commas inside "{}"
// belong to a brace alternative, so "*.{tar.gz,tgz},*.zip" is two patterns.
// Pieces are trimmed; empty pieces are kept.
func SplitPatterns(patterns string) []string {
	var result []string
	depth, start := 0, 0
	for i := 0; i < len(patterns); i++ {
		switch patterns[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				result = append(result, strings.TrimSpace(patterns[start:i]))
				start = i + 1
			}
		}
	}
	return append(result, strings.TrimSpace(patterns[start:]))
}

// parseRecord splits "{description}command" into its parts
func parseRecord(prog string) Record {
	prog = strings.TrimSpace(prog)
	if strings.HasPrefix(prog, "{") {
		if end := strings.IndexByte(prog, '}'); end > 0 {
			return Record{
				Description: prog[1:end],
				Command:     strings.TrimSpace(prog[end+1:]),
			}
		}
	}
	return Record{Command: prog}
}

// Programs returns the programs associated with the file's name, in the order
// the associations were added
func (r *Registry) Programs(path string) []Record {
	name := strings.ToLower(filepath.Base(path))
	var result []Record
	for _, a := range r.byName {
		if a.matches(name) {
			result = append(result, a.records...)
		}
	}
	return result
}

// MagicHandlers returns the programs associated with the file's content type.
// Files that cannot be read have no handlers.
func (r *Registry) MagicHandlers(path string) []Record {
	if len(r.byMagic) == 0 || path == "" {
		return nil
	}

	mtype, err := r.detect(path)
	if err != nil || mtype == nil {
		return nil
	}

	var types []string
	for m := mtype; m != nil; m = m.Parent() {
		types = append(types, strings.ToLower(m.String()))
	}

	var result []Record
	for _, a := range r.byMagic {
		for _, t := range types {
			if a.matches(mediaType(t)) {
				result = append(result, a.records...)
				break
			}
		}
	}
	return result
}

func (a association) matches(name string) bool {
	for _, p := range a.patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// mediaType strips parameters such as "; charset=utf-8"
func mediaType(t string) string {
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
