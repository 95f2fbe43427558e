// Package tags loads the help tag index used by :help completion.
package tags

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Index is an ordered list of help tags
type Index struct {
	tags []string
}

// New creates an index from the given tags
func New(tags ...string) *Index {
	return &Index{tags: append([]string(nil), tags...)}
}

// Load reads a vim-style tags file ("tag<TAB>file<TAB>address" per line)
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tags file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse reads tags from r. Metadata lines starting with "!_TAG_" are skipped.
func Parse(r io.Reader) (*Index, error) {
	idx := &Index{}
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "!_TAG_") {
			continue
		}
		tag, _, _ := strings.Cut(line, "\t")
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		idx.tags = append(idx.tags, tag)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return idx, nil
}

// Tags returns the tags in file order
func (i *Index) Tags() []string {
	if i == nil {
		return nil
	}
	return i.tags
}
