// Package candidates implements the grouped candidate list that completers
// fill and the command line cycles through.
package candidates

import "sort"

// List is an ordered sequence of completion candidates split into groups.
//
// Completers add matches, seal them with EndGroup and then add the original
// fragment as a trailing fallback. Sealing sorts the group and drops entries
// that an earlier group already produced; anything added after the last
// boundary is kept as is, so the fallback stays reachable while cycling.
type List struct {
	items  []string
	sealed int
	cursor int
}

// New creates an empty list
func New() *List {
	return &List{cursor: -1}
}

// Add appends a candidate to the open group
func (l *List) Add(candidate string) {
	l.items = append(l.items, candidate)
}

// EndGroup closes the open group
func (l *List) EndGroup() {
	group := l.items[l.sealed:]
	sort.Strings(group)

	seen := make(map[string]struct{}, len(l.items))
	for _, s := range l.items[:l.sealed] {
		seen[s] = struct{}{}
	}

	// Writes never overtake reads, so filtering in place is safe.
	kept := l.items[:l.sealed]
	for _, s := range group {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		kept = append(kept, s)
	}

	l.items = kept
	l.sealed = len(kept)
}

// Count returns the number of candidates including the fallback
func (l *List) Count() int {
	return len(l.items)
}

// Reset drops all candidates and rewinds the cycle
func (l *List) Reset() {
	l.items = nil
	l.sealed = 0
	l.cursor = -1
}

// Next returns the next candidate, wrapping around after the last one.
// An empty list yields "".
func (l *List) Next() string {
	if len(l.items) == 0 {
		return ""
	}
	l.cursor = (l.cursor + 1) % len(l.items)
	return l.items[l.cursor]
}

// Items returns a copy of the candidates in cycling order
func (l *List) Items() []string {
	result := make([]string, len(l.items))
	copy(result, l.items)
	return result
}

// Last returns the final candidate, which is the fallback for every completer
// that follows the fallback convention
func (l *List) Last() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	return l.items[len(l.items)-1], true
}

// Groups returns the sealed candidates and the trailing unsealed ones separately
func (l *List) Groups() (sealed, trailing []string) {
	sealed = append([]string(nil), l.items[:l.sealed]...)
	trailing = append([]string(nil), l.items[l.sealed:]...)
	return sealed, trailing
}
