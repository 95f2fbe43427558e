package completion

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

func TestCompleteFilename_DirOnlySkipsFilesAndHidden(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "a/", "b", ".hidden/")
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "", DirOnly)
	})

	assert.Equal(t, []string{"a/", ""}, got)
}

func TestCompleteFilename_PrefixThenFallback(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "foobar", "bar", "foo")
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "fo", AllEscaped)
	})

	assert.Equal(t, []string{"foo", "foobar", "fo"}, got)
}

func TestCompleteFilename_NoMatchOffersPrefix(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "foo")
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "zz", AllEscaped)
	})

	assert.Equal(t, []string{"zz"}, got)
}

func TestCompleteFilename_UnreadableDirectory(t *testing.T) {
	root := t.TempDir()
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "missing/fi", AllEscaped)
	})
	assert.Equal(t, []string{"fi"}, got)

	got = complete(func(list *candidates.List) {
		e.CompleteFilename(list, "missing/fi", ExecOnly)
	})
	assert.Empty(t, got)
}

func TestCompleteFilename_Subdirectory(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "sub/one", "sub/other/", "sub/two")
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "sub/o", AllEscaped)
	})

	assert.Equal(t, []string{"one", "other/", "o"}, got)
}

func TestCompleteFilename_AbsoluteFragment(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "abs/file")
	e := newTestEngine(Panes{Current: t.TempDir()})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, filepath.ToSlash(root)+"/abs/f", AllEscaped)
	})

	assert.Equal(t, []string{"file", "f"}, got)
}

func TestCompleteFilename_Escaping(t *testing.T) {
	skipOnWindows(t)

	root := t.TempDir()
	tree(t, root, "a b", "a$c", "-dash")
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "a", AllEscaped)
	})
	assert.Equal(t, []string{`a\ b`, `a\$c`, "a"}, got)

	got = complete(func(list *candidates.List) {
		e.CompleteFilename(list, "a", AllUnescaped)
	})
	assert.Equal(t, []string{"a b", "a$c", "a"}, got)

	got = complete(func(list *candidates.List) {
		e.CompleteFilename(list, "-", AllEscaped)
	})
	assert.Equal(t, []string{"./-dash", "./-"}, got)
}

func TestCompleteFilename_WithoutSlash(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "dir/", "dirt")
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "di", AllWithoutSlash)
	})

	assert.Equal(t, []string{"dir", "dirt", "di"}, got)
}

func TestCompleteFilename_ExecutableFilters(t *testing.T) {
	skipOnWindows(t)

	root := t.TempDir()
	tree(t, root, "xdir/", "xdata")
	executable(t, root, "xrun")
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "x", ExecOnly)
	})
	assert.Equal(t, []string{"xrun"}, got, "no fallback for executable search")

	got = complete(func(list *candidates.List) {
		e.CompleteFilename(list, "x", DirOrExec)
	})
	assert.Equal(t, []string{"xdir/", "xrun", "x"}, got)
}

func TestCompleteFilename_FileOnlyKeepsSlashes(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "sub/item")
	e := newTestEngine(Panes{Current: root})

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "sub/i", FileOnly)
	})

	assert.Equal(t, []string{"sub/i"}, got)
}

func TestCompleteFilename_Tilde(t *testing.T) {
	home := t.TempDir()
	tree(t, home, "docs/", "downloads/", "music/")
	e := newTestEngine(Panes{Current: t.TempDir()}, WithEnv(osenv.Map{"HOME": home}))

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "~", AllEscaped)
	})
	assert.Equal(t, []string{home}, got)

	got = complete(func(list *candidates.List) {
		e.CompleteFilename(list, "~/d", AllEscaped)
	})
	assert.Equal(t, []string{"docs/", "downloads/", "d"}, got)
}

func TestCompleteFilename_EnvironmentVariable(t *testing.T) {
	skipOnWindows(t)

	root := t.TempDir()
	tree(t, root, "project/main", "project/Makefile")
	e := newTestEngine(Panes{Current: t.TempDir()}, WithEnv(osenv.Map{"PRJ": filepath.ToSlash(root) + "/project"}))

	got := complete(func(list *candidates.List) {
		e.CompleteFilename(list, "$PRJ/m", AllEscaped)
	})

	assert.Equal(t, []string{"main", "m"}, got)
}

func TestCompleteFilenameIn_OtherBase(t *testing.T) {
	current, other := t.TempDir(), t.TempDir()
	tree(t, current, "here")
	tree(t, other, "there")
	e := newTestEngine(Panes{Current: current, Other: other})

	got := complete(func(list *candidates.List) {
		e.CompleteFilenameIn(list, other, "th", AllEscaped)
	})

	assert.Equal(t, []string{"there", "th"}, got)
}

func TestCompleteFilename_FallbackIsLast(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "alpha", "beta/", "gamma")
	e := newTestEngine(Panes{Current: root})

	for _, typ := range []CompletionType{AllEscaped, AllUnescaped, AllWithoutSlash, DirOnly, DirOrExec} {
		for _, fragment := range []string{"", "a", "be", "zzz"} {
			list := candidates.New()
			e.CompleteFilename(list, fragment, typ)

			last, ok := list.Last()
			assert.True(t, ok, "%s %q", typ, fragment)
			assert.Equal(t, fragment, last, "%s %q", typ, fragment)
		}
	}
}
