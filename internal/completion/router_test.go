package completion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
	"github.com/NikitaCOEUR/vicmd/internal/pathcache"
)

func route(r *Router, id CommandID, args string) ([]string, int) {
	list := candidates.New()
	offset := r.Route(context.Background(), list, NewRequest(id, args))
	return list.Items(), offset
}

func TestRoute_Let(t *testing.T) {
	r := NewRouter(newTestEngine(Panes{}, WithEnv(osenv.Map{"HOME": "/home/u", "HOST": "box"})))

	tests := []struct {
		args   string
		want   []string
		offset int
	}{
		{"$", []string{"HOME", "HOST", ""}, 1},
		{"$HO", []string{"HOME", "HOST", "HO"}, 1},
		{"$x = $HOM", []string{"HOME", "HOM"}, 6},
		{"a=$HOS", []string{"HOST", "HOS"}, 3},
		{"name", []string{"name"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			items, offset := route(r, CmdLet, tt.args)
			assert.Equal(t, tt.want, items)
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestRoute_Unlet(t *testing.T) {
	r := NewRouter(newTestEngine(Panes{}, WithEnv(osenv.Map{"EDITOR": "vi"})))

	items, offset := route(r, CmdUnlet, "$A $ED")
	assert.Equal(t, []string{"EDITOR", "ED"}, items)
	assert.Equal(t, 4, offset)
}

func TestRoute_Highlight(t *testing.T) {
	r := NewRouter(newTestEngine(Panes{}))

	tests := []struct {
		args   string
		want   []string
		offset int
	}{
		{"", append(sortedCopy(HighlightGroups), ""), 0},
		{"bo", []string{"Border", "bo"}, 0},
		{"Win ", []string{"cterm", "ctermbg", "ctermfg", ""}, 4},
		{"Win ctermfg=re", []string{"red", "re"}, 12},
		{"Win cterm=bold,re", []string{"reverse", "re"}, 15},
		{"Win ctermbg=black cterm=bo", []string{"bold", "bo"}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			items, offset := route(r, CmdHighlight, tt.args)
			assert.Equal(t, tt.want, items)
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestRoute_FixedGrammars(t *testing.T) {
	colors := t.TempDir()
	tree(t, colors, "dark.vifm", "light.vifm")

	e := newTestEngine(Panes{}, WithColorsDir(colors), WithAccounts(fakeAccounts{
		users:  []string{"root"},
		groups: []string{"wheel", "users"},
	}))
	r := NewRouter(e)

	tests := []struct {
		name   string
		id     CommandID
		args   string
		want   []string
		offset int
	}{
		{"history", CmdHistory, "fs", []string{"fsearch", "fs"}, 0},
		{"colorscheme", CmdColorscheme, "da", []string{"dark", "da"}, 0},
		{"chown user", CmdChown, "ro", []string{"root", "ro"}, 0},
		{"chown group", CmdChown, "root:wh", []string{"wheel", "wh"}, 5},
		{"chown second file", CmdChown, "root:wheel x", []string{"x"}, 11},
		{"winrun", CmdWinrun, "", []string{"$", "%", ",", ".", "^", ""}, 0},
		{"winrun command", CmdWinrun, "^ cd", nil, 2},
		{"windo", CmdWindo, "set wrap", nil, 4},
		{"set", CmdSet, "wrap sortorder=d", []string{"descending", "d"}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, offset := route(r, tt.id, tt.args)
			if tt.want == nil {
				assert.Empty(t, items)
			} else {
				assert.Equal(t, tt.want, items)
			}
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestRoute_HelpDisabled(t *testing.T) {
	r := NewRouter(newTestEngine(Panes{VimHelp: false}))

	items, offset := route(r, CmdHelp, "set")
	assert.Empty(t, items)
	assert.Equal(t, 0, offset)
}

func TestRoute_EnvVarShortcut(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "docs/", "data")
	env := osenv.Map{"HOME": root, "HOST": "box"}
	r := NewRouter(newTestEngine(Panes{Current: root}, WithEnv(env)))

	items, offset := route(r, CmdCd, "$HO")
	assert.Equal(t, []string{"HOME", "HOST", "HO"}, items)
	assert.Equal(t, 1, offset)

	items, offset = route(r, CmdExecute, "ls /tmp/$HOS")
	assert.Equal(t, []string{"HOST", "HOS"}, items)
	assert.Equal(t, 9, offset)

	// A "/" after the variable means a path inside it is being completed
	items, offset = route(r, CmdCd, "$HOME/d")
	assert.Equal(t, []string{"docs/", "d"}, items)
	assert.Equal(t, 6, offset)

	// Other commands complete file names even after "$"
	items, offset = route(r, CmdOther, "$HOME/d")
	assert.Equal(t, []string{"data", "docs/", "d"}, items)
	assert.Equal(t, 6, offset)
}

func TestRoute_FileCommands(t *testing.T) {
	current, other := t.TempDir(), t.TempDir()
	tree(t, current, "src/", "setup.sh", "my file", "sub/inner/")
	tree(t, other, "shared/", "stuff")
	r := NewRouter(newTestEngine(Panes{Current: current, Other: other}))

	tests := []struct {
		name   string
		id     CommandID
		args   string
		want   []string
		offset int
	}{
		{"cd dirs only", CmdCd, "s", []string{"src/", "sub/", "s"}, 0},
		{"mkdir dirs only", CmdMkdir, "sub/", []string{"inner/", ""}, 4},
		{"copy uses other pane", CmdCopy, "s", []string{"shared/", "stuff", "s"}, 0},
		{"split uses other pane", CmdSplit, "sh", []string{"shared/", "sh"}, 0},
		{"touch without slash", CmdTouch, "s", []string{"setup.sh", "src", "sub", "s"}, 0},
		{"rename second arg", CmdRename, "a s", []string{"setup.sh", "src", "sub", "s"}, 2},
		{"find first arg", CmdFind, "s", []string{"src/", "sub/", "s"}, 0},
		{"find later arg", CmdFind, "src -na", nil, 4},
		{"generic escaped", CmdOther, `my\ f`, []string{`my\ file`, `my\ f`}, 0},
		{"generic new argument", CmdOther, "x ", []string{"my\\ file", "setup.sh", "src/", "sub/", ""}, 2},
		{"generic nested", CmdOther, "sub/in", []string{"inner/", "in"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name == "generic escaped" || tt.name == "generic new argument" {
				skipOnWindows(t)
			}
			items, offset := route(r, tt.id, tt.args)
			if tt.want == nil {
				assert.Empty(t, items)
			} else {
				assert.Equal(t, tt.want, items)
			}
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestRoute_Execute(t *testing.T) {
	skipOnWindows(t)

	bin1, bin2, current := t.TempDir(), t.TempDir(), t.TempDir()
	executable(t, bin1, "vifm", "vim")
	executable(t, bin2, "vim", "vimdiff")
	tree(t, bin2, "vimrc")
	tree(t, current, "scripts/", "notes")
	executable(t, current, "run.sh")

	paths := pathcache.New(osenv.Map{"PATH": bin1 + ":" + bin2}, pathcache.WithSeparator(":"))
	r := NewRouter(NewEngine(Panes{Current: current}, paths))

	items, offset := route(r, CmdExecute, "vi")
	assert.Equal(t, []string{"vifm", "vim", "vimdiff", "vi"}, items)
	assert.Equal(t, 0, offset)

	items, _ = route(r, CmdExecute, "./")
	assert.Equal(t, []string{"run.sh", "scripts/", ""}, items)

	items, offset = route(r, CmdExecute, "vim n")
	assert.Equal(t, []string{"notes", "n"}, items)
	assert.Equal(t, 4, offset)
}

func TestRoute_OffsetWithinArgs(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "a/", "b")
	r := NewRouter(newTestEngine(Panes{Current: root, Other: root, VimHelp: true},
		WithEnv(osenv.Map{"A": "1"}), WithAccounts(fakeAccounts{})))

	inputs := []string{"", " ", "a", "a/", "$", "$A", "a b/$", "x=y,z", "k=", `\ `, "a:b", "/", "//"}
	for id := CmdOther; id <= CmdRename; id++ {
		for _, args := range inputs {
			_, offset := route(r, id, args)
			assert.GreaterOrEqual(t, offset, 0, "%s %q", id, args)
			assert.LessOrEqual(t, offset, len(args), "%s %q", id, args)
		}
	}
}

func TestRoute_ArgPosOutOfRange(t *testing.T) {
	root := t.TempDir()
	tree(t, root, "abc")
	r := NewRouter(newTestEngine(Panes{Current: root}))

	for _, argPos := range []int{-3, 5, 100} {
		req := Request{ID: CmdOther, Args: "ab", Argv: []string{"ab"}, ArgPos: argPos}

		list := candidates.New()
		var offset int
		assert.NotPanics(t, func() {
			offset = r.Route(context.Background(), list, req)
		})
		assert.GreaterOrEqual(t, offset, 0)
		assert.LessOrEqual(t, offset, len(req.Args))
	}
}

func sortedCopy(s []string) []string {
	list := candidates.New()
	for _, v := range s {
		list.Add(v)
	}
	list.EndGroup()
	return list.Items()
}
