package completion

import (
	"path/filepath"

	"github.com/NikitaCOEUR/vicmd/internal/candidates"
	"github.com/NikitaCOEUR/vicmd/internal/filetype"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
)

// CompleteFileType completes the program for :file from the programs
// associated with the file under cursor: name associations first, then
// content-type handlers.
func (e *Engine) CompleteFileType(list *candidates.List, fragment string) {
	if e.assoc != nil {
		path := e.currentFilePath()
		addPrograms(list, e.assoc.Programs(path), fragment)
		addPrograms(list, e.assoc.MagicHandlers(path), fragment)
	}
	list.EndGroup()
	list.Add(fragment)
}

func addPrograms(list *candidates.List, records []filetype.Record, prefix string) {
	for _, r := range records {
		name := r.CommandName()
		if name != "" && osenv.HasPathPrefix(name, prefix) {
			list.Add(name)
		}
	}
}

func (e *Engine) currentFilePath() string {
	file := e.state.CurrentFile()
	if file == "" || isAbsolute(file) {
		return file
	}
	return filepath.Join(e.state.CurrentDir(), file)
}
