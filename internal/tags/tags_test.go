package tags

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `!_TAG_FILE_ENCODING	utf-8	//
vifm-:cd	vifm.txt	/*vifm-:cd*
vifm-:colorscheme	vifm.txt	/*vifm-:colorscheme*

vifm-:cd	other.txt	/*vifm-:cd*
vifm-'sort'	vifm.txt	/*vifm-'sort'*
`

func TestParse(t *testing.T) {
	idx, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"vifm-:cd", "vifm-:colorscheme", "vifm-'sort'"}, idx.Tags())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	idx, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, idx.Tags(), 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	assert.Nil(t, idx.Tags())
	assert.Equal(t, []string{"a"}, New("a").Tags())
}
