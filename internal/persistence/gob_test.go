package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string
	Count int
}

func TestSaveAndLoadGob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.gob")

	in := payload{Name: "resume.txt", Count: 42}
	require.NoError(t, SaveGob(path, in))

	var out payload
	require.NoError(t, LoadGob(path, &out))
	assert.Equal(t, in, out)
}

func TestSaveGob_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.gob")
	require.NoError(t, SaveGob(path, payload{Name: "first", Count: 1}))
	require.NoError(t, SaveGob(path, payload{Name: "second", Count: 2}))

	var out payload
	require.NoError(t, LoadGob(path, &out))
	assert.Equal(t, "second", out.Name)
}

func TestSaveGob_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveGob(filepath.Join(dir, "snapshot.gob"), payload{Name: "x"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "snapshot.gob", entries[0].Name())
}

func TestLoadGob_MissingFile(t *testing.T) {
	var out payload
	err := LoadGob(filepath.Join(t.TempDir(), "absent.gob"), &out)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
