package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFromFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("PROFESSIONAL EXPERIENCE\nAcme Corp"), 0600))

	text, err := TextFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PROFESSIONAL EXPERIENCE\nAcme Corp", text)
}

func TestTextFromFile_MarkdownPassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("# Tae Kim\n\nPROJECTS"), 0600))

	text, err := TextFromFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "PROJECTS")
}

func TestTextFromFile_Missing(t *testing.T) {
	_, err := TextFromFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestTextFromFile_InvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0600))

	_, err := TextFromFile(path)
	assert.Error(t, err)
}
