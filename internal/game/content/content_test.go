package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/tarnished/internal/game/content"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestYAMLFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), "a: 1")
	writeFile(t, filepath.Join(dir, "a.yml"), "a: 1")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0755))

	files, err := content.YAMLFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yml"), filepath.Join(dir, "b.yaml")}, files)
}

func TestYAMLFiles_MissingDir(t *testing.T) {
	_, err := content.YAMLFiles(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestDecodeFile_Errors(t *testing.T) {
	dir := t.TempDir()
	var out map[string]any

	err := content.DecodeFile(filepath.Join(dir, "missing.yaml"), &out)
	assert.ErrorIs(t, err, content.ErrNotFound)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "key: [unterminated")
	err = content.DecodeFile(bad, &out)
	assert.ErrorIs(t, err, content.ErrMalformed)
}

func TestDecodeFile_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.yaml")
	writeFile(t, path, "name: Godrick\nhealth: 6080\n")
	var out struct {
		Name   string `yaml:"name"`
		Health int    `yaml:"health"`
	}
	require.NoError(t, content.DecodeFile(path, &out))
	assert.Equal(t, "Godrick", out.Name)
	assert.Equal(t, 6080, out.Health)
}
