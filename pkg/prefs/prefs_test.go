package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	p := LoadFrom(path)
	assert.Empty(t, p.String(KeyRefDir))

	p.SetString(KeyRefDir, "/data/ref")
	p.SetString(KeyWorkDir, "/data/work")
	require.NoError(t, p.Save())

	reloaded := LoadFrom(path)
	assert.Equal(t, "/data/ref", reloaded.String(KeyRefDir))
	assert.Equal(t, "/data/work", reloaded.String(KeyWorkDir))
}

func TestSaveKeepsExistingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"last_zip":"/runs/Run42.zip"}`), 0644))

	p := LoadFrom(path)
	p.SetString(KeyRefDir, "/data/ref")
	require.NoError(t, p.Save())

	reloaded := LoadFrom(path)
	assert.Equal(t, "/runs/Run42.zip", reloaded.String(KeyLastZip))
	assert.Equal(t, "/data/ref", reloaded.String(KeyRefDir))
}

func TestLoadFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	p := LoadFrom(path)
	assert.Empty(t, p.String(KeyRefDir))
}
