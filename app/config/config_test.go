package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	assert.Equal(t, filepath.Join(xdg, "english-words", "config.toml"), DefaultPath())
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
		require.NoError(t, err)
		assert.Equal(t, Settings{DocumentPath: DefaultDocumentPath}, cfg)
	})
	t.Run("partial file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`credentials = "c2VjcmV0"`+"\n"), 0o600))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Settings{Credentials: "c2VjcmV0", DocumentPath: DefaultDocumentPath}, cfg)
	})
	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := "credentials = \"abc\"\ndocument_path = \"Vocabulary/Words.md\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Settings{Credentials: "abc", DocumentPath: "Vocabulary/Words.md"}, cfg)
	})
	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("credentials = "), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	settings := Settings{Credentials: "abc", DocumentPath: "Words.md"}
	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSaveReplaceFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// a non-empty directory can't be replaced by a file
	require.NoError(t, os.MkdirAll(filepath.Join(path, "keep"), 0o755))

	err := Save(path, Settings{Credentials: "abc"})
	assert.ErrorContains(t, err, "replace config")
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestOverride(t *testing.T) {
	base := Settings{Credentials: "file", DocumentPath: "File.md"}
	assert.Equal(t, base, base.Override(Settings{}))
	assert.Equal(t,
		Settings{Credentials: "flag", DocumentPath: "File.md"},
		base.Override(Settings{Credentials: "flag"}),
	)
}
