package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoad_MissingFile ensures a missing settings file yields pure defaults.
func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	settings, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultENCDirectory, settings.ENCDirectory)
	require.Equal(t, DefaultLockFile, settings.LockFile)
	require.Empty(t, settings.Downtimes)
}

// TestLoad_Malformed ensures invalid YAML is reported as ErrMalformed.
func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("yaml_dir: [broken"), 0o600))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrMalformed)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Settings{
		ENCDirectory: filepath.Join(dir, "enc"),
		LogFile:      filepath.Join(dir, "updates.log"),
		LockFile:     filepath.Join(dir, "updates.lock"),
		Downtimes:    []string{"24.12.2026 - 26.12.2026"},
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings.ENCDirectory, loaded.ENCDirectory)
	require.Equal(t, settings.LogFile, loaded.LogFile)
	require.Equal(t, settings.LockFile, loaded.LockFile)
	require.Equal(t, settings.Downtimes, loaded.Downtimes)

	// File exists with restricted permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestValidate ensures empty fields are filled with defaults and set fields survive.
func TestValidate(t *testing.T) {
	t.Parallel()

	settings := &Settings{ENCDirectory: "/srv/enc"}
	Validate(settings)
	require.Equal(t, "/srv/enc", settings.ENCDirectory)
	require.Equal(t, DefaultLockFile, settings.LockFile)
}
