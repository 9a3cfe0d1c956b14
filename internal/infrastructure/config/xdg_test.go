package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths_FollowsXDG(t *testing.T) {
	root := isolateXDG(t)

	p, err := ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "config", appName, "config.toml"), p.ConfigFile())
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), p.JournalFile())
	assert.Equal(t, filepath.Join(root, "state", appName, "pending-update"), p.StagingDir())
	assert.Equal(t, filepath.Join(root, "state", appName, "logs"), p.LogDir())

	staging, err := GetStagingDir()
	require.NoError(t, err)
	assert.Equal(t, p.StagingDir(), staging)
}

func TestResolvePaths_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	p, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", appName), p.Config)
	assert.Equal(t, filepath.Join(home, ".local", "share", appName), p.Data)
	assert.Equal(t, filepath.Join(home, ".local", "state", appName), p.State)

	man, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "man", "man1"), man)
}

func TestResolvePaths_DevMode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("ENV", "dev")

	p, err := ResolvePaths()
	require.NoError(t, err)
	want := filepath.Join(dir, ".dev", appName)
	assert.Equal(t, want, p.Config)
	assert.Equal(t, want, p.Data)
	assert.Equal(t, want, p.State)
}
