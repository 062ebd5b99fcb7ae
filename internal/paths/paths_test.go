package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDirLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-specific resolution")
	}

	t.Run("honors XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		dir, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/stockcount", dir)
	})

	t.Run("falls back to ~/.config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		dir, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "stockcount"), dir)
	})
}

func TestDefaultDataDirLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-specific resolution")
	}

	t.Run("honors XDG_DATA_HOME", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		dir, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-data/stockcount", dir)
	})

	t.Run("falls back to ~/.local/share", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		dir, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "stockcount"), dir)
	})
}

func TestDefaultDirsNonLinux(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Skip("covered by the linux-specific tests")
	}

	base, err := os.UserConfigDir()
	require.NoError(t, err)

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "stockcount"), dir)

	dir, err = DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "stockcount"), dir)
}

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/from-env")
		dir, err := ResolveConfigDir("/tmp/from-flag")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-flag", dir)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/from-env")
		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-env", dir)
	})

	t.Run("relative flag becomes absolute", func(t *testing.T) {
		dir, err := ResolveConfigDir("relative/conf")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(dir))
	})
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/tmp/from-env")

	t.Run("flag wins", func(t *testing.T) {
		dir, err := ResolveDataDir("/tmp/from-flag", "/tmp/from-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-flag", dir)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		dir, err := ResolveDataDir("", "/tmp/from-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-config", dir)
	})

	t.Run("env wins over cwd default", func(t *testing.T) {
		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-env", dir)
	})

	t.Run("cwd default when nothing is set", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)
		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), dir)
	})
}
