package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLocateDefinitions(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit override wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mine.def")
		require.NoError(t, os.WriteFile(path, []byte("node A a\n"), 0600))

		got, err := LocateDefinitions(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("missing override has no fallback", func(t *testing.T) {
		_, err := LocateDefinitions(ctx, filepath.Join(t.TempDir(), "absent.def"))
		assert.ErrorContains(t, err, "cannot read definition file")
	})

	t.Run("current directory is probed first", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "units.hcl"), []byte(""), 0600))
		chdir(t, dir)

		got, err := LocateDefinitions(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "units.hcl", got)
	})

	t.Run("def outranks other formats in the same directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "units.yaml"), []byte(""), 0600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "units.def"), []byte(""), 0600))
		chdir(t, dir)

		got, err := LocateDefinitions(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "units.def", got)
	})

	t.Run("falls back to the home directory", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(home, homeDirName), 0755))
		expected := filepath.Join(home, homeDirName, "units.yaml")
		require.NoError(t, os.WriteFile(expected, []byte(""), 0600))

		chdir(t, t.TempDir())
		t.Setenv("HOME", home)

		got, err := LocateDefinitions(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("nothing found reports the searched locations", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("HOME", t.TempDir())

		_, err := LocateDefinitions(ctx, "")
		require.Error(t, err)
		assert.ErrorContains(t, err, "no definition file found")
		assert.ErrorContains(t, err, "units.def")
	})
}
