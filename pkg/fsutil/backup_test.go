package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/htmlfix/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "page.html"+fsutil.BackupSuffix, fsutil.BackupPath("page.html"))
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("copies original content", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, t.TempDir(), "page.html", "original")

		created, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, fsutil.BackupExists(path))

		content, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "original", string(content))
	})

	t.Run("idempotent when backup exists", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, t.TempDir(), "page.html", "original")

		created, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		require.True(t, created)

		// Mutate the original; the existing backup must survive.
		require.NoError(t, os.WriteFile(path, []byte("mutated"), 0o644))

		created, err = fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, created)

		content, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "original", string(content))
	})

	t.Run("missing original is a no-op", func(t *testing.T) {
		t.Parallel()

		created, err := fsutil.CreateBackup(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
		require.NoError(t, err)
		assert.False(t, created)
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()

	t.Run("restores original content", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, t.TempDir(), "page.html", "original")

		_, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte("broken rewrite"), 0o644))

		restored, err := fsutil.RestoreBackup(context.Background(), path)
		require.NoError(t, err)
		assert.True(t, restored)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "original", string(content))
	})

	t.Run("no backup to restore", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, t.TempDir(), "page.html", "original")

		restored, err := fsutil.RestoreBackup(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, restored)
	})
}

func TestRemoveBackup(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "page.html", "original")

	_, err := fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)

	removed, err := fsutil.RemoveBackup(path)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, fsutil.BackupExists(path))

	removed, err = fsutil.RemoveBackup(path)
	require.NoError(t, err)
	assert.False(t, removed)
}
