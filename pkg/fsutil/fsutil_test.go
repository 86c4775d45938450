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

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and snapshot", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, t.TempDir(), "page.html", "<div>x</div>")

		content, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "<div>x</div>", string(content))
		require.NotNil(t, info)
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
		assert.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory path", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "anything")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("unmodified file", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, t.TempDir(), "page.html", "<div>x</div>")

		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("content changed", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, t.TempDir(), "page.html", "<div>x</div>")

		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("<div>changed</div>"), 0o644))

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, t.TempDir(), "page.html", "<div>x</div>")

		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CheckModified(context.Background(), nil)
		assert.ErrorIs(t, err, fsutil.ErrNilFileInfo)
	})
}
