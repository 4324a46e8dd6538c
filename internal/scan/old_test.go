package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAged(t *testing.T, root, name string, ageDays int) string {
	t.Helper()
	path := writeBytes(t, root, name, []byte("x"))
	mtime := time.Now().AddDate(0, 0, -ageDays)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestOldFilesCutoff(t *testing.T) {
	root := t.TempDir()
	writeAged(t, root, "ancient.txt", 400)
	writeAged(t, root, "fresh.txt", 10)

	items, err := New(nil).OldFiles(context.Background(), root, 365, 10)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "ancient.txt", items[0].Name)
}

func TestOldFilesOldestFirstAndLimited(t *testing.T) {
	root := t.TempDir()
	writeAged(t, root, "a.txt", 100)
	writeAged(t, root, "b.txt", 300)
	writeAged(t, root, "sub/c.txt", 200)
	writeAged(t, root, "d.txt", 50)

	items, err := New(nil).OldFiles(context.Background(), root, 30, 3)
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, "b.txt", items[0].Name)
	assert.Equal(t, "c.txt", items[1].Name)
	assert.Equal(t, "a.txt", items[2].Name)
}

func TestOldFilesUsesModificationTime(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "recent-access.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	// Old mtime but a fresh atime: still counts as old.
	mtime := time.Now().AddDate(-2, 0, 0)
	require.NoError(t, os.Chtimes(path, time.Now(), mtime))

	items, err := New(nil).OldFiles(context.Background(), root, 365, 10)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "recent-access.txt", items[0].Name)
}
