package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filescout/internal/digest"
)

func writeBytes(t *testing.T, root, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func pad(content string, size int) []byte {
	b := make([]byte, size)
	copy(b, content)
	return b
}

func TestDuplicatesBasic(t *testing.T) {
	root := t.TempDir()
	a := writeBytes(t, root, "a.txt", pad("same", 500))
	b := writeBytes(t, root, "b.txt", pad("same", 500))
	writeBytes(t, root, "c.txt", pad("different", 500))

	groups, err := New(nil).Duplicates(context.Background(), root, DuplicateOptions{MinSize: -1})
	require.NoError(t, err)

	require.Len(t, groups, 1)
	for _, paths := range groups {
		assert.Len(t, paths, 2)
		abs := func(p string) string { x, _ := filepath.Abs(p); return x }
		assert.ElementsMatch(t, []string{abs(a), abs(b)}, paths)
	}
}

func TestDuplicatesNeverReturnsSingletons(t *testing.T) {
	root := t.TempDir()
	writeBytes(t, root, "a.txt", pad("one", 100))
	writeBytes(t, root, "b.txt", pad("two", 100))
	writeBytes(t, root, "c.txt", pad("three", 300))

	groups, err := New(nil).Duplicates(context.Background(), root, DuplicateOptions{MinSize: -1})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestDuplicatesCapturesWholeGroup(t *testing.T) {
	root := t.TempDir()
	writeBytes(t, root, "one/a.bin", pad("identical", 256))
	writeBytes(t, root, "two/b.bin", pad("identical", 256))
	writeBytes(t, root, "three/c.bin", pad("identical", 256))
	writeBytes(t, root, "four/d.bin", pad("identical", 256))

	groups, err := New(nil).Duplicates(context.Background(), root, DuplicateOptions{MinSize: -1})
	require.NoError(t, err)

	require.Len(t, groups, 1)
	for _, paths := range groups {
		// All members captured, not just the first colliding pair.
		assert.Len(t, paths, 4)
	}
}

func TestDuplicatesRespectsMinSize(t *testing.T) {
	root := t.TempDir()
	writeBytes(t, root, "a.bin", pad("small", 100))
	writeBytes(t, root, "b.bin", pad("small", 100))
	writeBytes(t, root, "c.bin", pad("large", 5000))
	writeBytes(t, root, "d.bin", pad("large", 5000))

	groups, err := New(nil).Duplicates(context.Background(), root, DuplicateOptions{MinSize: 1000})
	require.NoError(t, err)

	require.Len(t, groups, 1)
	for _, paths := range groups {
		for _, p := range paths {
			assert.Contains(t, []string{"c.bin", "d.bin"}, filepath.Base(p))
		}
	}
}

func TestDuplicatesSizeCollisionIsNotEnough(t *testing.T) {
	root := t.TempDir()
	// Same size, different bytes: must not group.
	writeBytes(t, root, "a.bin", pad("alpha", 400))
	writeBytes(t, root, "b.bin", pad("bravo", 400))

	groups, err := New(nil).Duplicates(context.Background(), root, DuplicateOptions{MinSize: -1})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestDuplicatesGroupMembersShareSizeAndDigest(t *testing.T) {
	root := t.TempDir()
	writeBytes(t, root, "x1.bin", pad("xx", 300))
	writeBytes(t, root, "x2.bin", pad("xx", 300))
	writeBytes(t, root, "y1.bin", pad("yy", 700))
	writeBytes(t, root, "y2.bin", pad("yy", 700))

	groups, err := New(nil).Duplicates(context.Background(), root, DuplicateOptions{
		Algorithm: digest.SHA256,
		MinSize:   -1,
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	for sum, paths := range groups {
		require.GreaterOrEqual(t, len(paths), 2)
		var size int64 = -1
		for _, p := range paths {
			info, err := os.Stat(p)
			require.NoError(t, err)
			if size == -1 {
				size = info.Size()
			}
			assert.Equal(t, size, info.Size())

			got, err := digest.File(p, digest.SHA256, 0)
			require.NoError(t, err)
			assert.Equal(t, sum, got)
		}
	}
}

func TestDuplicatesCancellation(t *testing.T) {
	root := t.TempDir()
	writeBytes(t, root, "a.bin", pad("zz", 100))
	writeBytes(t, root, "b.bin", pad("zz", 100))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Duplicates(ctx, root, DuplicateOptions{MinSize: -1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDuplicatesWithSingleWorker(t *testing.T) {
	root := t.TempDir()
	writeBytes(t, root, "a.bin", pad("w", 128))
	writeBytes(t, root, "b.bin", pad("w", 128))

	groups, err := New(nil).Duplicates(context.Background(), root, DuplicateOptions{
		MinSize: -1,
		Workers: 1,
	})
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}
