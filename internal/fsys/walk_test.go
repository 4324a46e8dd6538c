package fsys

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	}
}

func TestWalkVisitsEverything(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "sub/b.txt", "sub/deep/c.txt")

	var mu sync.Mutex
	seen := map[string]bool{}
	err := Walk(context.Background(), root, func(path string, d os.DirEntry) error {
		mu.Lock()
		seen[path] = true
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	abs, _ := filepath.Abs(root)
	assert.True(t, seen[filepath.Join(abs, "a.txt")])
	assert.True(t, seen[filepath.Join(abs, "sub", "b.txt")])
	assert.True(t, seen[filepath.Join(abs, "sub", "deep", "c.txt")])
	assert.True(t, seen[filepath.Join(abs, "sub")])
}

func TestWalkCancellation(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "b.txt", "c.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Walk(ctx, root, func(path string, d os.DirEntry) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalkPathsStreamsLazily(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "sub/b.txt")

	var paths []string
	for p := range WalkPaths(context.Background(), root) {
		paths = append(paths, p)
	}
	// root, a.txt, sub, sub/b.txt
	assert.Len(t, paths, 4)
}

func TestWalkPathsStopsOnCancel(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "b.txt")

	ctx, cancel := context.WithCancel(context.Background())
	ch := WalkPaths(ctx, root)
	<-ch
	cancel()
	for range ch {
	}
}
