package fsys

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []Descriptor) []string {
	out := make([]string, len(items))
	for i, d := range items {
		out[i] = d.Name
	}
	return out
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Report.pdf", "notes.txt", "sub/report_old.pdf")

	items, err := Search(context.Background(), root, Criteria{Keyword: "report"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Report.pdf", "report_old.pdf"}, names(items))
}

func TestSearchByNameCaseSensitive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Report.pdf", "report.txt")

	items, err := Search(context.Background(), root, Criteria{Keyword: "Report", CaseSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Report.pdf"}, names(items))
}

func TestSearchByNameMatchesDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "projects", "x"), 0o755))

	items, err := Search(context.Background(), root, Criteria{Keyword: "projects"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsDir)
}

func TestSearchByExtension(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "b.TXT", "c.pdf", "sub/d.txt")

	items, err := Search(context.Background(), root, Criteria{Keyword: "txt", Mode: SearchByExtension})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "b.TXT", "d.txt"}, names(items))

	// A leading dot works too.
	items, err = Search(context.Background(), root, Criteria{Keyword: ".pdf", Mode: SearchByExtension})
	require.NoError(t, err)
	assert.Equal(t, []string{"c.pdf"}, names(items))
}

func TestSearchByContent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hit.txt"), []byte("alpha\nNEEDLE here\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "miss.txt"), []byte("nothing to see\n"), 0o644))
	// A binary file never matches, even when bytes happen to contain the keyword.
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin.dat"), append([]byte{0x00, 0x01}, []byte("needle")...), 0o644))

	items, err := Search(context.Background(), root, Criteria{Keyword: "needle", Mode: SearchByContent})
	require.NoError(t, err)
	assert.Equal(t, []string{"hit.txt"}, names(items))
}

func TestSearchSizeBounds(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "small.bin"), make([]byte, 10), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.bin"), make([]byte, 500), 0o644))

	items, err := Search(context.Background(), root, Criteria{Keyword: "bin", MinSize: 100})
	require.NoError(t, err)
	assert.Equal(t, []string{"big.bin"}, names(items))

	items, err = Search(context.Background(), root, Criteria{Keyword: "bin", MaxSize: 100})
	require.NoError(t, err)
	assert.Equal(t, []string{"small.bin"}, names(items))
}

func TestSearchMinAge(t *testing.T) {
	root := t.TempDir()
	oldPath := filepath.Join(root, "old.txt")
	newPath := filepath.Join(root, "new.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte("x"), 0o644))

	past := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	items, err := Search(context.Background(), root, Criteria{Keyword: "txt", MinAgeDays: 7})
	require.NoError(t, err)
	assert.Equal(t, []string{"old.txt"}, names(items))
}

func TestGlob(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.go", "pkg/b.go", "pkg/deep/c.go", "pkg/readme.md")

	matches, err := Glob(root, "**/*.go")
	require.NoError(t, err)
	assert.Len(t, matches, 3)
	for _, m := range matches {
		assert.True(t, filepath.IsAbs(m))
	}
}
