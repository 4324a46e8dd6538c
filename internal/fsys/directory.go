package fsys

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the immediate children of path as descriptors, directories
// first, then case-insensitive name order within each group. Entries that
// cannot be statted are dropped.
func List(path string) ([]Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if !info.IsDir() {
		return nil, classify(path, ErrNotDirectory)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, classify(path, err)
	}

	items := make([]Descriptor, 0, len(entries))
	for _, entry := range entries {
		ei, err := entry.Info()
		if err != nil {
			continue // vanished between ReadDir and stat
		}
		items = append(items, FromInfo(filepath.Join(path, entry.Name()), ei))
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsDir != items[j].IsDir {
			return items[i].IsDir
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}
