// Package suggest derives candidate paths of likely interest from the
// current location and the access history. The ranking is a best-effort
// signal, not an exact answer.
package suggest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filescout/internal/fsys"
	"filescout/internal/history"
)

// DefaultLimit caps suggestion results when the caller passes no limit.
const DefaultLimit = 10

// Engine composes three independent candidate generators over the history
// store: frequently visited children, files sharing the dominant recent
// extension, and frequently visited siblings.
type Engine struct {
	store *history.Store
}

// New creates an engine backed by the given history store.
func New(store *history.Store) *Engine {
	return &Engine{store: store}
}

// Suggestions returns descriptors for currentPath's candidates, deduplicated
// by path and sorted by descending access frequency (unknown paths rank as
// zero), truncated to limit. limit <= 0 selects 10.
func (e *Engine) Suggestions(currentPath string, limit int) []fsys.Descriptor {
	if limit <= 0 {
		limit = DefaultLimit
	}
	current, err := filepath.Abs(currentPath)
	if err != nil {
		current = currentPath
	}

	counts := e.store.Counts()
	recent := e.store.RecentPaths()

	var candidates []string
	candidates = append(candidates, frequentChildren(counts, current)...)
	candidates = append(candidates, recentExtensionMatches(recent, current)...)
	candidates = append(candidates, frequentSiblings(counts, current)...)

	seen := make(map[string]bool, len(candidates))
	var unique []string
	for _, p := range candidates {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return counts[unique[i]] > counts[unique[j]]
	})

	items := make([]fsys.Descriptor, 0, limit)
	for _, p := range unique {
		if d := fsys.Resolve(p); d != nil {
			items = append(items, *d)
		}
		if len(items) >= limit {
			break
		}
	}
	return items
}

// frequentChildren returns directories in the frequency table whose parent
// is current.
func frequentChildren(counts map[string]int, current string) []string {
	var out []string
	for p := range counts {
		if filepath.Dir(p) == current && isDir(p) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// recentExtensionMatches finds the most common extension among recently
// accessed files inside current, then returns all files in current sharing
// it.
func recentExtensionMatches(recent []string, current string) []string {
	extCounts := make(map[string]int)
	for _, p := range recent {
		if filepath.Dir(p) != current || isDir(p) {
			continue
		}
		extCounts[strings.ToLower(filepath.Ext(p))]++
	}
	if len(extCounts) == 0 {
		return nil
	}

	// Highest count wins; ties break toward the smaller extension string so
	// the choice is deterministic.
	var best string
	bestCount := -1
	for ext, n := range extCounts {
		if n > bestCount || (n == bestCount && ext < best) {
			best, bestCount = ext, n
		}
	}

	items, err := fsys.List(current)
	if err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		if !item.IsDir && strings.ToLower(filepath.Ext(item.Name)) == best {
			out = append(out, item.Path)
		}
	}
	return out
}

// frequentSiblings returns directories in the frequency table sharing
// current's parent, excluding current itself.
func frequentSiblings(counts map[string]int, current string) []string {
	parent := filepath.Dir(current)
	if parent == current {
		return nil // filesystem root has no siblings
	}
	var out []string
	for p := range counts {
		if p != current && filepath.Dir(p) == parent && isDir(p) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
