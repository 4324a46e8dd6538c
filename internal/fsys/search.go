package fsys

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
)

// SearchMode selects what part of an entry the keyword is matched against.
type SearchMode string

const (
	SearchByName      SearchMode = "name"
	SearchByExtension SearchMode = "extension"
	SearchByContent   SearchMode = "content"
)

// Criteria configures a search. Zero values mean "no constraint".
type Criteria struct {
	Keyword       string
	Mode          SearchMode
	CaseSensitive bool
	MinSize       int64
	MaxSize       int64
	MinAgeDays    int
}

// Search walks the tree under root and returns descriptors of entries
// matching the criteria. Both files and directories are matched in name
// mode; size, age, and content constraints apply to files only. Entries
// failing mid-scan are dropped, never raised.
func Search(ctx context.Context, root string, c Criteria) ([]Descriptor, error) {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	mode := c.Mode
	if mode == "" {
		mode = SearchByName
	}

	keyword := c.Keyword
	if !c.CaseSensitive {
		keyword = strings.ToLower(keyword)
	}
	if mode == SearchByExtension && keyword != "" && !strings.HasPrefix(keyword, ".") {
		keyword = "." + keyword
	}

	cutoff := time.Time{}
	if c.MinAgeDays > 0 {
		cutoff = time.Now().AddDate(0, 0, -c.MinAgeDays)
	}

	var mu sync.Mutex
	var results []Descriptor

	err := Walk(ctx, root, func(path string, entry os.DirEntry) error {
		if path == root {
			return nil
		}

		name := entry.Name()
		if !c.CaseSensitive {
			name = strings.ToLower(name)
		}

		switch mode {
		case SearchByName:
			if keyword != "" && !strings.Contains(name, keyword) {
				return nil
			}
		case SearchByExtension:
			if entry.IsDir() || filepath.Ext(name) != keyword {
				return nil
			}
		case SearchByContent:
			if entry.IsDir() {
				return nil
			}
		}

		info, err := entry.Info()
		if err != nil {
			return nil
		}

		if !entry.IsDir() {
			if c.MinSize > 0 && info.Size() < c.MinSize {
				return nil
			}
			if c.MaxSize > 0 && info.Size() > c.MaxSize {
				return nil
			}
			if !cutoff.IsZero() && info.ModTime().After(cutoff) {
				return nil
			}
		}

		if mode == SearchByContent && !fileContains(ctx, path, c.Keyword, c.CaseSensitive) {
			return nil
		}

		mu.Lock()
		results = append(results, FromInfo(path, info))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Glob matches paths under root with a gitignore-style pattern supporting
// `**`. Returned paths are absolute.
func Glob(root, pattern string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, classify(root, err)
	}
	matches, err := doublestar.FilepathGlob(filepath.Join(abs, pattern))
	if err != nil {
		return nil, classify(pattern, err)
	}
	return matches, nil
}

// fileContains reports whether a text file contains the keyword. Binary
// files never match; unreadable files are treated as non-matches.
func fileContains(ctx context.Context, path, keyword string, caseSensitive bool) bool {
	if keyword == "" {
		return false
	}
	if !isTextFile(path) {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	needle := []byte(keyword)
	if !caseSensitive {
		needle = bytes.ToLower(needle)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64<<10), 1<<20)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		line := scanner.Bytes()
		if !caseSensitive {
			line = bytes.ToLower(line)
		}
		if bytes.Contains(line, needle) {
			return true
		}
	}
	return false
}

// isTextFile sniffs the file's MIME type and walks the type hierarchy
// looking for a text ancestor.
func isTextFile(path string) bool {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for mt := mtype; mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}
