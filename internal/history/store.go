// Package history persists the record of recently and frequently accessed
// paths that drives recency listings and contextual suggestions.
package history

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"filescout/internal/fsys"
	"filescout/internal/infrastructure/logging"
)

// RecentLimit caps the recency list.
const RecentLimit = 50

// DefaultFrequentLimit caps Frequent results when the caller passes no limit.
const DefaultFrequentLimit = 20

// document is the persisted shape: one JSON file holding both structures,
// rewritten wholesale on every mutation.
type document struct {
	RecentPaths     []string       `json:"recent_paths"`
	FrequencyCounts map[string]int `json:"frequency_counts"`
}

// Store owns the history file exclusively. All state is guarded by mu; the
// lock is never held across filesystem waits other than the write-through
// save.
type Store struct {
	mu     sync.Mutex
	path   string
	log    *logging.Logger
	recent []string
	counts map[string]int
}

// Open loads the history document at path. A missing or corrupt file starts
// an empty history; it is logged, never surfaced as an error.
func Open(path string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Store{
		path:   path,
		log:    log,
		counts: make(map[string]int),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("cannot read history file, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return
	}

	var doc document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		s.log.Warn("corrupt history file, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return
	}

	// Paths deleted since the last run are dropped on load.
	for _, p := range doc.RecentPaths {
		if exists(p) {
			s.recent = append(s.recent, p)
		}
	}
	for p, n := range doc.FrequencyCounts {
		if exists(p) {
			s.counts[p] = n
		}
	}
}

// save rewrites the document atomically: write to a temp file in the same
// directory, then rename over the old one. Caller holds s.mu.
func (s *Store) save() error {
	doc := document{
		RecentPaths:     s.recent,
		FrequencyCounts: s.counts,
	}
	data, err := sonic.Marshal(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// RecordAccess notes an access to path: moves it to the front of the recency
// list, bumps its frequency count, and persists synchronously. Accesses to
// paths that no longer exist are ignored.
func (s *Store) RecordAccess(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if !exists(abs) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.recent {
		if p == abs {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	s.recent = append([]string{abs}, s.recent...)
	if len(s.recent) > RecentLimit {
		s.recent = s.recent[:RecentLimit]
	}
	s.counts[abs]++

	return s.save()
}

// Recent returns descriptors of recently accessed paths, most recent first.
// Paths that stopped existing are pruned.
func (s *Store) Recent() []fsys.Descriptor {
	paths := s.RecentPaths()

	// Resolution stats each path; done outside the lock.
	items := make([]fsys.Descriptor, 0, len(paths))
	for _, p := range paths {
		if d := fsys.Resolve(p); d != nil {
			items = append(items, *d)
		}
	}
	return items
}

// Frequent returns descriptors of the most frequently accessed paths, count
// descending, at most limit entries. limit <= 0 selects the default of 20.
func (s *Store) Frequent(limit int) []fsys.Descriptor {
	if limit <= 0 {
		limit = DefaultFrequentLimit
	}

	counts := s.Counts()

	type entry struct {
		path  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for p, n := range counts {
		entries = append(entries, entry{p, n})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].path < entries[j].path
	})

	items := make([]fsys.Descriptor, 0, limit)
	for _, e := range entries {
		if d := fsys.Resolve(e.path); d != nil {
			items = append(items, *d)
		}
		if len(items) >= limit {
			break
		}
	}
	return items
}

// RecentPaths returns a pruned snapshot of the recency list.
func (s *Store) RecentPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// Counts returns a pruned snapshot of the frequency table.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	out := make(map[string]int, len(s.counts))
	for p, n := range s.counts {
		out[p] = n
	}
	return out
}

// pruneLocked drops paths that no longer exist from both structures.
// Caller holds s.mu.
func (s *Store) pruneLocked() {
	kept := s.recent[:0]
	for _, p := range s.recent {
		if exists(p) {
			kept = append(kept, p)
		}
	}
	s.recent = kept
	for p := range s.counts {
		if !exists(p) {
			delete(s.counts, p)
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
