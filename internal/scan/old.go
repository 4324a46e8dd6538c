package scan

import (
	"context"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"filescout/internal/fsys"
)

// DefaultOldFileMinAgeDays is the age threshold beyond which a file counts
// as old.
const DefaultOldFileMinAgeDays = 365

// OldFiles returns regular files under root whose modification time is older
// than minAgeDays before scan start, oldest first, capped at limit.
// Modification time is used deliberately: access time is unreliable across
// filesystems. minAgeDays <= 0 selects 365; limit <= 0 selects 50.
func (s *Scanner) OldFiles(ctx context.Context, root string, minAgeDays, limit int) ([]fsys.Descriptor, error) {
	if minAgeDays <= 0 {
		minAgeDays = DefaultOldFileMinAgeDays
	}
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	cutoff := time.Now().AddDate(0, 0, -minAgeDays)

	var mu sync.Mutex
	var found []fsys.Descriptor

	err := s.walkFiles(ctx, root, func(path string, info os.FileInfo) {
		if !info.ModTime().Before(cutoff) {
			return
		}
		d := fsys.FromInfo(path, info)
		mu.Lock()
		found = append(found, d)
		mu.Unlock()
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].Modified.Before(found[j].Modified) })
	if len(found) > limit {
		found = found[:limit]
	}
	s.log.Debug("old file scan done", zap.String("root", root), zap.Int("results", len(found)))
	return found, nil
}
