package scan

import (
	"context"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"

	"filescout/internal/fsys"
)

// Defaults for the large-file scan.
const (
	DefaultLargeFileMinSize int64 = 100 << 20
	DefaultResultLimit            = 50
)

// LargeFiles returns regular files under root whose size is at least
// minSize, largest first, capped at limit. minSize <= 0 selects the 100 MiB
// default; limit <= 0 selects 50.
func (s *Scanner) LargeFiles(ctx context.Context, root string, minSize int64, limit int) ([]fsys.Descriptor, error) {
	if minSize <= 0 {
		minSize = DefaultLargeFileMinSize
	}
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	var mu sync.Mutex
	var found []fsys.Descriptor

	err := s.walkFiles(ctx, root, func(path string, info os.FileInfo) {
		if info.Size() < minSize {
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

	sort.SliceStable(found, func(i, j int) bool { return found[i].Size > found[j].Size })
	if len(found) > limit {
		found = found[:limit]
	}
	s.log.Debug("large file scan done", zap.String("root", root), zap.Int("results", len(found)))
	return found, nil
}
