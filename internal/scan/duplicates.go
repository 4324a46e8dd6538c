package scan

import (
	"context"
	"os"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"filescout/internal/digest"
	"filescout/internal/fsys"
)

// DuplicateOptions tunes duplicate detection.
type DuplicateOptions struct {
	// Algorithm defaults to SHA256.
	Algorithm digest.Algorithm
	// MinSize excludes files smaller than this from consideration.
	// Defaults to 1 MiB; pass a negative value for no floor.
	MinSize int64
	// ChunkSize is the digest streaming chunk size (0 = 64 KiB).
	ChunkSize int
	// Workers bounds concurrent digest computations (0 = NumCPU).
	Workers int
}

// DefaultDuplicateMinSize is the floor below which files are not considered
// for duplicate detection.
const DefaultDuplicateMinSize int64 = 1 << 20

type candidate struct {
	path string
	size int64
}

// Duplicates finds groups of files under root with identical byte size and
// identical content digest. Grouping is two-phase: files are first bucketed
// by exact size, then only buckets holding at least two files are digested.
// Every returned group has at least two members, in first-seen order; files
// unreadable during digesting drop out of their group.
func (s *Scanner) Duplicates(ctx context.Context, root string, opts DuplicateOptions) (map[string][]string, error) {
	algo := opts.Algorithm
	if algo == "" {
		algo = digest.SHA256
	}
	minSize := opts.MinSize
	if minSize == 0 {
		minSize = DefaultDuplicateMinSize
	}
	if minSize < 0 {
		minSize = 0
	}

	// Phase 1: size buckets.
	var mu sync.Mutex
	bySize := make(map[int64][]candidate)
	order := 0
	position := make(map[string]int)

	err := s.walkFiles(ctx, root, func(path string, info os.FileInfo) {
		if info.Size() < minSize {
			return
		}
		mu.Lock()
		bySize[info.Size()] = append(bySize[info.Size()], candidate{path, info.Size()})
		position[path] = order
		order++
		mu.Unlock()
	})
	if err != nil {
		return nil, err
	}

	// Phase 2: digest within buckets of two or more.
	var pending []candidate
	for _, bucket := range bySize {
		if len(bucket) >= 2 {
			pending = append(pending, bucket...)
		}
	}
	s.log.Debug("duplicate scan candidates",
		zap.String("root", root),
		zap.Int("files", order),
		zap.Int("digesting", len(pending)))

	digests, err := s.digestAll(ctx, pending, algo, opts.ChunkSize, opts.Workers)
	if err != nil {
		return nil, err
	}

	type member struct {
		path string
		pos  int
	}
	byDigest := make(map[string][]member)
	for _, c := range pending {
		sum, ok := digests[c.path]
		if !ok {
			continue // unreadable during digesting
		}
		byDigest[sum] = append(byDigest[sum], member{c.path, position[c.path]})
	}

	groups := make(map[string][]string)
	for sum, members := range byDigest {
		if len(members) < 2 {
			continue
		}
		// First-seen traversal order within the group.
		for i := 1; i < len(members); i++ {
			for j := i; j > 0 && members[j].pos < members[j-1].pos; j-- {
				members[j], members[j-1] = members[j-1], members[j]
			}
		}
		paths := make([]string, len(members))
		for i, m := range members {
			paths[i] = m.path
		}
		groups[sum] = paths
	}
	return groups, nil
}

// digestAll computes digests for all candidates across a bounded worker
// pool. Files that fail to read are absent from the result.
func (s *Scanner) digestAll(ctx context.Context, candidates []candidate, algo digest.Algorithm, chunkSize, workers int) (map[string]string, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan candidate)
	var mu sync.Mutex
	sums := make(map[string]string, len(candidates))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				sum, err := digest.File(c.path, algo, chunkSize)
				if err != nil {
					s.log.Debug("skipping unreadable file", zap.String("path", c.path), zap.Error(err))
					continue
				}
				mu.Lock()
				sums[c.path] = sum
				mu.Unlock()
			}
		}()
	}

	var cancelled error
feed:
	for _, c := range candidates {
		select {
		case jobs <- c:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}
	return sums, nil
}

// walkFiles walks root calling fn for every regular file.
func (s *Scanner) walkFiles(ctx context.Context, root string, fn func(path string, info os.FileInfo)) error {
	return fsys.Walk(ctx, root, func(path string, d os.DirEntry) error {
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil // vanished mid-walk
		}
		fn(path, info)
		return nil
	})
}
