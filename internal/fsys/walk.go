package fsys

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// WalkFunc receives each reachable entry with its absolute path. The walk is
// concurrent; implementations that aggregate shared state must synchronize.
type WalkFunc func(path string, d os.DirEntry) error

// Walk traverses the tree rooted at root, depth-unbounded, without following
// symlinks. Unreadable subtrees and entries that vanish mid-walk are skipped
// silently; partial results are valid. Cancellation is checked between
// entries.
func Walk(ctx context.Context, root string, fn WalkFunc) error {
	root = filepath.Clean(root)
	conf := fastwalk.Config{Follow: false}

	return fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			// Permission failures and races with concurrent deletion both
			// land here. Either way the subtree is not reportable.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		return fn(abs, d)
	})
}

// WalkPaths streams the absolute paths under root as a lazy sequence. The
// channel is closed when the traversal finishes or ctx is cancelled; each
// call starts a fresh traversal.
func WalkPaths(ctx context.Context, root string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		_ = Walk(ctx, root, func(path string, d os.DirEntry) error {
			select {
			case out <- path:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out
}
