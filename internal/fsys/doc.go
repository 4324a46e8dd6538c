// Package fsys provides the filesystem primitives the smart scanning engine
// is built on.
//
// This package is organized into focused modules:
//   - metadata: descriptor resolution, extension categories, size formatting
//   - walk: recursive traversal (fastwalk) with cancellation
//   - directory: single-directory listing
//   - search: criteria-based file search and glob matching
//   - operations: file manipulation (create, rename, delete, move, copy)
//
// All bulk operations tolerate per-entry failures: unreadable subtrees and
// entries that vanish mid-scan are dropped from results, never raised.
// Single-target operations return errors classified against the sentinel
// taxonomy in errors.go.
package fsys
