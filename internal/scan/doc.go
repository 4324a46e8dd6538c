// Package scan implements the long-running tree scans: exact-content
// duplicate detection, large-file discovery, and old-file discovery.
//
// Scans are blocking, cancellable calls meant to run off the caller's event
// loop. Per-file failures are swallowed; a scan never aborts on one bad
// entry.
package scan
