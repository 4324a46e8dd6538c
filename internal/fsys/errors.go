package fsys

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for single-target operations. Callers match with errors.Is.
var (
	ErrNotFound      = errors.New("path does not exist")
	ErrPermission    = errors.New("permission denied")
	ErrNotDirectory  = errors.New("not a directory")
	ErrInvalidTarget = errors.New("invalid operation target")
	ErrExists        = errors.New("destination already exists")
	ErrIO            = errors.New("i/o failure")
)

// classify maps an OS-level error onto the sentinel taxonomy, keeping the
// offending path in the message.
func classify(path string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s: %w", path, ErrPermission)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%s: %w", path, ErrExists)
	default:
		return fmt.Errorf("%s: %w: %v", path, ErrIO, err)
	}
}
