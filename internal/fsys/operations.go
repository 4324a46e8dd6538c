package fsys

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CreateDir creates a new directory named name inside parent.
func CreateDir(parent, name string) error {
	info, err := os.Stat(parent)
	if err != nil {
		return classify(parent, err)
	}
	if !info.IsDir() {
		return classify(parent, ErrNotDirectory)
	}

	path := filepath.Join(parent, name)
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		return classify(path, err)
	}
	return nil
}

// Rename gives the entry at path a new name within its directory.
func Rename(path, newName string) error {
	if _, err := os.Lstat(path); err != nil {
		return classify(path, err)
	}
	if newName == "" || strings.ContainsRune(newName, os.PathSeparator) {
		return fmt.Errorf("%q: %w", newName, ErrInvalidTarget)
	}

	newPath := filepath.Join(filepath.Dir(path), newName)
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("%s: %w", newPath, ErrExists)
	}
	if err := os.Rename(path, newPath); err != nil {
		return classify(path, err)
	}
	return nil
}

// Delete removes a file or directory tree.
func Delete(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return classify(path, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return classify(path, err)
	}
	return nil
}

// Move relocates source into the destination directory, keeping its base
// name. Falls back to copy-then-delete across filesystems.
func Move(source, destDir string) error {
	destPath, err := destination(source, destDir)
	if err != nil {
		return err
	}
	if err := os.Rename(source, destPath); err == nil {
		return nil
	}
	if err := Copy(source, destDir); err != nil {
		return err
	}
	if err := os.RemoveAll(source); err != nil {
		return classify(source, err)
	}
	return nil
}

// Copy copies source (file or directory tree) into the destination
// directory, keeping its base name.
func Copy(source, destDir string) error {
	destPath, err := destination(source, destDir)
	if err != nil {
		return err
	}

	info, err := os.Stat(source)
	if err != nil {
		return classify(source, err)
	}
	if info.IsDir() {
		return copyTree(source, destPath)
	}
	return copyFile(source, destPath, info.Mode())
}

// destination validates the move/copy target and rejects collisions.
func destination(source, destDir string) (string, error) {
	if _, err := os.Lstat(source); err != nil {
		return "", classify(source, err)
	}
	info, err := os.Stat(destDir)
	if err != nil {
		return "", classify(destDir, err)
	}
	if !info.IsDir() {
		return "", classify(destDir, ErrNotDirectory)
	}

	destPath := filepath.Join(destDir, filepath.Base(source))
	if _, err := os.Lstat(destPath); err == nil {
		return "", fmt.Errorf("%s: %w", destPath, ErrExists)
	}
	return destPath, nil
}

func copyFile(source, dest string, mode os.FileMode) error {
	in, err := os.Open(source)
	if err != nil {
		return classify(source, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode.Perm())
	if err != nil {
		return classify(dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return classify(dest, err)
	}
	if err := out.Close(); err != nil {
		return classify(dest, err)
	}
	return nil
}

func copyTree(source, dest string) error {
	return filepath.WalkDir(source, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return classify(path, err)
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return classify(path, err)
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return classify(target, err)
			}
			return nil
		}
		if d.Type()&os.ModeSymlink != 0 {
			return nil // links are not carried over
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		return copyFile(path, target, info.Mode())
	})
}
