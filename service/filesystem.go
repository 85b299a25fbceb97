package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ludo-technologies/datestamp/domain"
)

// OSFileSystem implements domain.FileSystem on the local filesystem
type OSFileSystem struct{}

// NewFileSystem creates a new OSFileSystem
func NewFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for path
func (f *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewIOError(fmt.Sprintf("cannot access %s", path), err)
	}
	return info, nil
}

// Exists reports whether path exists
func (f *OSFileSystem) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, domain.NewIOError(fmt.Sprintf("cannot access %s", path), err)
}

// CreateEmpty creates path exclusively so an existing file is never truncated
func (f *OSFileSystem) CreateEmpty(path string) (bool, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, domain.NewIOError(fmt.Sprintf("failed to create %s", path), err)
	}
	if err := file.Close(); err != nil {
		return true, domain.NewIOError(fmt.Sprintf("failed to close %s", path), err)
	}
	return true, nil
}

// Rename moves oldPath to newPath. os.Rename silently replaces an existing
// file on Unix, so the target is checked first.
func (f *OSFileSystem) Rename(oldPath, newPath string) error {
	exists, err := f.Exists(newPath)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewIOError(fmt.Sprintf("refusing to overwrite %s", newPath), fs.ErrExist)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return domain.NewIOError(fmt.Sprintf("failed to rename %s to %s", oldPath, newPath), err)
	}
	return nil
}

// Touch sets access and modification times of path to t
func (f *OSFileSystem) Touch(path string, t time.Time) error {
	if err := os.Chtimes(path, t, t); err != nil {
		return domain.NewIOError(fmt.Sprintf("failed to update times of %s", path), err)
	}
	return nil
}

// Remove deletes path and anything below it
func (f *OSFileSystem) Remove(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return domain.NewIOError(fmt.Sprintf("failed to remove %s", path), err)
	}
	return nil
}
