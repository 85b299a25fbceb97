package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ludo-technologies/datestamp/domain"
	"go.uber.org/zap"
)

// FileCopier implements domain.Copier for regular files, directory trees
// and the symlinks inside them
type FileCopier struct {
	progress domain.ProgressManager
	logger   *zap.Logger
}

// NewFileCopier creates a copier reporting byte progress to progress
func NewFileCopier(progress domain.ProgressManager, logger *zap.Logger) *FileCopier {
	if progress == nil {
		progress = NoopProgressManager{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileCopier{progress: progress, logger: logger}
}

// Copy copies src to dest. dest must not exist. A partially written dest is
// removed when the copy fails.
func (c *FileCopier) Copy(ctx context.Context, src, dest string, exclude []string) (int64, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return 0, domain.NewInvalidInputError(fmt.Sprintf("invalid exclude pattern: %s", pattern), nil)
		}
	}

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, domain.NewFileNotFoundError(src, err)
		}
		return 0, domain.NewIOError(fmt.Sprintf("cannot access %s", src), err)
	}
	if info.IsDir() && insideTree(src, dest) {
		return 0, domain.NewInvalidInputError(fmt.Sprintf("cannot copy %s into itself (%s)", src, dest), nil)
	}
	if _, err := os.Lstat(dest); err == nil {
		return 0, domain.NewIOError(fmt.Sprintf("refusing to overwrite %s", dest), fs.ErrExist)
	}

	defer c.progress.Close()

	var written int64
	if info.IsDir() {
		total, err := c.treeSize(src, exclude)
		if err != nil {
			return 0, err
		}
		c.progress.Initialize(total)
		written, err = c.copyTree(ctx, src, dest, exclude)
		if err != nil {
			_ = os.RemoveAll(dest)
			return written, err
		}
		return written, nil
	}

	c.progress.Initialize(info.Size())
	written, err = c.copyFile(src, dest, info.Mode().Perm())
	if err != nil {
		_ = os.Remove(dest)
		return written, err
	}
	return written, nil
}

// insideTree reports whether dest is root or lies below it
func insideTree(root, dest string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absDest)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// excluded reports whether rel (slash separated, relative to the copy
// root) matches any exclude pattern
func excluded(rel string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// treeSize sums the sizes of regular files that will be copied
func (c *FileCopier) treeSize(root string, exclude []string) (int64, error) {
	var total int64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		if rel != "." && excluded(filepath.ToSlash(rel), exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, domain.NewIOError(fmt.Sprintf("failed to scan %s", root), err)
	}
	return total, nil
}

// copyTree recreates root at dest
func (c *FileCopier) copyTree(ctx context.Context, root, dest string, exclude []string) (int64, error) {
	var written int64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel != "." && excluded(filepath.ToSlash(rel), exclude) {
			c.logger.Debug("excluded", zap.String("path", rel))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dest, rel)
		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|0o700)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		case d.Type().IsRegular():
			n, err := c.copyFile(path, target, info.Mode().Perm())
			written += n
			return err
		default:
			c.logger.Warn("skipping special file", zap.String("path", path))
			return nil
		}
	})
	if err != nil {
		var de domain.DomainError
		if errors.As(err, &de) {
			return written, err
		}
		return written, domain.NewIOError(fmt.Sprintf("failed to copy %s to %s", root, dest), err)
	}
	return written, nil
}

// copyFile copies a single regular file, creating dest exclusively
func (c *FileCopier) copyFile(src, dest string, perm fs.FileMode) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, domain.NewIOError(fmt.Sprintf("failed to open %s", src), err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return 0, domain.NewIOError(fmt.Sprintf("failed to create %s", dest), err)
	}

	n, err := io.Copy(io.MultiWriter(out, progressWriter{c.progress}), in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, domain.NewIOError(fmt.Sprintf("failed to copy %s to %s", src, dest), err)
	}
	return n, nil
}

// progressWriter forwards written byte counts to a ProgressManager
type progressWriter struct {
	pm domain.ProgressManager
}

func (w progressWriter) Write(p []byte) (int, error) {
	w.pm.Add(int64(len(p)))
	return len(p), nil
}
