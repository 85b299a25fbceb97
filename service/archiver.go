package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/datestamp/domain"
)

// TarArchiver implements domain.Archiver by invoking tar and the standalone
// compressors
type TarArchiver struct {
	runner     domain.CommandRunner
	fs         domain.FileSystem
	tarCommand string
}

// NewTarArchiver creates an archiver that runs tarCommand through runner.
// Partial outputs are removed through fs; nil uses the OS filesystem.
func NewTarArchiver(runner domain.CommandRunner, fs domain.FileSystem, tarCommand string) *TarArchiver {
	if fs == nil {
		fs = NewFileSystem()
	}
	if tarCommand == "" {
		tarCommand = domain.DefaultTarCommand
	}
	return &TarArchiver{runner: runner, fs: fs, tarCommand: tarCommand}
}

// CheckTools looks up tar (for directories) and the compressor on PATH
func (a *TarArchiver) CheckTools(isDir bool, c domain.Compression) error {
	var programs []string
	if isDir {
		programs = append(programs, a.tarCommand)
	}
	if cmd := c.Spec().Command; cmd != "" {
		programs = append(programs, cmd)
	}
	for _, program := range programs {
		if _, err := a.runner.LookPath(program); err != nil {
			return err
		}
	}
	return nil
}

// DirectoryCommand returns the tar argv archiving src into dest. tar changes
// into src's parent so the archive holds a single top-level directory.
func (a *TarArchiver) DirectoryCommand(src, dest string, c domain.Compression) []string {
	clean := filepath.Clean(src)
	argv := []string{a.tarCommand, "-c"}
	if opt := c.Spec().TarOption; opt != "" {
		argv = append(argv, opt)
	}
	return append(argv, "-f", dest, "-C", filepath.Dir(clean), filepath.Base(clean))
}

// FileCommand returns the compressor argv writing the compressed src to stdout
func (a *TarArchiver) FileCommand(src string, c domain.Compression) []string {
	spec := c.Spec()
	if spec.Command == "" {
		return nil
	}
	return []string{spec.Command, "-c", src}
}

// ArchiveDirectory runs tar. A partial archive is removed on failure.
func (a *TarArchiver) ArchiveDirectory(ctx context.Context, src, dest string, c domain.Compression) error {
	if err := a.runner.Run(ctx, nil, a.DirectoryCommand(src, dest, c)...); err != nil {
		_ = a.fs.Remove(dest)
		return err
	}
	return nil
}

// CompressFile streams the compressor's stdout into dest. dest must not
// exist; a partial output is removed on failure.
func (a *TarArchiver) CompressFile(ctx context.Context, src, dest string, c domain.Compression) error {
	argv := a.FileCommand(src, c)
	if argv == nil {
		return domain.NewInvalidInputError(fmt.Sprintf("compression %q has no compressor", c), nil)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return domain.NewIOError(fmt.Sprintf("failed to create %s", dest), err)
	}

	runErr := a.runner.Run(ctx, out, argv...)
	closeErr := out.Close()
	if runErr != nil {
		_ = a.fs.Remove(dest)
		return runErr
	}
	if closeErr != nil {
		_ = a.fs.Remove(dest)
		return domain.NewIOError(fmt.Sprintf("failed to write %s", dest), closeErr)
	}
	return nil
}
