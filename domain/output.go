package domain

import (
	"context"
	"io"
	"os"
	"time"
)

// FileSystem is the subset of filesystem access the use cases need.
//
// Implementations live in the service layer.
type FileSystem interface {
	// Stat returns file info, following symlinks
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether path exists
	Exists(path string) (bool, error)

	// CreateEmpty creates an empty file without truncating an existing one.
	// created is false when the file was already present.
	CreateEmpty(path string) (created bool, err error)

	// Rename moves oldPath to newPath, refusing to overwrite newPath
	Rename(oldPath, newPath string) error

	// Touch sets access and modification times
	Touch(path string, t time.Time) error

	// Remove deletes path, ignoring absence
	Remove(path string) error
}

// CommandRunner runs external programs
type CommandRunner interface {
	// Run executes argv, streaming stdout to the given writer when non-nil.
	// Failures carry the program's stderr.
	Run(ctx context.Context, stdout io.Writer, argv ...string) error

	// LookPath reports whether the program can be found
	LookPath(name string) (string, error)
}

// Archiver produces archives and compressed files by delegating to
// external tar and compressor binaries
type Archiver interface {
	// DirectoryCommand returns the tar argv that archives src into dest
	DirectoryCommand(src, dest string, c Compression) []string

	// FileCommand returns the compressor argv whose stdout is the compressed src
	FileCommand(src string, c Compression) []string

	// ArchiveDirectory runs DirectoryCommand
	ArchiveDirectory(ctx context.Context, src, dest string, c Compression) error

	// CompressFile runs FileCommand, writing its output to dest
	CompressFile(ctx context.Context, src, dest string, c Compression) error

	// CheckTools fails with an external command error when a program the
	// archive needs is not installed
	CheckTools(isDir bool, c Compression) error
}

// Copier copies files and directory trees
type Copier interface {
	// Copy copies src to dest and returns the number of bytes written.
	// Paths under a directory src matching an exclude pattern are skipped.
	Copy(ctx context.Context, src, dest string, exclude []string) (int64, error)
}

// PathExpander turns command-line arguments into concrete paths
type PathExpander interface {
	// Expand resolves glob patterns; literal paths pass through untouched
	Expand(patterns []string) ([]string, error)
}

// ResultFormatter renders operation reports
type ResultFormatter interface {
	// Format renders the report as a string
	Format(report *OperationReport, format OutputFormat) (string, error)

	// Write writes the rendered report to the writer
	Write(report *OperationReport, format OutputFormat, writer io.Writer) error
}

// ReportWriter sends a rendered report to a writer or, when outputPath is
// set, to that file
type ReportWriter interface {
	Write(writer io.Writer, outputPath string, format OutputFormat, writeFunc func(io.Writer) error) error
}

// ProgressManager tracks byte progress of long copies
type ProgressManager interface {
	// Initialize sets up progress tracking with the total byte count
	Initialize(total int64)

	// Add records n more bytes processed
	Add(n int64)

	// SetWriter sets the output writer for progress bars
	SetWriter(writer io.Writer)

	// IsInteractive returns true if progress bars should be shown
	IsInteractive() bool

	// Close finishes the progress bar
	Close()
}
