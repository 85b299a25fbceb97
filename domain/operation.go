package domain

import (
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a format name. Empty means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputFormatText:
		return OutputFormatText, nil
	case OutputFormatJSON, OutputFormatYAML:
		return OutputFormat(s), nil
	default:
		return "", NewUnsupportedFormatError(s)
	}
}

// Operation names a file operation performed by the tool
type Operation string

const (
	OperationCreate  Operation = "create"
	OperationArchive Operation = "archive"
	OperationBackup  Operation = "backup"
	OperationTouch   Operation = "touch"
	OperationName    Operation = "name"
)

// StampOptions controls stamp placement and precision
type StampOptions struct {
	Suffix      bool `json:"suffix" yaml:"suffix"`
	IncludeTime bool `json:"include_time" yaml:"include_time"`
}

// OutputOptions is shared by every request
type OutputOptions struct {
	Format OutputFormat
	Writer io.Writer
	Path   string // report file; overrides Writer when set
}

// CreateRequest asks for an empty stamped file
type CreateRequest struct {
	Name      string
	OutputDir string // empty: alongside Name
	Stamp     StampOptions
	DryRun    bool
	Output    OutputOptions
}

// ArchiveRequest asks for a stamped copy or tar archive of Path
type ArchiveRequest struct {
	Path        string
	OutputDir   string // empty: alongside Path
	Stamp       StampOptions
	Compression Compression
	DryRun      bool
	Output      OutputOptions
}

// BackupRequest asks for a stamped copy of a file or directory tree
type BackupRequest struct {
	Path      string
	OutputDir string
	Stamp     StampOptions
	Exclude   []string // doublestar patterns relative to Path
	DryRun    bool
	Output    OutputOptions
}

// TouchRequest asks for existing files to be restamped in place
type TouchRequest struct {
	Paths  []string // literal paths or doublestar patterns
	Stamp  StampOptions
	DryRun bool
	Output OutputOptions
}

// NameRequest asks for stamped names without touching the filesystem
type NameRequest struct {
	Names  []string
	Stamp  StampOptions
	Output OutputOptions
}

// OperationResult records what one operation did or would do
type OperationResult struct {
	Operation Operation `json:"operation" yaml:"operation"`
	Source    string    `json:"source,omitempty" yaml:"source,omitempty"`
	Target    string    `json:"target" yaml:"target"`
	Stamp     string    `json:"stamp" yaml:"stamp"`

	// Created is true when a new file was made by create
	Created bool `json:"created,omitempty" yaml:"created,omitempty"`

	// Existed is true when create found the target already present
	Existed bool `json:"existed,omitempty" yaml:"existed,omitempty"`

	// Restamped is true when touch replaced an existing stamp
	Restamped bool `json:"restamped,omitempty" yaml:"restamped,omitempty"`

	IsDir   bool     `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
	Bytes   int64    `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	Command []string `json:"command,omitempty" yaml:"command,omitempty"`
	DryRun  bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// OperationReport groups the results of one invocation
type OperationReport struct {
	Results     []OperationResult `json:"results" yaml:"results"`
	GeneratedAt string            `json:"generated_at" yaml:"generated_at"`
	Version     string            `json:"version" yaml:"version"`
}
