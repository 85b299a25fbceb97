package main

import (
	"github.com/ludo-technologies/datestamp/app"
	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/spf13/cobra"
)

// ArchiveCommand represents the archive command
type ArchiveCommand struct {
	opts *GlobalOptions

	// Compression flags (at most one may be set)
	gzip  bool
	bzip2 bool
	xz    bool
	zstd  bool
}

// NewArchiveCommand creates a new archive command
func NewArchiveCommand(opts *GlobalOptions) *ArchiveCommand {
	return &ArchiveCommand{opts: opts}
}

// CreateCobraCommand creates the cobra command for archiving
func (a *ArchiveCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <path>",
		Short: "Archive a file or directory under a date-stamped name",
		Long: `Archive a file or directory under a date-stamped name.

Directories are packed with tar into <stamp>_<dir>.tar, with the compressor's
extension appended when a compression flag is given. Files are copied, or
piped through the compressor when a compression flag is given.

Examples:
  # tar -c -f 2024-03-05_photos.tar -C . photos
  datestamp archive photos

  # tar -c -z -f 2024-03-05_photos.tar.gz -C . photos
  datestamp archive --gzip photos

  # xz -c db.sql > 2024-03-05_db.sql.xz
  datestamp archive --xz db.sql`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run,
	}

	cmd.Flags().BoolVar(&a.gzip, "gzip", false, "Compress with gzip")
	cmd.Flags().BoolVar(&a.bzip2, "bzip2", false, "Compress with bzip2")
	cmd.Flags().BoolVar(&a.xz, "xz", false, "Compress with xz")
	cmd.Flags().BoolVar(&a.zstd, "zstd", false, "Compress with zstd")

	return cmd
}

func (a *ArchiveCommand) run(cmd *cobra.Command, args []string) error {
	path := firstArg(args)
	settings, err := a.opts.Load(cmd, path)
	if err != nil {
		return err
	}
	defer func() { _ = settings.Logger.Sync() }()

	compression, err := a.compression(settings)
	if err != nil {
		return err
	}

	runner := service.NewCommandRunner(settings.Logger, settings.Verbose)
	fs := service.NewFileSystem()
	useCase, err := app.NewArchiveUseCaseBuilder().
		WithFileSystem(fs).
		WithArchiver(service.NewTarArchiver(runner, fs, settings.Config.Archive.TarCommand)).
		WithCopier(service.NewFileCopier(service.NoopProgressManager{}, settings.Logger)).
		WithFormatter(service.NewResultFormatter()).
		WithReportWriter(settings.ReportWriter(cmd)).
		WithLogger(settings.Logger).
		Build()
	if err != nil {
		return err
	}

	_, err = useCase.Execute(cmd.Context(), domain.ArchiveRequest{
		Path:        path,
		OutputDir:   settings.Config.Output.Directory,
		Stamp:       settings.StampOptions(),
		Compression: compression,
		DryRun:      settings.DryRun,
		Output:      settings.Output(cmd),
	})
	return err
}

// compression picks the flag-selected method, falling back to the
// configured one when no compression flag was given
func (a *ArchiveCommand) compression(settings *Settings) (domain.Compression, error) {
	c, err := domain.CompressionFromFlags(a.gzip, a.bzip2, a.xz, a.zstd)
	if err != nil {
		return "", err
	}
	if c.Enabled() {
		return c, nil
	}
	return settings.Config.Compression(), nil
}

// NewArchiveCmd creates and returns the archive cobra command
func NewArchiveCmd(opts *GlobalOptions) *cobra.Command {
	return NewArchiveCommand(opts).CreateCobraCommand()
}
