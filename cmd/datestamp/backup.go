package main

import (
	"github.com/ludo-technologies/datestamp/app"
	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/spf13/cobra"
)

// BackupCommand represents the backup command
type BackupCommand struct {
	opts       *GlobalOptions
	exclude    []string
	noProgress bool
}

// NewBackupCommand creates a new backup command
func NewBackupCommand(opts *GlobalOptions) *BackupCommand {
	return &BackupCommand{opts: opts}
}

// CreateCobraCommand creates the cobra command for backups
func (b *BackupCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup <path>",
		Short: "Copy a file or directory to a date-stamped name",
		Long: `Copy a file or directory tree to a date-stamped name.

No external tools are used. Exclude patterns use doublestar syntax and are
matched against paths relative to the directory being copied.

Examples:
  # Copies notes.md to 2024-03-05_notes.md
  datestamp backup notes.md

  # Copies project/ to backups/project_2024-03-05, skipping build output
  datestamp backup -s -o backups --exclude 'build/**' --exclude '**/*.o' project`,
		Args: cobra.MaximumNArgs(1),
		RunE: b.run,
	}

	cmd.Flags().StringSliceVar(&b.exclude, "exclude", nil, "Doublestar pattern to skip (repeatable)")
	cmd.Flags().BoolVar(&b.noProgress, "no-progress", false, "Do not show the progress bar")

	return cmd
}

func (b *BackupCommand) run(cmd *cobra.Command, args []string) error {
	path := firstArg(args)
	settings, err := b.opts.Load(cmd, path)
	if err != nil {
		return err
	}
	defer func() { _ = settings.Logger.Sync() }()

	exclude := settings.Flags.MergeStringSlice(settings.Config.Backup.Exclude, b.exclude, "exclude")

	var progress domain.ProgressManager = service.NoopProgressManager{}
	if settings.Config.Backup.Progress && !b.noProgress && !settings.DryRun {
		progress = service.NewProgressManager("Backing up")
		progress.SetWriter(cmd.ErrOrStderr())
	}

	useCase, err := app.NewBackupUseCaseBuilder().
		WithFileSystem(service.NewFileSystem()).
		WithCopier(service.NewFileCopier(progress, settings.Logger)).
		WithFormatter(service.NewResultFormatter()).
		WithReportWriter(settings.ReportWriter(cmd)).
		WithLogger(settings.Logger).
		Build()
	if err != nil {
		return err
	}

	_, err = useCase.Execute(cmd.Context(), domain.BackupRequest{
		Path:      path,
		OutputDir: settings.Config.Output.Directory,
		Stamp:     settings.StampOptions(),
		Exclude:   exclude,
		DryRun:    settings.DryRun,
		Output:    settings.Output(cmd),
	})
	return err
}

// NewBackupCmd creates and returns the backup cobra command
func NewBackupCmd(opts *GlobalOptions) *cobra.Command {
	return NewBackupCommand(opts).CreateCobraCommand()
}
