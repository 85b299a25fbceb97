package main

import (
	"github.com/ludo-technologies/datestamp/app"
	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/spf13/cobra"
)

// TouchCommand represents the touch command
type TouchCommand struct {
	opts *GlobalOptions
}

// NewTouchCommand creates a new touch command
func NewTouchCommand(opts *GlobalOptions) *TouchCommand {
	return &TouchCommand{opts: opts}
}

// CreateCobraCommand creates the cobra command for restamping
func (t *TouchCommand) CreateCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <path|pattern>...",
		Short: "Replace the date stamp of existing files with today's",
		Long: `Rename existing files so they carry the current stamp and set their
modification time to now.

An existing stamp is removed first; files without one are simply stamped.
Patterns are expanded with doublestar (quote them to keep the shell out).
Nothing is renamed if any target already exists.

Examples:
  # 2023-11-02_report.txt -> 2024-03-05_report.txt
  datestamp touch 2023-11-02_report.txt

  # Restamp every log below logs/
  datestamp touch 'logs/**/*.log'`,
		RunE: t.run,
	}
}

func (t *TouchCommand) run(cmd *cobra.Command, args []string) error {
	settings, err := t.opts.Load(cmd, "")
	if err != nil {
		return err
	}
	defer func() { _ = settings.Logger.Sync() }()

	useCase, err := app.NewTouchUseCaseBuilder().
		WithFileSystem(service.NewFileSystem()).
		WithPathExpander(service.NewGlobExpander()).
		WithFormatter(service.NewResultFormatter()).
		WithReportWriter(settings.ReportWriter(cmd)).
		WithLogger(settings.Logger).
		Build()
	if err != nil {
		return err
	}

	_, err = useCase.Execute(cmd.Context(), domain.TouchRequest{
		Paths:  args,
		Stamp:  settings.StampOptions(),
		DryRun: settings.DryRun,
		Output: settings.Output(cmd),
	})
	return err
}

// NewTouchCmd creates and returns the touch cobra command
func NewTouchCmd(opts *GlobalOptions) *cobra.Command {
	return NewTouchCommand(opts).CreateCobraCommand()
}
