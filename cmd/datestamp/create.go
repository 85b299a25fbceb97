package main

import (
	"github.com/ludo-technologies/datestamp/app"
	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/spf13/cobra"
)

// CreateCommand represents the create command
type CreateCommand struct {
	opts *GlobalOptions
}

// NewCreateCommand creates a new create command
func NewCreateCommand(opts *GlobalOptions) *CreateCommand {
	return &CreateCommand{opts: opts}
}

// CreateCobraCommand creates the cobra command for empty file creation
func (c *CreateCommand) CreateCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty file with a date-stamped name",
		Long: `Create an empty file whose name carries today's date.

An existing file with the stamped name is left untouched.

Examples:
  # Creates 2024-03-05_notes.md
  datestamp create notes.md

  # Creates notes_2024-03-05_14.07.09.md
  datestamp create -s -t notes.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.run,
	}
}

func (c *CreateCommand) run(cmd *cobra.Command, args []string) error {
	name := firstArg(args)
	settings, err := c.opts.Load(cmd, name)
	if err != nil {
		return err
	}
	defer func() { _ = settings.Logger.Sync() }()

	useCase, err := app.NewCreateUseCaseBuilder().
		WithFileSystem(service.NewFileSystem()).
		WithFormatter(service.NewResultFormatter()).
		WithReportWriter(settings.ReportWriter(cmd)).
		WithLogger(settings.Logger).
		Build()
	if err != nil {
		return err
	}

	_, err = useCase.Execute(cmd.Context(), domain.CreateRequest{
		Name:      name,
		OutputDir: settings.Config.Output.Directory,
		Stamp:     settings.StampOptions(),
		DryRun:    settings.DryRun,
		Output:    settings.Output(cmd),
	})
	return err
}

// NewCreateCmd creates and returns the create cobra command
func NewCreateCmd(opts *GlobalOptions) *cobra.Command {
	return NewCreateCommand(opts).CreateCobraCommand()
}
