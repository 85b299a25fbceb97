package main

import (
	"github.com/ludo-technologies/datestamp/app"
	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/spf13/cobra"
)

// NewNameCmd creates the name command, which prints stamped names without
// touching the filesystem
func NewNameCmd(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "name <name>...",
		Short: "Print the date-stamped form of names",
		Long: `Print the date-stamped form of each name. Nothing is created.

Examples:
  datestamp name report.txt
  mv draft.md "$(datestamp name -s draft.md)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.Load(cmd, "")
			if err != nil {
				return err
			}

			_, err = app.NewNameUseCase(service.NewResultFormatter(), settings.ReportWriter(cmd), nil).Execute(domain.NameRequest{
				Names:  args,
				Stamp:  settings.StampOptions(),
				Output: settings.Output(cmd),
			})
			return err
		},
	}
}
