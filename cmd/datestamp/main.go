package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ludo-technologies/datestamp/internal/version"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "datestamp",
		Short: "Create, archive and back up files under date-stamped names",
		Long: `datestamp puts the current date (and optionally time) into file names.

  2024-03-05_report.txt            default, stamp first
  report_2024-03-05.txt            --suffix
  2024-03-05_14.07.09_report.txt   --time

Existing stamps are recognised, so touch can replace an old stamp with
today's. Directories are archived with tar; compression is delegated to
gzip, bzip2, xz or zstd.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(NewCreateCmd(opts))
	rootCmd.AddCommand(NewArchiveCmd(opts))
	rootCmd.AddCommand(NewBackupCmd(opts))
	rootCmd.AddCommand(NewTouchCmd(opts))
	rootCmd.AddCommand(NewNameCmd(opts))
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		printError(os.Stderr, err, verbose)
		stop()
		os.Exit(1)
	}
}

// printError reports err with its category; verbose adds recovery hints
func printError(w io.Writer, err error, verbose bool) {
	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)

	fmt.Fprintf(w, "Error: %s\n", categorized.Message)
	fmt.Fprintf(w, "  %v\n", categorized.Original)

	if verbose {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range categorizer.GetRecoverySuggestions(categorized.Category) {
			fmt.Fprintf(w, "  • %s\n", s)
		}
	}
}
