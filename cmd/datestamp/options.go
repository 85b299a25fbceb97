package main

import (
	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/internal/config"
	"github.com/ludo-technologies/datestamp/internal/logging"
	"github.com/ludo-technologies/datestamp/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// GlobalOptions holds the persistent flags shared by every subcommand
type GlobalOptions struct {
	suffix      bool
	includeTime bool
	configPath  string
	verbose     bool
	dryRun      bool
	format      string
	outputDir   string
	report      string
}

// AddFlags registers the persistent flags on the root command
func (o *GlobalOptions) AddFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&o.suffix, "suffix", "s", false, "Place the stamp after the base name")
	flags.BoolVarP(&o.includeTime, "time", "t", false, "Append the time (HH.MM.SS) to the date")
	flags.StringVarP(&o.configPath, "config", "c", "", "Configuration file path (.toml, .yaml or .json)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVarP(&o.dryRun, "dry-run", "n", false, "Show what would be done without changing anything")
	flags.StringVar(&o.format, "format", "", "Output format: text, json or yaml")
	flags.StringVarP(&o.outputDir, "output-dir", "o", "", "Directory to write results to (default: next to the source)")
	flags.StringVar(&o.report, "report", "", "Write the operation report to this file instead of stdout")
}

// Settings is the effective configuration of one invocation
type Settings struct {
	Config  *config.Config
	Flags   *config.FlagTracker
	Format  domain.OutputFormat
	DryRun  bool
	Verbose bool
	Report  string
	Logger  *zap.Logger
}

// Load resolves configuration with precedence flag > environment > config
// file > defaults. Config discovery starts at target when it is non-empty.
func (o *GlobalOptions) Load(cmd *cobra.Command, target string) (*Settings, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfigWithTarget(o.configPath, target)
	if err != nil {
		if !domain.IsCode(err, domain.ErrCodeConfigError) {
			err = domain.NewConfigError("failed to load configuration", err)
		}
		return nil, err
	}

	config.ApplyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracker := config.NewFlagTrackerWithFlags(GetExplicitFlags(cmd))
	cfg.Stamp.Suffix = tracker.MergeBool(cfg.Stamp.Suffix, o.suffix, "suffix")
	cfg.Stamp.Time = tracker.MergeBool(cfg.Stamp.Time, o.includeTime, "time")
	cfg.Output.Directory = tracker.MergeString(cfg.Output.Directory, o.outputDir, "output-dir")
	cfg.Output.Format = tracker.MergeString(cfg.Output.Format, o.format, "format")

	format, err := domain.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	logger := logging.New(o.verbose, cmd.ErrOrStderr())
	if cfg.Source != "" {
		logger.Debug("loaded configuration", zap.String("path", cfg.Source))
	}

	return &Settings{
		Config:  cfg,
		Flags:   tracker,
		Format:  format,
		DryRun:  o.dryRun,
		Verbose: o.verbose,
		Report:  o.report,
		Logger:  logger,
	}, nil
}

// StampOptions returns the merged stamp options
func (s *Settings) StampOptions() domain.StampOptions {
	return s.Config.StampOptions()
}

// Output returns output options writing to the command's stdout, or to the
// --report file when one was given
func (s *Settings) Output(cmd *cobra.Command) domain.OutputOptions {
	return domain.OutputOptions{Format: s.Format, Writer: cmd.OutOrStdout(), Path: s.Report}
}

// ReportWriter returns the writer that routes reports, announcing report
// files on the command's stderr
func (s *Settings) ReportWriter(cmd *cobra.Command) domain.ReportWriter {
	return service.NewFileOutputWriter(cmd.ErrOrStderr())
}

// GetExplicitFlags extracts which flags were explicitly set from a cobra
// command, including persistent flags inherited from the root
func GetExplicitFlags(cmd *cobra.Command) map[string]bool {
	explicitFlags := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			explicitFlags[f.Name] = true
		})
	}
	return explicitFlags
}

// firstArg returns args[0] or an empty string so use cases report the
// missing argument themselves
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
