package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/internal/config"
	"github.com/spf13/cobra"
)

// InitCommand represents the init command
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand creates a new init command
func NewInitCommand() *InitCommand {
	return &InitCommand{
		force:      false,
		configPath: domain.DefaultConfigFileName,
	}
}

// CreateCobraCommand creates the cobra command for configuration initialization
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize datestamp configuration file",
		Long: `Create a .datestamp.toml file with the default settings.

datestamp looks for .datestamp.toml in the working directory and its
parents, so a file at the top of a project applies to everything below it.

Examples:
  # Create .datestamp.toml in current directory
  datestamp init

  # Overwrite existing configuration file
  datestamp init --force`,
		RunE: i.runInit,
	}

	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&i.configPath, "path", "p", domain.DefaultConfigFileName, "Configuration file path")

	return cmd
}

// runInit executes the init command
func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	configPath, err := filepath.Abs(i.configPath)
	if err != nil {
		return domain.NewInvalidInputError("failed to resolve config path", err)
	}

	if _, err := os.Stat(configPath); err == nil && !i.force {
		return domain.NewIOError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath), nil)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return domain.NewIOError(fmt.Sprintf("failed to create directory %s", configDir), err)
	}

	content, err := config.GenerateDefaultConfigTOML()
	if err != nil {
		return domain.NewConfigError("failed to render default configuration", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return domain.NewIOError("failed to write configuration file", err)
	}

	relPath, err := filepath.Rel(".", configPath)
	if err != nil {
		relPath = configPath
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", relPath)
	return nil
}

// NewInitCmd creates and returns the init cobra command
func NewInitCmd() *cobra.Command {
	return NewInitCommand().CreateCobraCommand()
}
