package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/datestamp/domain"
	"github.com/spf13/viper"
)

// Config represents the main configuration structure
type Config struct {
	// Stamp controls where the stamp goes and whether it carries the time
	Stamp StampConfig `mapstructure:"stamp" yaml:"stamp" toml:"stamp"`

	// Archive holds archive command configuration
	Archive ArchiveConfig `mapstructure:"archive" yaml:"archive" toml:"archive"`

	// Backup holds backup copy configuration
	Backup BackupConfig `mapstructure:"backup" yaml:"backup" toml:"backup"`

	// Output holds output placement and formatting configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" toml:"output"`

	// Path of the file the configuration was read from, empty for defaults
	Source string `mapstructure:"-" yaml:"-" toml:"-"`
}

// StampConfig holds stamp composition settings
type StampConfig struct {
	// Suffix places the stamp after the base name
	Suffix bool `mapstructure:"suffix" yaml:"suffix" toml:"suffix"`

	// Time appends HH.MM.SS to the date
	Time bool `mapstructure:"time" yaml:"time" toml:"time"`
}

// ArchiveConfig holds archive settings
type ArchiveConfig struct {
	// Compression is one of none, gzip, bzip2, xz, zstd
	Compression string `mapstructure:"compression" yaml:"compression" toml:"compression"`

	// TarCommand is the tar binary to invoke
	TarCommand string `mapstructure:"tar_command" yaml:"tar_command" toml:"tar_command"`
}

// BackupConfig holds backup settings
type BackupConfig struct {
	// Exclude lists doublestar patterns skipped when copying directories
	Exclude []string `mapstructure:"exclude" yaml:"exclude" toml:"exclude"`

	// Progress shows a progress bar on interactive terminals
	Progress bool `mapstructure:"progress" yaml:"progress" toml:"progress"`
}

// OutputConfig holds configuration for output placement and formatting
type OutputConfig struct {
	// Directory receives created files, archives and backups.
	// Empty means alongside the source.
	Directory string `mapstructure:"directory" yaml:"directory" toml:"directory"`

	// Format of operation reports: text, json, yaml
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Stamp: StampConfig{
			Suffix: false,
			Time:   false,
		},
		Archive: ArchiveConfig{
			Compression: string(domain.DefaultCompression),
			TarCommand:  domain.DefaultTarCommand,
		},
		Backup: BackupConfig{
			Exclude:  append([]string{}, domain.DefaultBackupExcludes...),
			Progress: true,
		},
		Output: OutputConfig{
			Directory: "",
			Format:    string(domain.DefaultOutputFormat),
		},
	}
}

// LoadConfig loads configuration from file or returns default config.
//
// An empty configPath triggers discovery of .datestamp.toml from the current
// directory upwards. TOML files go through the TOML loader; YAML and JSON
// files are read with viper.
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget is LoadConfig with discovery starting at targetPath
// instead of the working directory
func LoadConfigWithTarget(configPath, targetPath string) (*Config, error) {
	var (
		cfg *Config
		err error
	)

	switch {
	case configPath == "":
		cfg, err = NewTomlConfigLoader().LoadConfig(discoveryStart(targetPath))
	case strings.EqualFold(filepath.Ext(configPath), ".toml"):
		cfg, err = NewTomlConfigLoader().LoadFile(configPath)
	default:
		cfg, err = loadWithViper(configPath)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadWithViper reads YAML or JSON configuration
func loadWithViper(configPath string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(configPath)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Unmarshal into config struct
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Source = configPath
	return config, nil
}

// discoveryStart returns the directory config discovery begins in
func discoveryStart(targetPath string) string {
	if targetPath != "" {
		if info, err := os.Stat(targetPath); err == nil {
			if info.IsDir() {
				return targetPath
			}
			return filepath.Dir(targetPath)
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if _, err := domain.ParseCompression(c.Archive.Compression); err != nil {
		return domain.NewConfigError("archive.compression", err)
	}

	if _, err := domain.ParseOutputFormat(c.Output.Format); err != nil {
		return domain.NewConfigError("output.format", err)
	}

	if strings.TrimSpace(c.Archive.TarCommand) == "" {
		return domain.NewConfigError("archive.tar_command must not be empty", nil)
	}

	return nil
}

// StampOptions converts the stamp section into request options
func (c *Config) StampOptions() domain.StampOptions {
	return domain.StampOptions{
		Suffix:      c.Stamp.Suffix,
		IncludeTime: c.Stamp.Time,
	}
}

// Compression returns the configured compression. Validate has already
// rejected unknown values.
func (c *Config) Compression() domain.Compression {
	comp, err := domain.ParseCompression(c.Archive.Compression)
	if err != nil {
		return domain.CompressionNone
	}
	return comp
}

// OutputFormat returns the configured report format
func (c *Config) OutputFormat() domain.OutputFormat {
	format, err := domain.ParseOutputFormat(c.Output.Format)
	if err != nil {
		return domain.DefaultOutputFormat
	}
	return format
}
