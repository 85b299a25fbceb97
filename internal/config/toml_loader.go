package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/datestamp/domain"
	"github.com/pelletier/go-toml/v2"
)

// DatestampTomlConfig represents the structure of .datestamp.toml
type DatestampTomlConfig struct {
	Stamp   TomlStampConfig   `toml:"stamp"`
	Archive TomlArchiveConfig `toml:"archive"`
	Backup  TomlBackupConfig  `toml:"backup"`
	Output  TomlOutputConfig  `toml:"output"`
}

// TomlStampConfig represents the [stamp] section
type TomlStampConfig struct {
	Suffix *bool `toml:"suffix"` // pointer to detect unset
	Time   *bool `toml:"time"`   // pointer to detect unset
}

// TomlArchiveConfig represents the [archive] section
type TomlArchiveConfig struct {
	Compression string `toml:"compression"`
	TarCommand  string `toml:"tar_command"`
}

// TomlBackupConfig represents the [backup] section
type TomlBackupConfig struct {
	Exclude  []string `toml:"exclude"`
	Progress *bool    `toml:"progress"` // pointer to detect unset
}

// TomlOutputConfig represents the [output] section
type TomlOutputConfig struct {
	Directory string `toml:"directory"`
	Format    string `toml:"format"`
}

// TomlConfigLoader handles TOML-only configuration loading
type TomlConfigLoader struct{}

// NewTomlConfigLoader creates a new TOML configuration loader
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{}
}

// LoadConfig looks for .datestamp.toml in startDir and its parents and
// returns defaults when none is found
func (l *TomlConfigLoader) LoadConfig(startDir string) (*Config, error) {
	configPath, err := l.findDatestampToml(startDir)
	if err != nil {
		return DefaultConfig(), nil
	}
	return l.LoadFile(configPath)
}

// LoadFile parses a specific TOML file and merges it into defaults
func (l *TomlConfigLoader) LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var tomlConfig DatestampTomlConfig
	if err := toml.Unmarshal(data, &tomlConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	defaults := DefaultConfig()
	l.mergeTomlConfig(defaults, &tomlConfig)
	defaults.Source = configPath

	return defaults, nil
}

// findDatestampToml walks up the directory tree to find .datestamp.toml
func (l *TomlConfigLoader) findDatestampToml(startDir string) (string, error) {
	dir := startDir
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	for {
		configPath := filepath.Join(dir, domain.DefaultConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

// mergeTomlConfig merges parsed TOML values into defaults, using pointer
// booleans and empty strings to detect unset values
func (l *TomlConfigLoader) mergeTomlConfig(defaults *Config, tomlConfig *DatestampTomlConfig) {
	// Stamp
	if tomlConfig.Stamp.Suffix != nil {
		defaults.Stamp.Suffix = *tomlConfig.Stamp.Suffix
	}
	if tomlConfig.Stamp.Time != nil {
		defaults.Stamp.Time = *tomlConfig.Stamp.Time
	}

	// Archive
	if tomlConfig.Archive.Compression != "" {
		defaults.Archive.Compression = tomlConfig.Archive.Compression
	}
	if tomlConfig.Archive.TarCommand != "" {
		defaults.Archive.TarCommand = tomlConfig.Archive.TarCommand
	}

	// Backup
	if len(tomlConfig.Backup.Exclude) > 0 {
		defaults.Backup.Exclude = tomlConfig.Backup.Exclude
	}
	if tomlConfig.Backup.Progress != nil {
		defaults.Backup.Progress = *tomlConfig.Backup.Progress
	}

	// Output
	if tomlConfig.Output.Directory != "" {
		defaults.Output.Directory = tomlConfig.Output.Directory
	}
	if tomlConfig.Output.Format != "" {
		defaults.Output.Format = tomlConfig.Output.Format
	}
}
