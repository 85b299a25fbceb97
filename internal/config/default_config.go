package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/pelletier/go-toml/v2"
)

// defaultConfigTmpl contains the embedded default configuration template
//
//go:embed default_config.toml.tmpl
var defaultConfigTmpl string

// DefaultConfigValues holds all values used to render the default config template.
// All values are sourced from DefaultConfig to ensure a single source of truth.
type DefaultConfigValues struct {
	Suffix      bool
	Time        bool
	Compression string
	TarCommand  string
	Exclude     []string
	Progress    bool
	Directory   string
	Format      string
}

// newDefaultConfigValues creates a DefaultConfigValues populated from DefaultConfig.
func newDefaultConfigValues() DefaultConfigValues {
	cfg := DefaultConfig()
	return DefaultConfigValues{
		Suffix:      cfg.Stamp.Suffix,
		Time:        cfg.Stamp.Time,
		Compression: cfg.Archive.Compression,
		TarCommand:  cfg.Archive.TarCommand,
		Exclude:     cfg.Backup.Exclude,
		Progress:    cfg.Backup.Progress,
		Directory:   cfg.Output.Directory,
		Format:      cfg.Output.Format,
	}
}

// GenerateDefaultConfigTOML renders the default config template
// and returns the resulting TOML string.
func GenerateDefaultConfigTOML() (string, error) {
	tmpl, err := template.New("default_config").Parse(defaultConfigTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse default config template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newDefaultConfigValues()); err != nil {
		return "", fmt.Errorf("failed to render default config template: %w", err)
	}

	return buf.String(), nil
}

// LoadDefaultConfigFromTOML parses the rendered default config and returns the full Config struct
func LoadDefaultConfigFromTOML() (*Config, error) {
	configTOML, err := GenerateDefaultConfigTOML()
	if err != nil {
		return nil, err
	}

	var tomlCfg DatestampTomlConfig
	if err := toml.Unmarshal([]byte(configTOML), &tomlCfg); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	loader := &TomlConfigLoader{}
	loader.mergeTomlConfig(defaults, &tomlCfg)

	return defaults, nil
}
