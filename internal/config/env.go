package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ludo-technologies/datestamp/domain"
	"github.com/spf13/viper"
)

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are ignored; existing variables
// are never overwritten.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return domain.NewConfigError("failed to load "+name, err)
		}
	}
	return nil
}

// EnvVerbose enables debug logging where no --verbose flag exists
const EnvVerbose = "DATESTAMP_VERBOSE"

// envKeys maps config keys to the variables that override them,
// e.g. stamp.suffix <- DATESTAMP_SUFFIX
var envKeys = map[string]string{
	"stamp.suffix":        "SUFFIX",
	"stamp.time":          "TIME",
	"archive.compression": "COMPRESSION",
	"archive.tar_command": "TAR",
	"backup.exclude":      "EXCLUDE",
	"backup.progress":     "PROGRESS",
	"output.directory":    "OUTPUT_DIR",
	"output.format":       "FORMAT",
}

// ApplyEnvOverrides applies DATESTAMP_* environment variables on top of cfg
func ApplyEnvOverrides(cfg *Config) {
	v := viper.New()
	for key, suffix := range envKeys {
		_ = v.BindEnv(key, domain.EnvPrefix+"_"+suffix)
	}

	if v.IsSet("stamp.suffix") {
		cfg.Stamp.Suffix = v.GetBool("stamp.suffix")
	}
	if v.IsSet("stamp.time") {
		cfg.Stamp.Time = v.GetBool("stamp.time")
	}
	if v.IsSet("archive.compression") {
		cfg.Archive.Compression = v.GetString("archive.compression")
	}
	if v.IsSet("archive.tar_command") {
		cfg.Archive.TarCommand = v.GetString("archive.tar_command")
	}
	if v.IsSet("backup.exclude") {
		cfg.Backup.Exclude = splitList(v.GetString("backup.exclude"))
	}
	if v.IsSet("backup.progress") {
		cfg.Backup.Progress = v.GetBool("backup.progress")
	}
	if v.IsSet("output.directory") {
		cfg.Output.Directory = v.GetString("output.directory")
	}
	if v.IsSet("output.format") {
		cfg.Output.Format = v.GetString("output.format")
	}
}

// splitList splits a comma separated environment value
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
