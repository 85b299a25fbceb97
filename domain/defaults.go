package domain

// Defaults shared by the config layer and the CLI.
const (
	// DefaultConfigFileName is discovered by walking up from the working directory
	DefaultConfigFileName = ".datestamp.toml"

	// DefaultCompression is applied when neither config nor flags choose one
	DefaultCompression = CompressionNone

	// DefaultOutputFormat is used for operation reports
	DefaultOutputFormat = OutputFormatText

	// DefaultTarCommand is the archiver binary
	DefaultTarCommand = "tar"

	// EnvPrefix prefixes environment overrides, e.g. DATESTAMP_SUFFIX=true
	EnvPrefix = "DATESTAMP"
)

// DefaultBackupExcludes are skipped when copying directory trees
var DefaultBackupExcludes = []string{
	"**/.DS_Store",
}
