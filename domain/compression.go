package domain

import (
	"fmt"
	"strings"
)

// Compression identifies the external compressor applied to archives
type Compression string

const (
	CompressionNone  Compression = "none"
	CompressionGzip  Compression = "gzip"
	CompressionBzip2 Compression = "bzip2"
	CompressionXZ    Compression = "xz"
	CompressionZstd  Compression = "zstd"
)

// CompressionSpec describes how a compression method is invoked
type CompressionSpec struct {
	// TarOption is the tar flag selecting the compressor
	TarOption string

	// Extension is appended after .tar, or after the file's own extension
	Extension string

	// Command is the standalone compressor binary
	Command string
}

var compressionSpecs = map[Compression]CompressionSpec{
	CompressionNone:  {},
	CompressionGzip:  {TarOption: "-z", Extension: ".gz", Command: "gzip"},
	CompressionBzip2: {TarOption: "-j", Extension: ".bz2", Command: "bzip2"},
	CompressionXZ:    {TarOption: "-J", Extension: ".xz", Command: "xz"},
	CompressionZstd:  {TarOption: "--zstd", Extension: ".zst", Command: "zstd"},
}

// SupportedCompressions lists compression tags in flag order
func SupportedCompressions() []Compression {
	return []Compression{CompressionNone, CompressionGzip, CompressionBzip2, CompressionXZ, CompressionZstd}
}

// Spec returns the lookup row for c. Unknown values map to no compression.
func (c Compression) Spec() CompressionSpec {
	return compressionSpecs[c]
}

// Enabled reports whether c names a compressor
func (c Compression) Enabled() bool {
	return c != "" && c != CompressionNone
}

// IsValid reports whether c is a known compression tag
func (c Compression) IsValid() bool {
	_, ok := compressionSpecs[c]
	return ok
}

func (c Compression) String() string {
	if c == "" {
		return string(CompressionNone)
	}
	return string(c)
}

// ParseCompression converts a config or flag value into a Compression
func ParseCompression(s string) (Compression, error) {
	c := Compression(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CompressionNone, nil
	}
	if !c.IsValid() {
		return "", NewInvalidInputError(fmt.Sprintf("unknown compression %q (expected one of none, gzip, bzip2, xz, zstd)", s), nil)
	}
	return c, nil
}

// CompressionFromFlags selects the compression named by whichever single
// flag is set. Setting more than one flag is ambiguous and rejected.
func CompressionFromFlags(gzip, bzip2, xz, zstd bool) (Compression, error) {
	selected := CompressionNone
	count := 0
	for _, f := range []struct {
		set bool
		c   Compression
	}{
		{gzip, CompressionGzip},
		{bzip2, CompressionBzip2},
		{xz, CompressionXZ},
		{zstd, CompressionZstd},
	} {
		if f.set {
			selected = f.c
			count++
		}
	}
	if count > 1 {
		return "", NewInvalidInputError("only one of --gzip, --bzip2, --xz, --zstd can be specified", nil)
	}
	return selected, nil
}
