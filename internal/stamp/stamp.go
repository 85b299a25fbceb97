package stamp

import (
	"path/filepath"
	"strings"
	"time"
)

// Layouts used to render the date and time portions of a stamp
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15.04.05"

	// Separator joins the stamp to the base name and the date to the time
	Separator = "_"
)

// FilenameParts is a filename split at its final extension
type FilenameParts struct {
	BaseName  string
	Extension string
}

// Name reassembles the parts into a filename
func (p FilenameParts) Name() string {
	return p.BaseName + p.Extension
}

// Options controls how a stamp is composed into a filename
type Options struct {
	// Suffix places the stamp after the base name instead of before it
	Suffix bool

	// IncludeTime appends HH.MM.SS to the date
	IncludeTime bool
}

// SplitFilename splits the last path segment of rawName into base name and
// extension. Dotfiles keep their whole name as the extension.
func SplitFilename(rawName string) FilenameParts {
	if rawName == "" {
		return FilenameParts{}
	}

	name := filepath.Base(rawName)
	if strings.HasPrefix(name, ".") {
		return FilenameParts{Extension: name}
	}

	ext := filepath.Ext(name)
	return FilenameParts{
		BaseName:  strings.TrimSuffix(name, ext),
		Extension: ext,
	}
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders t as HH.MM.SS
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// FormatStamp renders the date, followed by the time when includeTime is set
func FormatStamp(t time.Time, includeTime bool) string {
	s := FormatDate(t)
	if includeTime {
		s += Separator + FormatTime(t)
	}
	return s
}

// ComposeStampedName builds the stamped filename for baseName and extension.
// An empty base name yields the stamp alone; the extension is appended as is.
func ComposeStampedName(t time.Time, baseName, extension string, suffixMode, includeTime bool) string {
	s := FormatStamp(t, includeTime)

	var b strings.Builder
	switch {
	case baseName == "":
		b.WriteString(s)
	case suffixMode:
		b.WriteString(baseName)
		b.WriteString(Separator)
		b.WriteString(s)
	default:
		b.WriteString(s)
		b.WriteString(Separator)
		b.WriteString(baseName)
	}
	b.WriteString(extension)
	return b.String()
}

// Compose is ComposeStampedName driven by Options
func Compose(t time.Time, parts FilenameParts, opts Options) string {
	return ComposeStampedName(t, parts.BaseName, parts.Extension, opts.Suffix, opts.IncludeTime)
}
