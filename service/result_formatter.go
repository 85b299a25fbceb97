package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ludo-technologies/datestamp/domain"
	"gopkg.in/yaml.v3"
)

// ResultFormatterImpl implements domain.ResultFormatter
type ResultFormatterImpl struct{}

// NewResultFormatter creates a new result formatter
func NewResultFormatter() *ResultFormatterImpl {
	return &ResultFormatterImpl{}
}

// Format renders the report as a string
func (f *ResultFormatterImpl) Format(report *domain.OperationReport, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(report, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes the report in the requested format
func (f *ResultFormatterImpl) Write(report *domain.OperationReport, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatText, "":
		return f.writeText(report, writer)
	case domain.OutputFormatJSON:
		return WriteJSON(writer, report)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, report)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *ResultFormatterImpl) writeText(report *domain.OperationReport, w io.Writer) error {
	for _, r := range report.Results {
		if _, err := fmt.Fprintln(w, TextLine(r)); err != nil {
			return domain.NewOutputError("failed to write output", err)
		}
	}
	return nil
}

// TextLine renders one result as a human readable status line
func TextLine(r domain.OperationResult) string {
	var line string
	switch r.Operation {
	case domain.OperationCreate:
		switch {
		case r.Existed:
			line = fmt.Sprintf("File %s already exists.", r.Target)
		case r.DryRun:
			line = fmt.Sprintf("File %s would be created.", r.Target)
		default:
			line = fmt.Sprintf("File %s was created.", r.Target)
		}
	case domain.OperationArchive:
		line = fmt.Sprintf("%s %s to %s", verb(r.DryRun, "Archived", "Would archive"), r.Source, r.Target)
	case domain.OperationBackup:
		line = fmt.Sprintf("%s %s to %s", verb(r.DryRun, "Backed up", "Would back up"), r.Source, r.Target)
		if r.Bytes > 0 {
			line += fmt.Sprintf(" (%d bytes)", r.Bytes)
		}
	case domain.OperationTouch:
		line = fmt.Sprintf("%s %s to %s", verb(r.DryRun, "Renamed", "Would rename"), r.Source, r.Target)
	default:
		return r.Target
	}

	if r.DryRun && len(r.Command) > 0 {
		line += fmt.Sprintf(" (%s)", strings.Join(r.Command, " "))
	}
	return line
}

func verb(dryRun bool, done, planned string) string {
	if dryRun {
		return planned
	}
	return done
}

// WriteJSON writes indented JSON for the given value to the writer.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

// WriteYAML writes YAML for the given value to the writer.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}
