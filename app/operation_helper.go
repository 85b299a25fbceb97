package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/internal/stamp"
	"github.com/ludo-technologies/datestamp/internal/version"
)

// Clock returns the time stamps are computed from
type Clock func() time.Time

// newStamper reads the clock once so every name in one invocation carries
// the same stamp
func newStamper(clock Clock, opts domain.StampOptions) *stamp.Stamper {
	if clock == nil {
		clock = time.Now
	}
	return stamp.NewStamperAt(clock(), stamp.Options{
		Suffix:      opts.Suffix,
		IncludeTime: opts.IncludeTime,
	})
}

// requirePath rejects empty path arguments
func requirePath(path, what string) error {
	if strings.TrimSpace(path) == "" {
		return domain.NewInvalidInputError(fmt.Sprintf("missing %s", what), nil)
	}
	return nil
}

// requireName rejects names whose last segment is not a file name, such as
// "/", "." or "..", or a path ending in a separator
func requireName(name, what string) error {
	if err := requirePath(name, what); err != nil {
		return err
	}
	base := filepath.Base(name)
	if os.IsPathSeparator(name[len(name)-1]) || base == "." || base == ".." || base == string(filepath.Separator) {
		return domain.NewInvalidInputError(fmt.Sprintf("%s %q does not name a file", what, name), nil)
	}
	return nil
}

// absSource resolves path so that "." and ".." are named after the
// directory they refer to
func absSource(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", domain.NewInvalidInputError(fmt.Sprintf("cannot resolve %s", path), err)
	}
	return abs, nil
}

// within reports whether path is root itself or lies below it
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// requireOutside rejects a target placed inside the directory it is built
// from, which would copy or archive the output into itself
func requireOutside(src, target string) error {
	if within(src, target) {
		return domain.NewInvalidInputError(fmt.Sprintf("target %s is inside %s", target, src), nil)
	}
	return nil
}

// resolveTargetDir returns the directory outputs for src are written to:
// outputDir when set, otherwise the directory holding src.
func resolveTargetDir(fs domain.FileSystem, src, outputDir string) (string, error) {
	if outputDir == "" {
		return filepath.Dir(filepath.Clean(src)), nil
	}

	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return "", domain.NewInvalidInputError(fmt.Sprintf("cannot resolve %s", outputDir), err)
	}
	outputDir = abs

	info, err := fs.Stat(outputDir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", domain.NewInvalidInputError(fmt.Sprintf("output directory %s is not a directory", outputDir), nil)
	}
	return outputDir, nil
}

// ensureAbsent fails with an IO error when target already exists
func ensureAbsent(fs domain.FileSystem, target string) error {
	exists, err := fs.Exists(target)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewIOError(fmt.Sprintf("refusing to overwrite %s", target), nil)
	}
	return nil
}

// newReport wraps results with generation metadata
func newReport(s *stamp.Stamper, results ...domain.OperationResult) *domain.OperationReport {
	return &domain.OperationReport{
		Results:     results,
		GeneratedAt: s.Now().Format(time.RFC3339),
		Version:     version.Short(),
	}
}

// writeReport renders report to the request's writer or report file
func writeReport(output domain.ReportWriter, formatter domain.ResultFormatter, out domain.OutputOptions, report *domain.OperationReport) error {
	if out.Writer == nil && out.Path == "" {
		return nil
	}
	return output.Write(out.Writer, out.Path, out.Format, func(w io.Writer) error {
		return formatter.Write(report, out.Format, w)
	})
}
