package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ludo-technologies/datestamp/domain"
	svc "github.com/ludo-technologies/datestamp/service"
	"go.uber.org/zap"
)

// TouchUseCase replaces the stamps of existing files with a fresh one and
// sets their modification time to the same instant
type TouchUseCase struct {
	fs        domain.FileSystem
	expander  domain.PathExpander
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	logger    *zap.Logger
	clock     Clock
}

// Execute plans every rename first and only touches the filesystem once all
// of them are known to be safe
func (uc *TouchUseCase) Execute(ctx context.Context, req domain.TouchRequest) (*domain.OperationReport, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewInvalidInputError("missing path to touch", nil)
	}
	for _, p := range req.Paths {
		if err := requireName(p, "path to touch"); err != nil {
			return nil, err
		}
	}

	paths, err := uc.expander.Expand(req.Paths)
	if err != nil {
		return nil, err
	}

	stamper := newStamper(uc.clock, req.Stamp)
	results, err := uc.plan(stamper.Stamp(), paths, stamper.Restamp, req.DryRun)
	if err != nil {
		return nil, err
	}

	if !req.DryRun {
		for _, r := range results {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if r.Target != r.Source {
				if err := uc.fs.Rename(r.Source, r.Target); err != nil {
					return nil, err
				}
			}
			if err := uc.fs.Touch(r.Target, stamper.Now()); err != nil {
				return nil, err
			}
		}
	}

	report := newReport(stamper, results...)
	if err := writeReport(uc.output, uc.formatter, req.Output, report); err != nil {
		return report, err
	}
	return report, nil
}

// plan computes the target of every path and rejects collisions with
// existing files or with each other
func (uc *TouchUseCase) plan(stampText string, paths []string, restamp func(string) (string, bool), dryRun bool) ([]domain.OperationResult, error) {
	results := make([]domain.OperationResult, 0, len(paths))
	claimed := make(map[string]string, len(paths))

	for _, path := range paths {
		path = filepath.Clean(path)
		if _, err := uc.fs.Stat(path); err != nil {
			return nil, err
		}

		name, restamped := restamp(path)
		target := filepath.Join(filepath.Dir(path), name)

		if prev, ok := claimed[target]; ok {
			return nil, domain.NewIOError(fmt.Sprintf("%s and %s would both be renamed to %s", prev, path, target), nil)
		}
		claimed[target] = path

		if target != path {
			if err := ensureAbsent(uc.fs, target); err != nil {
				return nil, err
			}
		}

		uc.logger.Debug("touch", zap.String("source", path), zap.String("target", target), zap.Bool("restamped", restamped))

		results = append(results, domain.OperationResult{
			Operation: domain.OperationTouch,
			Source:    path,
			Target:    target,
			Stamp:     stampText,
			Restamped: restamped,
			DryRun:    dryRun,
		})
	}
	return results, nil
}

// TouchUseCaseBuilder provides a fluent builder for TouchUseCase
type TouchUseCaseBuilder struct {
	fs        domain.FileSystem
	expander  domain.PathExpander
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	logger    *zap.Logger
	clock     Clock
}

func NewTouchUseCaseBuilder() *TouchUseCaseBuilder { return &TouchUseCaseBuilder{} }

func (b *TouchUseCaseBuilder) WithFileSystem(fs domain.FileSystem) *TouchUseCaseBuilder {
	b.fs = fs
	return b
}
func (b *TouchUseCaseBuilder) WithPathExpander(e domain.PathExpander) *TouchUseCaseBuilder {
	b.expander = e
	return b
}
func (b *TouchUseCaseBuilder) WithFormatter(f domain.ResultFormatter) *TouchUseCaseBuilder {
	b.formatter = f
	return b
}
func (b *TouchUseCaseBuilder) WithReportWriter(w domain.ReportWriter) *TouchUseCaseBuilder {
	b.output = w
	return b
}
func (b *TouchUseCaseBuilder) WithLogger(l *zap.Logger) *TouchUseCaseBuilder {
	b.logger = l
	return b
}
func (b *TouchUseCaseBuilder) WithClock(c Clock) *TouchUseCaseBuilder {
	b.clock = c
	return b
}

func (b *TouchUseCaseBuilder) Build() (*TouchUseCase, error) {
	if b.fs == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := &TouchUseCase{fs: b.fs, expander: b.expander, formatter: b.formatter, output: b.output, logger: b.logger, clock: b.clock}
	if uc.expander == nil {
		uc.expander = svc.NewGlobExpander()
	}
	if uc.formatter == nil {
		uc.formatter = svc.NewResultFormatter()
	}
	if uc.output == nil {
		uc.output = svc.NewFileOutputWriter(nil)
	}
	if uc.logger == nil {
		uc.logger = zap.NewNop()
	}
	return uc, nil
}
