package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ludo-technologies/datestamp/domain"
	svc "github.com/ludo-technologies/datestamp/service"
	"go.uber.org/zap"
)

// CreateUseCase creates empty files with stamped names
type CreateUseCase struct {
	fs        domain.FileSystem
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	logger    *zap.Logger
	clock     Clock
}

// Execute creates the stamped file unless it already exists. An existing
// file is reported, never truncated.
func (uc *CreateUseCase) Execute(ctx context.Context, req domain.CreateRequest) (*domain.OperationReport, error) {
	if err := requireName(req.Name, "file name"); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := resolveTargetDir(uc.fs, req.Name, req.OutputDir)
	if err != nil {
		return nil, err
	}

	stamper := newStamper(uc.clock, req.Stamp)
	target := filepath.Join(dir, stamper.Name(req.Name))
	result := domain.OperationResult{
		Operation: domain.OperationCreate,
		Target:    target,
		Stamp:     stamper.Stamp(),
		DryRun:    req.DryRun,
	}

	uc.logger.Debug("create", zap.String("target", target), zap.Bool("dry_run", req.DryRun))

	if req.DryRun {
		exists, err := uc.fs.Exists(target)
		if err != nil {
			return nil, err
		}
		result.Existed = exists
	} else {
		created, err := uc.fs.CreateEmpty(target)
		if err != nil {
			return nil, err
		}
		result.Created = created
		result.Existed = !created
	}

	report := newReport(stamper, result)
	if err := writeReport(uc.output, uc.formatter, req.Output, report); err != nil {
		return report, err
	}
	return report, nil
}

// CreateUseCaseBuilder provides a fluent builder for CreateUseCase
type CreateUseCaseBuilder struct {
	fs        domain.FileSystem
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	logger    *zap.Logger
	clock     Clock
}

func NewCreateUseCaseBuilder() *CreateUseCaseBuilder { return &CreateUseCaseBuilder{} }

func (b *CreateUseCaseBuilder) WithFileSystem(fs domain.FileSystem) *CreateUseCaseBuilder {
	b.fs = fs
	return b
}
func (b *CreateUseCaseBuilder) WithFormatter(f domain.ResultFormatter) *CreateUseCaseBuilder {
	b.formatter = f
	return b
}
func (b *CreateUseCaseBuilder) WithReportWriter(w domain.ReportWriter) *CreateUseCaseBuilder {
	b.output = w
	return b
}
func (b *CreateUseCaseBuilder) WithLogger(l *zap.Logger) *CreateUseCaseBuilder {
	b.logger = l
	return b
}
func (b *CreateUseCaseBuilder) WithClock(c Clock) *CreateUseCaseBuilder {
	b.clock = c
	return b
}

func (b *CreateUseCaseBuilder) Build() (*CreateUseCase, error) {
	if b.fs == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := &CreateUseCase{fs: b.fs, formatter: b.formatter, output: b.output, logger: b.logger, clock: b.clock}
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
