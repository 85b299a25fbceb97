package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ludo-technologies/datestamp/domain"
	svc "github.com/ludo-technologies/datestamp/service"
	"go.uber.org/zap"
)

// BackupUseCase copies files and directory trees to stamped names without
// invoking external tools
type BackupUseCase struct {
	fs        domain.FileSystem
	copier    domain.Copier
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	logger    *zap.Logger
	clock     Clock
}

// Execute copies req.Path next to itself (or into req.OutputDir)
func (uc *BackupUseCase) Execute(ctx context.Context, req domain.BackupRequest) (*domain.OperationReport, error) {
	if err := requirePath(req.Path, "path to back up"); err != nil {
		return nil, err
	}

	src, err := absSource(req.Path)
	if err != nil {
		return nil, err
	}
	info, err := uc.fs.Stat(src)
	if err != nil {
		return nil, err
	}
	dir, err := resolveTargetDir(uc.fs, src, req.OutputDir)
	if err != nil {
		return nil, err
	}

	stamper := newStamper(uc.clock, req.Stamp)
	result := domain.OperationResult{
		Operation: domain.OperationBackup,
		Source:    req.Path,
		Target:    filepath.Join(dir, stamper.Name(src)),
		Stamp:     stamper.Stamp(),
		IsDir:     info.IsDir(),
		DryRun:    req.DryRun,
	}
	if info.IsDir() {
		if err := requireOutside(src, result.Target); err != nil {
			return nil, err
		}
	}
	if err := ensureAbsent(uc.fs, result.Target); err != nil {
		return nil, err
	}

	uc.logger.Debug("backup",
		zap.String("source", req.Path),
		zap.String("target", result.Target),
		zap.Strings("exclude", req.Exclude),
		zap.Bool("dry_run", req.DryRun))

	if !req.DryRun {
		var exclude []string
		if info.IsDir() {
			exclude = req.Exclude
		}
		result.Bytes, err = uc.copier.Copy(ctx, src, result.Target, exclude)
		if err != nil {
			return nil, err
		}
	}

	report := newReport(stamper, result)
	if err := writeReport(uc.output, uc.formatter, req.Output, report); err != nil {
		return report, err
	}
	return report, nil
}

// BackupUseCaseBuilder provides a fluent builder for BackupUseCase
type BackupUseCaseBuilder struct {
	fs        domain.FileSystem
	copier    domain.Copier
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	logger    *zap.Logger
	clock     Clock
}

func NewBackupUseCaseBuilder() *BackupUseCaseBuilder { return &BackupUseCaseBuilder{} }

func (b *BackupUseCaseBuilder) WithFileSystem(fs domain.FileSystem) *BackupUseCaseBuilder {
	b.fs = fs
	return b
}
func (b *BackupUseCaseBuilder) WithCopier(c domain.Copier) *BackupUseCaseBuilder {
	b.copier = c
	return b
}
func (b *BackupUseCaseBuilder) WithFormatter(f domain.ResultFormatter) *BackupUseCaseBuilder {
	b.formatter = f
	return b
}
func (b *BackupUseCaseBuilder) WithReportWriter(w domain.ReportWriter) *BackupUseCaseBuilder {
	b.output = w
	return b
}
func (b *BackupUseCaseBuilder) WithLogger(l *zap.Logger) *BackupUseCaseBuilder {
	b.logger = l
	return b
}
func (b *BackupUseCaseBuilder) WithClock(c Clock) *BackupUseCaseBuilder {
	b.clock = c
	return b
}

func (b *BackupUseCaseBuilder) Build() (*BackupUseCase, error) {
	if b.fs == nil || b.copier == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := &BackupUseCase{fs: b.fs, copier: b.copier, formatter: b.formatter, output: b.output, logger: b.logger, clock: b.clock}
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
