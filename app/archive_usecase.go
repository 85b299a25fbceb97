package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ludo-technologies/datestamp/domain"
	svc "github.com/ludo-technologies/datestamp/service"
	"go.uber.org/zap"
)

// ArchiveUseCase archives directories with tar and copies or compresses
// single files
type ArchiveUseCase struct {
	fs        domain.FileSystem
	archiver  domain.Archiver
	copier    domain.Copier
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	logger    *zap.Logger
	clock     Clock
}

// Execute archives req.Path to a stamped name.
//
//   - directory: tar archive named <stamp>_<dir>.tar[.ext]
//   - file without compression: plain copy
//   - file with compression: compressor output written to <stamped name><ext>
func (uc *ArchiveUseCase) Execute(ctx context.Context, req domain.ArchiveRequest) (*domain.OperationReport, error) {
	if err := requirePath(req.Path, "path to archive"); err != nil {
		return nil, err
	}
	if req.Compression != "" && !req.Compression.IsValid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unsupported compression: %s", req.Compression), nil)
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
	spec := req.Compression.Spec()
	result := domain.OperationResult{
		Operation: domain.OperationArchive,
		Source:    req.Path,
		Stamp:     stamper.Stamp(),
		IsDir:     info.IsDir(),
		DryRun:    req.DryRun,
	}

	switch {
	case info.IsDir():
		result.Target = filepath.Join(dir, stamper.WithExtension(filepath.Base(src), ".tar"+spec.Extension))
		result.Command = uc.archiver.DirectoryCommand(src, result.Target, req.Compression)
		if err := requireOutside(src, result.Target); err != nil {
			return nil, err
		}
	case req.Compression.Enabled():
		result.Target = filepath.Join(dir, stamper.Name(src)+spec.Extension)
		result.Command = uc.archiver.FileCommand(src, req.Compression)
	default:
		result.Target = filepath.Join(dir, stamper.Name(src))
	}

	if err := ensureAbsent(uc.fs, result.Target); err != nil {
		return nil, err
	}
	if !req.DryRun {
		if err := uc.archiver.CheckTools(info.IsDir(), req.Compression); err != nil {
			return nil, err
		}
	}

	uc.logger.Debug("archive",
		zap.String("source", req.Path),
		zap.String("target", result.Target),
		zap.Strings("command", result.Command),
		zap.Bool("dry_run", req.DryRun))

	if !req.DryRun {
		switch {
		case info.IsDir():
			err = uc.archiver.ArchiveDirectory(ctx, src, result.Target, req.Compression)
		case req.Compression.Enabled():
			err = uc.archiver.CompressFile(ctx, src, result.Target, req.Compression)
		default:
			result.Bytes, err = uc.copier.Copy(ctx, src, result.Target, nil)
		}
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

// ArchiveUseCaseBuilder provides a fluent builder for ArchiveUseCase
type ArchiveUseCaseBuilder struct {
	fs        domain.FileSystem
	archiver  domain.Archiver
	copier    domain.Copier
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	logger    *zap.Logger
	clock     Clock
}

func NewArchiveUseCaseBuilder() *ArchiveUseCaseBuilder { return &ArchiveUseCaseBuilder{} }

func (b *ArchiveUseCaseBuilder) WithFileSystem(fs domain.FileSystem) *ArchiveUseCaseBuilder {
	b.fs = fs
	return b
}
func (b *ArchiveUseCaseBuilder) WithArchiver(a domain.Archiver) *ArchiveUseCaseBuilder {
	b.archiver = a
	return b
}
func (b *ArchiveUseCaseBuilder) WithCopier(c domain.Copier) *ArchiveUseCaseBuilder {
	b.copier = c
	return b
}
func (b *ArchiveUseCaseBuilder) WithFormatter(f domain.ResultFormatter) *ArchiveUseCaseBuilder {
	b.formatter = f
	return b
}
func (b *ArchiveUseCaseBuilder) WithReportWriter(w domain.ReportWriter) *ArchiveUseCaseBuilder {
	b.output = w
	return b
}
func (b *ArchiveUseCaseBuilder) WithLogger(l *zap.Logger) *ArchiveUseCaseBuilder {
	b.logger = l
	return b
}
func (b *ArchiveUseCaseBuilder) WithClock(c Clock) *ArchiveUseCaseBuilder {
	b.clock = c
	return b
}

func (b *ArchiveUseCaseBuilder) Build() (*ArchiveUseCase, error) {
	if b.fs == nil || b.archiver == nil || b.copier == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := &ArchiveUseCase{
		fs:        b.fs,
		archiver:  b.archiver,
		copier:    b.copier,
		formatter: b.formatter,
		output:    b.output,
		logger:    b.logger,
		clock:     b.clock,
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
