package app

import (
	"path/filepath"

	"github.com/ludo-technologies/datestamp/domain"
	svc "github.com/ludo-technologies/datestamp/service"
)

// NameUseCase computes stamped names without touching the filesystem
type NameUseCase struct {
	formatter domain.ResultFormatter
	output    domain.ReportWriter
	clock     Clock
}

// NewNameUseCase creates a NameUseCase. Nil dependencies get defaults; a nil
// clock uses time.Now.
func NewNameUseCase(formatter domain.ResultFormatter, output domain.ReportWriter, clock Clock) *NameUseCase {
	if formatter == nil {
		formatter = svc.NewResultFormatter()
	}
	if output == nil {
		output = svc.NewFileOutputWriter(nil)
	}
	return &NameUseCase{formatter: formatter, output: output, clock: clock}
}

// Execute stamps each name. Directory components are kept; an empty name
// yields the bare stamp.
func (uc *NameUseCase) Execute(req domain.NameRequest) (*domain.OperationReport, error) {
	if len(req.Names) == 0 {
		return nil, domain.NewInvalidInputError("missing name", nil)
	}

	stamper := newStamper(uc.clock, req.Stamp)
	results := make([]domain.OperationResult, 0, len(req.Names))
	for _, name := range req.Names {
		stamped := stamper.Name(name)
		if name != "" {
			stamped = filepath.Join(filepath.Dir(name), stamped)
		}
		results = append(results, domain.OperationResult{
			Operation: domain.OperationName,
			Source:    name,
			Target:    stamped,
			Stamp:     stamper.Stamp(),
		})
	}

	report := newReport(stamper, results...)
	if err := writeReport(uc.output, uc.formatter, req.Output, report); err != nil {
		return report, err
	}
	return report, nil
}
