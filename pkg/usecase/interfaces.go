package usecase

import (
	"context"

	"github.com/secmon-lab/vaxchart/pkg/domain/interfaces"
)

// ReportUseCase defines the interface for one-shot report generation
type ReportUseCase interface {
	// Generate loads both datasets, computes every line and writes the page
	Generate(ctx context.Context, out interfaces.Output) error
}

var _ ReportUseCase = (*Report)(nil)
