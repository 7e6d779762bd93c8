package interfaces

import (
	"context"
	"io"

	"github.com/secmon-lab/vaxchart/pkg/domain/model"
)

// DataSource provides the raw entries of both input datasets
type DataSource interface {
	// Mortality returns every entry of the mortality dataset
	Mortality(ctx context.Context) ([]model.RawMortality, error)

	// Vaccination returns every entry of the vaccination dataset
	Vaccination(ctx context.Context) ([]model.RawVaccination, error)
}

// Output is the destination of a rendered report. The content written by fn
// becomes visible only if fn returns nil.
type Output interface {
	Write(ctx context.Context, fn func(w io.Writer) error) error
}

// ChartRenderer turns chart data into a document
type ChartRenderer interface {
	Render(w io.Writer, data *model.ChartData) error
}
