package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
	"github.com/secmon-lab/vaxchart/pkg/domain/types"
)

// Report loads both datasets, computes every configured line and renders the
// chart page. A Report is single use: Load runs once.
type Report struct {
	source   interfaces.DataSource
	renderer interfaces.ChartRenderer
	lines    []model.Line
	cutoff   types.Date

	loaded bool
	axis   types.DateAxis
}

// ReportOption configures a Report
type ReportOption func(*Report)

// WithMortalityCutoff overrides the last excluded mortality date
func WithMortalityCutoff(cutoff types.Date) ReportOption {
	return func(r *Report) {
		r.cutoff = cutoff
	}
}

// NewReport creates a new Report use case. Line order is kept in the output.
func NewReport(source interfaces.DataSource, renderer interfaces.ChartRenderer, lines []model.Line, opts ...ReportOption) *Report {
	r := &Report{
		source:   source,
		renderer: renderer,
		lines:    lines,
		cutoff:   model.MortalityCutoff,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads and parses both datasets, buckets them by date, builds the date
// axis and computes every line. Any read or parse failure aborts the load.
func (r *Report) Load(ctx context.Context) error {
	if r.loaded {
		return goerr.Wrap(model.ErrAlreadyLoaded, "cannot load report twice")
	}
	logger := ctxlog.From(ctx)

	mortalityRecords, err := r.loadMortality(ctx)
	if err != nil {
		return err
	}
	vaccinationRecords, err := r.loadVaccination(ctx)
	if err != nil {
		return err
	}

	mortality, dropped := model.NewMortalityBuckets(mortalityRecords, r.cutoff)
	vaccination := model.NewVaccinationBuckets(vaccinationRecords)
	axis := types.NewDateAxis(mortality.Dates(), vaccination.Dates())

	logger.Debug("Datasets bucketed",
		"mortality_records", len(mortalityRecords),
		"mortality_dropped", dropped,
		"mortality_cutoff", r.cutoff.String(),
		"vaccination_records", len(vaccinationRecords),
	)

	for _, line := range r.lines {
		switch l := line.(type) {
		case *model.DeathsLine:
			l.Compute(axis, mortality)
		case *model.JabsLine:
			l.Compute(axis, vaccination)
		default:
			return goerr.New("unsupported line type",
				goerr.V("label", line.Label()),
				goerr.V("kind", line.Kind()))
		}
		logger.Debug("Line computed", slog.Any("line", line))
	}

	r.axis = axis
	r.loaded = true

	attrs := []any{"days", len(axis), "lines", len(r.lines)}
	if len(axis) > 0 {
		attrs = append(attrs, "first", axis.First().String(), "last", axis.Last().String())
	}
	logger.Info("Report loaded", attrs...)
	return nil
}

// loadMortality reads and parses the mortality dataset. The first invalid
// record aborts.
func (r *Report) loadMortality(ctx context.Context) ([]model.MortalityRecord, error) {
	entries, err := r.source.Mortality(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read mortality dataset")
	}

	records := make([]model.MortalityRecord, 0, len(entries))
	for i, raw := range entries {
		rec, err := model.ParseMortality(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse mortality record",
				goerr.V("index", i))
		}
		records = append(records, rec)
	}
	return records, nil
}

// loadVaccination reads and parses the vaccination dataset. The first invalid
// record aborts.
func (r *Report) loadVaccination(ctx context.Context) ([]model.VaccinationRecord, error) {
	entries, err := r.source.Vaccination(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read vaccination dataset")
	}

	records := make([]model.VaccinationRecord, 0, len(entries))
	for i, raw := range entries {
		rec, err := model.ParseVaccination(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse vaccination record",
				goerr.V("index", i))
		}
		records = append(records, rec)
	}
	return records, nil
}

// Axis returns the date axis computed by Load
func (r *Report) Axis() types.DateAxis {
	return r.axis
}

// Lines returns the configured lines
func (r *Report) Lines() []model.Line {
	return r.lines
}

// ChartData returns the serializable chart data
func (r *Report) ChartData() (*model.ChartData, error) {
	if !r.loaded {
		return nil, goerr.Wrap(model.ErrNotLoaded, "cannot build chart data")
	}
	return model.NewChartData(r.axis, r.lines), nil
}

// Render writes the chart page to w
func (r *Report) Render(ctx context.Context, w io.Writer) error {
	data, err := r.ChartData()
	if err != nil {
		return err
	}

	if err := r.renderer.Render(w, data); err != nil {
		return goerr.Wrap(err, "failed to render chart")
	}
	return nil
}

// Generate loads the report and writes it to out. Nothing is written when
// loading or rendering fails.
func (r *Report) Generate(ctx context.Context, out interfaces.Output) error {
	if err := r.Load(ctx); err != nil {
		return err
	}

	if err := out.Write(ctx, func(w io.Writer) error {
		return r.Render(ctx, w)
	}); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}
