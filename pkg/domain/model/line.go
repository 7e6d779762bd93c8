package model

import (
	"log/slog"
	"maps"

	"github.com/secmon-lab/vaxchart/pkg/domain/types"
)

// jabsBorderDash is the dash pattern of cumulative dose lines
var jabsBorderDash = []int{10, 10}

// Line is one computed time series destined for one chart trace.
// The concrete type is either *DeathsLine or *JabsLine.
type Line interface {
	Kind() types.LineKind
	Label() string
	Value(date types.Date) (float64, bool)
	Values() map[types.Date]float64
	Render(axis types.DateAxis) ChartDataset
}

// LineOption configures display attributes shared by all lines
type LineOption func(*lineBase)

// WithColor sets the line color
func WithColor(color string) LineOption {
	return func(b *lineBase) {
		b.color = color
	}
}

// WithEnabled sets whether the line is visible when the chart opens
func WithEnabled(enabled bool) LineOption {
	return func(b *lineBase) {
		b.enabled = enabled
	}
}

// WithStyle sets the line style
func WithStyle(style types.LineStyle) LineOption {
	return func(b *lineBase) {
		b.style = style
	}
}

type lineBase struct {
	label   string
	color   string
	enabled bool
	style   types.LineStyle
	values  map[types.Date]float64
}

func newLineBase(label string, opts []LineOption) lineBase {
	b := lineBase{
		label:   label,
		enabled: true,
		style:   types.LineStyleSolid,
		values:  make(map[types.Date]float64),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Label returns the legend label
func (b *lineBase) Label() string {
	return b.label
}

// Value returns the computed value of a date
func (b *lineBase) Value(date types.Date) (float64, bool) {
	v, ok := b.values[date]
	return v, ok
}

// Values returns a copy of the computed values
func (b *lineBase) Values() map[types.Date]float64 {
	return maps.Clone(b.values)
}

func (b *lineBase) render(axis types.DateAxis, axisID types.AxisID) ChartDataset {
	data := make([]float64, len(axis))
	for i, d := range axis {
		data[i] = b.values[d]
	}

	return ChartDataset{
		Data:        data,
		BorderColor: b.color,
		Fill:        false,
		Label:       b.label,
		Hidden:      !b.enabled,
		YAxisID:     axisID.String(),
		ShowLine:    b.style != types.LineStyleDotted,
	}
}

// DeathsLine is a trailing rolling average of the daily count of matching
// mortality records.
type DeathsLine struct {
	lineBase
	days   int
	filter Predicate[MortalityRecord]
}

// NewDeathsLine creates a rolling average line over a window of days.
// A window below 1 is treated as 1, i.e. the raw daily count. A nil filter
// accepts every record.
func NewDeathsLine(label string, days int, filter Predicate[MortalityRecord], opts ...LineOption) *DeathsLine {
	if days < 1 {
		days = 1
	}
	if filter == nil {
		filter = AcceptAll[MortalityRecord]{}
	}
	return &DeathsLine{
		lineBase: newLineBase(label, opts),
		days:     days,
		filter:   filter,
	}
}

// Kind returns LineKindDeaths
func (l *DeathsLine) Kind() types.LineKind {
	return types.LineKindDeaths
}

// Days returns the averaging window
func (l *DeathsLine) Days() int {
	return l.days
}

// Compute fills one value per axis date that has mortality records. The value
// is the sum of matching counts over the window divided by the full window
// length; days missing from data count as zero. Axis dates without records
// get no value.
func (l *DeathsLine) Compute(axis types.DateAxis, data MortalityBuckets) {
	l.values = make(map[types.Date]float64)
	for _, day := range axis {
		if !data.Has(day) {
			continue
		}

		total := 0
		for k := 0; k < l.days; k++ {
			total += countMatching(data.Get(day.AddDays(-k)), l.filter)
		}
		l.values[day] = float64(total) / float64(l.days)
	}
}

// Render returns the chart dataset aligned to axis
func (l *DeathsLine) Render(axis types.DateAxis) ChartDataset {
	return l.render(axis, types.AxisDeaths)
}

// LogValue returns structured log value
func (l *DeathsLine) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", l.Kind().String()),
		slog.String("label", l.label),
		slog.Int("days", l.days),
		slog.Bool("enabled", l.enabled),
	)
}

// JabsLine is the running total of first doses given to matching age groups
type JabsLine struct {
	lineBase
	filter Predicate[VaccinationRecord]
}

// NewJabsLine creates a cumulative first dose line. A nil filter accepts
// every record.
func NewJabsLine(label string, filter Predicate[VaccinationRecord], opts ...LineOption) *JabsLine {
	if filter == nil {
		filter = AcceptAll[VaccinationRecord]{}
	}
	return &JabsLine{
		lineBase: newLineBase(label, opts),
		filter:   filter,
	}
}

// Kind returns LineKindJabs
func (l *JabsLine) Kind() types.LineKind {
	return types.LineKindJabs
}

// Compute fills one value per axis date with the running total of first
// doses up to and including that date.
func (l *JabsLine) Compute(axis types.DateAxis, data VaccinationBuckets) {
	l.values = make(map[types.Date]float64)
	total := 0
	for _, day := range axis {
		for _, r := range data.Get(day) {
			if l.filter.Match(r) {
				total += r.FirstDoses
			}
		}
		l.values[day] = float64(total)
	}
}

// Render returns the chart dataset aligned to axis
func (l *JabsLine) Render(axis types.DateAxis) ChartDataset {
	ds := l.render(axis, types.AxisJabs)
	ds.BorderDash = append([]int(nil), jabsBorderDash...)
	return ds
}

// LogValue returns structured log value
func (l *JabsLine) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", l.Kind().String()),
		slog.String("label", l.label),
		slog.Bool("enabled", l.enabled),
	)
}

func countMatching[R any](records []R, filter Predicate[R]) int {
	n := 0
	for _, r := range records {
		if filter.Match(r) {
			n++
		}
	}
	return n
}
