package model

import "github.com/secmon-lab/vaxchart/pkg/domain/types"

// ChartDataset is the serializable form of one line as consumed by the chart
type ChartDataset struct {
	Data        []float64 `json:"data"`
	BorderColor string    `json:"borderColor"`
	Fill        bool      `json:"fill"`
	Label       string    `json:"label"`
	Hidden      bool      `json:"hidden"`
	YAxisID     string    `json:"yAxisID"`
	BorderDash  []int     `json:"borderDash,omitempty"`
	ShowLine    bool      `json:"showLine"`
}

// ChartData is the complete data object handed to the chart: one label per
// axis date and one dataset per line, in line order
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// NewChartData renders every line against the axis, keeping line order
func NewChartData(axis types.DateAxis, lines []Line) *ChartData {
	data := &ChartData{
		Labels:   axis.Labels(),
		Datasets: make([]ChartDataset, 0, len(lines)),
	}
	for _, line := range lines {
		data.Datasets = append(data.Datasets, line.Render(axis))
	}
	return data
}
