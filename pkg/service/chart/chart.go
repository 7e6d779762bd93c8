package chart

import (
	"embed"
	"html/template"
	"io"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
)

// Error tags for categorization
var (
	ErrTagTemplateFailure = goerr.NewTag("template_failure")
	ErrTagEncodeFailure   = goerr.NewTag("encode_failure")
)

const (
	DefaultChartScript = "Chart.bundle.min.js"
	DefaultMainScript  = "main.js"
)

//go:embed templates/chart.html
var templateFS embed.FS

// Renderer embeds chart data into the static HTML page
type Renderer struct {
	chartScript string
	mainScript  string
	tmpl        *template.Template
}

// Option configures a Renderer
type Option func(*Renderer)

// WithChartScript sets the relative path of the charting library script
func WithChartScript(src string) Option {
	return func(r *Renderer) {
		r.chartScript = src
	}
}

// WithMainScript sets the relative path of the script that draws the chart
func WithMainScript(src string) Option {
	return func(r *Renderer) {
		r.mainScript = src
	}
}

// pageData is the template input
type pageData struct {
	ChartScript string
	MainScript  string
	Data        template.JS
}

// New creates a Renderer
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		chartScript: DefaultChartScript,
		mainScript:  DefaultMainScript,
	}
	for _, opt := range opts {
		opt(r)
	}

	content, err := templateFS.ReadFile("templates/chart.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read chart template",
			goerr.T(ErrTagTemplateFailure))
	}

	tmpl, err := template.New("chart").Parse(string(content))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse chart template",
			goerr.T(ErrTagTemplateFailure))
	}
	r.tmpl = tmpl

	return r, nil
}

// Render writes the HTML page with data embedded as a script object.
// Datasets keep the order they have in data.
func (r *Renderer) Render(w io.Writer, data *model.ChartData) error {
	if data == nil {
		return goerr.New("chart data is nil", goerr.T(ErrTagEncodeFailure))
	}

	encoded, err := Encode(data)
	if err != nil {
		return err
	}

	page := pageData{
		ChartScript: r.chartScript,
		MainScript:  r.mainScript,
		Data:        template.JS(encoded),
	}
	if err := r.tmpl.Execute(w, page); err != nil {
		return goerr.Wrap(err, "failed to execute chart template",
			goerr.T(ErrTagTemplateFailure))
	}

	return nil
}

// Encode returns data as an indented JSON object literal. HTML special
// characters in labels are escaped so they cannot close the script element.
func Encode(data *model.ChartData) ([]byte, error) {
	labels := data.Labels
	if labels == nil {
		labels = []string{}
	}
	datasets := data.Datasets
	if datasets == nil {
		datasets = []model.ChartDataset{}
	}

	// MarshalIndent escapes <, > and & as \u003c, \u003e and \u0026
	encoded, err := json.MarshalIndent(model.ChartData{
		Labels:   labels,
		Datasets: datasets,
	}, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode chart data",
			goerr.T(ErrTagEncodeFailure))
	}
	return encoded, nil
}
