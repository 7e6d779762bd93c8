package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
	"github.com/secmon-lab/vaxchart/pkg/repository"
	"github.com/secmon-lab/vaxchart/pkg/service/chart"
	"github.com/urfave/cli/v3"
)

const DefaultOutputPath = "chart.html"

// Output holds the report destination and the scripts the page references
type Output struct {
	Path        string
	ChartScript string
	MainScript  string
}

// Flags returns CLI flags for Output configuration
func (x *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output HTML file",
			Category:    "Output",
			Value:       DefaultOutputPath,
			Sources:     cli.EnvVars("VAXCHART_OUTPUT"),
			Destination: &x.Path,
		},
		&cli.StringFlag{
			Name:        "chart-script",
			Usage:       "Relative path of the charting library script",
			Category:    "Output",
			Value:       chart.DefaultChartScript,
			Sources:     cli.EnvVars("VAXCHART_CHART_SCRIPT"),
			Destination: &x.ChartScript,
		},
		&cli.StringFlag{
			Name:        "main-script",
			Usage:       "Relative path of the script that draws the chart",
			Category:    "Output",
			Value:       chart.DefaultMainScript,
			Sources:     cli.EnvVars("VAXCHART_MAIN_SCRIPT"),
			Destination: &x.MainScript,
		},
	}
}

// Validate validates the output configuration
func (x *Output) Validate() error {
	if x.Path == "" {
		return goerr.New("output path is required", goerr.T(model.TagInvalidConfig))
	}
	if x.ChartScript == "" || x.MainScript == "" {
		return goerr.New("script paths are required",
			goerr.T(model.TagInvalidConfig),
			goerr.V("chart_script", x.ChartScript),
			goerr.V("main_script", x.MainScript))
	}
	return nil
}

// Configure creates the chart renderer and the file output
func (x *Output) Configure() (*chart.Renderer, interfaces.Output, error) {
	if err := x.Validate(); err != nil {
		return nil, nil, err
	}

	renderer, err := chart.New(
		chart.WithChartScript(x.ChartScript),
		chart.WithMainScript(x.MainScript),
	)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create chart renderer")
	}

	return renderer, repository.NewFileOutput(x.Path), nil
}

// LogValue returns structured log value
func (x Output) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.Path),
		slog.String("chart_script", x.ChartScript),
		slog.String("main_script", x.MainScript),
	)
}
