package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Lines holds the optional line configuration file
type Lines struct {
	Path string
}

// Flags returns CLI flags for Lines configuration
func (x *Lines) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "lines",
			Aliases:     []string{"l"},
			Usage:       "YAML file defining chart lines (built-in set if omitted)",
			Category:    "Input",
			Sources:     cli.EnvVars("VAXCHART_LINES"),
			Destination: &x.Path,
		},
	}
}

// Configure builds the configured lines in order. Without a file the
// built-in default set is used.
func (x *Lines) Configure() ([]model.Line, error) {
	if x.Path == "" {
		return model.DefaultLines(), nil
	}

	cfg, err := LoadLinesFromFile(x.Path)
	if err != nil {
		return nil, err
	}

	lines, err := cfg.Build()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build lines", goerr.V("path", x.Path))
	}
	return lines, nil
}

// LogValue returns structured log value
func (x Lines) LogValue() slog.Value {
	if x.Path == "" {
		return slog.StringValue("(default)")
	}
	return slog.StringValue(x.Path)
}

// LoadLinesFromFile loads line definitions from YAML file
func LoadLinesFromFile(path string) (*model.LinesConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required",
			goerr.T(model.TagInvalidConfig))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.T(model.TagInputNotFound),
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var config model.LinesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.T(model.TagInvalidConfig),
			goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &config, nil
}
