package config

import (
	"log/slog"

	"github.com/secmon-lab/vaxchart/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxchart/pkg/repository"
	"github.com/urfave/cli/v3"
)

const (
	DefaultMortalityPath   = "umrti.json"
	DefaultVaccinationPath = "ockovani.json"
)

// Input holds the dataset file locations
type Input struct {
	MortalityPath   string
	VaccinationPath string
}

// Flags returns CLI flags for Input configuration
func (x *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mortality",
			Aliases:     []string{"m"},
			Usage:       "Mortality dataset JSON file",
			Category:    "Input",
			Value:       DefaultMortalityPath,
			Sources:     cli.EnvVars("VAXCHART_MORTALITY"),
			Destination: &x.MortalityPath,
		},
		&cli.StringFlag{
			Name:        "vaccination",
			Usage:       "Vaccination dataset JSON file",
			Category:    "Input",
			Value:       DefaultVaccinationPath,
			Sources:     cli.EnvVars("VAXCHART_VACCINATION"),
			Destination: &x.VaccinationPath,
		},
	}
}

// Configure creates the file data source
func (x *Input) Configure() interfaces.DataSource {
	return repository.NewFile(x.MortalityPath, x.VaccinationPath)
}

// LogValue returns structured log value
func (x Input) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mortality", x.MortalityPath),
		slog.String("vaccination", x.VaccinationPath),
	)
}
