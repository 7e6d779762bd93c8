package repository

import (
	"context"
	"os"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
)

// dataset is the envelope of both published datasets
type dataset[T any] struct {
	Data []T `json:"data"`
}

// File implements DataSource over the two published JSON files
type File struct {
	mortalityPath   string
	vaccinationPath string
}

// NewFile creates a file data source
func NewFile(mortalityPath, vaccinationPath string) interfaces.DataSource {
	return &File{
		mortalityPath:   mortalityPath,
		vaccinationPath: vaccinationPath,
	}
}

// Mortality reads every entry of the mortality file
func (f *File) Mortality(ctx context.Context) ([]model.RawMortality, error) {
	return readDataset[model.RawMortality](ctx, f.mortalityPath)
}

// Vaccination reads every entry of the vaccination file
func (f *File) Vaccination(ctx context.Context) ([]model.RawVaccination, error) {
	return readDataset[model.RawVaccination](ctx, f.vaccinationPath)
}

func readDataset[T any](ctx context.Context, path string) ([]T, error) {
	if path == "" {
		return nil, goerr.New("input file path is required", goerr.T(model.TagInputNotFound))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "input file not found",
				goerr.V("path", path),
				goerr.T(model.TagInputNotFound))
		}
		return nil, goerr.Wrap(err, "failed to read input file",
			goerr.V("path", path),
			goerr.T(model.TagInputNotFound))
	}

	var ds dataset[T]
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, goerr.Wrap(err, "failed to parse input file as JSON",
			goerr.V("path", path),
			goerr.T(model.TagParse))
	}
	if ds.Data == nil {
		return nil, goerr.New("input file has no data list",
			goerr.V("path", path),
			goerr.T(model.TagParse))
	}

	ctxlog.From(ctx).Debug("Input file read",
		"path", path,
		"entries", len(ds.Data),
		"bytes", len(data),
	)

	return ds.Data, nil
}
