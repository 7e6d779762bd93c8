package repository_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vaxchart/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
	"github.com/secmon-lab/vaxchart/pkg/repository"
)

const mortalityJSON = `{
  "modified": "2021-03-01T00:00:00+01:00",
  "data": [
    {"datum": "2021-01-27", "vek": 83, "pohlavi": "Z", "kraj_nuts_kod": "CZ010"},
    {"datum": "2021-01-28", "vek": 64, "pohlavi": "M", "kraj_nuts_kod": "CZ020"}
  ]
}`

const vaccinationJSON = `{
  "data": [
    {"datum": "2021-01-27", "vekova_skupina": "80+", "prvnich_davek": 120, "druhych_davek": 0},
    {"datum": "2021-01-27", "vekova_skupina": "18-24", "prvnich_davek": 3, "druhych_davek": 1},
    {"datum": "2021-01-28", "vekova_skupina": "80+", "prvnich_davek": 200, "druhych_davek": 15}
  ]
}`

func ptr[T any](v T) *T {
	return &v
}

func testDataSource(t *testing.T, newSource func(t *testing.T) interfaces.DataSource) {
	t.Run("Mortality", func(t *testing.T) {
		src := newSource(t)

		entries, err := src.Mortality(context.Background())
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 2)
		gt.Equal(t, entries[0].Date, "2021-01-27")
		gt.Equal(t, *entries[0].Age, 83)
		gt.Equal(t, *entries[0].Sex, "Z")
		gt.Equal(t, *entries[1].Age, 64)
	})

	t.Run("Vaccination", func(t *testing.T) {
		src := newSource(t)

		entries, err := src.Vaccination(context.Background())
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 3)
		gt.Equal(t, *entries[0].AgeGroup, "80+")
		gt.Equal(t, *entries[0].FirstDoses, 120)
		gt.Equal(t, *entries[0].SecondDoses, 0)
		gt.Equal(t, entries[2].Date, "2021-01-28")
	})
}

func TestMemory(t *testing.T) {
	testDataSource(t, func(t *testing.T) interfaces.DataSource {
		return repository.NewMemory(
			[]model.RawMortality{
				{Date: "2021-01-27", Age: ptr(83), Sex: ptr("Z")},
				{Date: "2021-01-28", Age: ptr(64), Sex: ptr("M")},
			},
			[]model.RawVaccination{
				{Date: "2021-01-27", AgeGroup: ptr("80+"), FirstDoses: ptr(120), SecondDoses: ptr(0)},
				{Date: "2021-01-27", AgeGroup: ptr("18-24"), FirstDoses: ptr(3), SecondDoses: ptr(1)},
				{Date: "2021-01-28", AgeGroup: ptr("80+"), FirstDoses: ptr(200), SecondDoses: ptr(15)},
			},
		)
	})
}

func TestFile(t *testing.T) {
	testDataSource(t, func(t *testing.T) interfaces.DataSource {
		dir := t.TempDir()
		mortality := filepath.Join(dir, "umrti.json")
		vaccination := filepath.Join(dir, "ockovani.json")
		gt.NoError(t, os.WriteFile(mortality, []byte(mortalityJSON), 0o644))
		gt.NoError(t, os.WriteFile(vaccination, []byte(vaccinationJSON), 0o644))
		return repository.NewFile(mortality, vaccination)
	})
}

func TestFile_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		src := repository.NewFile(filepath.Join(t.TempDir(), "missing.json"), "")
		_, err := src.Mortality(ctx)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.TagInputNotFound)).True()
		gt.S(t, err.Error()).Contains("input file not found")
	})

	t.Run("empty path", func(t *testing.T) {
		src := repository.NewFile("", "")
		_, err := src.Vaccination(ctx)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.TagInputNotFound)).True()
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"data": [`), 0o644))

		_, err := repository.NewFile(path, "").Mortality(ctx)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.TagParse)).True()
	})

	t.Run("missing data key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "other.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"items": []}`), 0o644))

		_, err := repository.NewFile("", path).Vaccination(ctx)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.TagParse)).True()
	})
}

func TestFileOutput(t *testing.T) {
	ctx := context.Background()

	t.Run("writes content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.html")
		out := repository.NewFileOutput(path)

		err := out.Write(ctx, func(w io.Writer) error {
			_, err := io.WriteString(w, "<html></html>")
			return err
		})
		gt.NoError(t, err)

		data, err := os.ReadFile(path)
		gt.NoError(t, err)
		gt.Equal(t, string(data), "<html></html>")

		entries, err := os.ReadDir(filepath.Dir(path))
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 1)
	})

	t.Run("failed render keeps previous file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.html")
		gt.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

		err := repository.NewFileOutput(path).Write(ctx, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return goerr.New("render failed")
		})
		gt.Error(t, err)

		data, err := os.ReadFile(path)
		gt.NoError(t, err)
		gt.Equal(t, string(data), "previous")

		entries, err := os.ReadDir(filepath.Dir(path))
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 1)
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no", "such", "dir", "chart.html")
		err := repository.NewFileOutput(path).Write(ctx, func(w io.Writer) error {
			return nil
		})
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.TagOutputWrite)).True()
	})
}

func TestMemoryOutput(t *testing.T) {
	mem := repository.NewMemory(nil, nil)

	_, written := mem.Output()
	gt.False(t, written)

	err := mem.Write(context.Background(), func(w io.Writer) error {
		return goerr.New("render failed")
	})
	gt.Error(t, err)
	_, written = mem.Output()
	gt.False(t, written)

	gt.NoError(t, mem.Write(context.Background(), func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	}))
	data, written := mem.Output()
	gt.True(t, written)
	gt.Equal(t, string(data), "ok")
}
