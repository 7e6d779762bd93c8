package repository

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
)

// FileOutput writes the report to a path. Content goes to a temporary file
// in the same directory and is renamed over the destination only after the
// whole report was written.
type FileOutput struct {
	path string
}

// NewFileOutput creates a file output
func NewFileOutput(path string) interfaces.Output {
	return &FileOutput{path: path}
}

// Write renders into the destination file
func (o *FileOutput) Write(ctx context.Context, fn func(w io.Writer) error) error {
	if o.path == "" {
		return goerr.New("output file path is required", goerr.T(model.TagOutputWrite))
	}

	dir := filepath.Dir(o.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(o.path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create output file",
			goerr.V("path", o.path),
			goerr.T(model.TagOutputWrite))
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err := fn(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write output file",
			goerr.V("path", o.path),
			goerr.T(model.TagOutputWrite))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close output file",
			goerr.V("path", o.path),
			goerr.T(model.TagOutputWrite))
	}
	// CreateTemp creates files with mode 0600
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return goerr.Wrap(err, "failed to set output file mode",
			goerr.V("path", o.path),
			goerr.T(model.TagOutputWrite))
	}
	if err := os.Rename(tmpPath, o.path); err != nil {
		return goerr.Wrap(err, "failed to move output file into place",
			goerr.V("path", o.path),
			goerr.T(model.TagOutputWrite))
	}
	committed = true

	ctxlog.From(ctx).Debug("Output file written", "path", o.path)
	return nil
}
