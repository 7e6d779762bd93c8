package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stderr)
}

func run(ctx context.Context, args []string, logOutput io.Writer) error {
	if err := loadDotEnv(".env"); err != nil {
		printError(logOutput, err)
		return err
	}

	var (
		loggerCfg config.Logger
		render    renderCmd
		hasLogger bool
	)

	app := &cli.Command{
		Name:    "vaxchart",
		Usage:   "Render vaccination and mortality time series into an HTML chart",
		Version: "0.1.0",
		Flags:   joinFlags(loggerCfg.Flags(), render.Flags()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure(logOutput)
			if err != nil {
				return nil, err
			}
			logger = logger.With(slog.String("run_id", uuid.NewString()))

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			hasLogger = true
			return ctx, nil
		},
		Action: render.Action,
		Commands: []*cli.Command{
			render.Command(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		// Errors after logger setup are already logged by apperr.Handle
		if !hasLogger {
			printError(logOutput, err)
		}
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

// printError reports a failure that happened before a logger was available
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "vaxchart: %v\n", err)
}

// loadDotEnv exports variables from path unless they are already set. A
// missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
