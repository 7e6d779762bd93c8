package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/vaxchart/pkg/cli/config"
	"github.com/secmon-lab/vaxchart/pkg/usecase"
	"github.com/secmon-lab/vaxchart/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// renderCmd holds the flags shared by the root command and the render
// subcommand. Root flags are inherited by subcommands.
type renderCmd struct {
	input  config.Input
	lines  config.Lines
	output config.Output
}

func (x *renderCmd) Flags() []cli.Flag {
	return joinFlags(
		x.input.Flags(),
		x.lines.Flags(),
		x.output.Flags(),
	)
}

func (x *renderCmd) Command() *cli.Command {
	return &cli.Command{
		Name:   "render",
		Usage:  "Compute chart lines from both datasets and write the HTML report (default)",
		Action: x.Action,
	}
}

func (x *renderCmd) Action(ctx context.Context, c *cli.Command) error {
	if err := x.render(ctx); err != nil {
		apperr.Handle(ctx, err)
		return err
	}
	return nil
}

func (x *renderCmd) render(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	logger.Info("Rendering chart",
		slog.Any("input", x.input),
		slog.Any("lines", x.lines),
		slog.Any("output", x.output),
	)

	lines, err := x.lines.Configure()
	if err != nil {
		return err
	}

	renderer, out, err := x.output.Configure()
	if err != nil {
		return err
	}

	var report usecase.ReportUseCase = usecase.NewReport(x.input.Configure(), renderer, lines)
	if err := report.Generate(ctx, out); err != nil {
		return err
	}

	logger.Info("Chart written", slog.String("path", x.output.Path))
	return nil
}
