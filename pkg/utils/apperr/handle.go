package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxchart/pkg/domain/model"
)

// Kind returns the name of the first report error tag found on err, or
// "internal" when err carries none of them.
func Kind(err error) string {
	switch {
	case goerr.HasTag(err, model.TagInputNotFound):
		return "input_not_found"
	case goerr.HasTag(err, model.TagParse):
		return "parse_error"
	case goerr.HasTag(err, model.TagOutputWrite):
		return "output_write_error"
	case goerr.HasTag(err, model.TagInvalidConfig):
		return "invalid_config"
	default:
		return "internal"
	}
}

func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error", "kind", Kind(err), "error", err)
}
