package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Status checks which selected files would still be rewritten.
// It never writes.
func (o *operator) Status(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("checking status")

	dry := &operator{opts: o.opts}
	dry.opts.DryRun = true

	summary, err := dry.Rewrite(ctx)
	if err != nil {
		return nil, errors.Errorf("checking files: %w", err)
	}

	logger.Debug().
		Int("pending", summary.Updated).
		Int("unchecked", len(summary.Failures)).
		Msg("status checked")

	return summary, nil
}
