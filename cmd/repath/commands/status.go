package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/repath/cmd/repath/opts"
	"github.com/walteh/repath/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrPending is returned by the status command when files still need rewriting
	ErrPending = errors.Base("files need rewriting")
	// ErrUnchecked is returned by the status command when some files could not be inspected
	ErrUnchecked = errors.Base("files could not be checked")
)

// NewStatusCmd creates a new status command
func NewStatusCmd(rootOpts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check if any file still needs rewriting",
		Long: `Status runs the rule set over the root without writing anything.
It exits non-zero when at least one file would change or could not be read,
which makes it usable as a CI check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			op, err := newOperator(rootOpts, logger, true, false)
			if err != nil {
				return err
			}

			summary, err := op.Status(ctx)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			switch {
			case summary.Pending():
				return errors.Errorf("%w: %d of %d", ErrPending, summary.Updated, summary.Total)
			case len(summary.Failures) > 0:
				return errors.Errorf("%w: %d of %d", ErrUnchecked, len(summary.Failures), summary.Total)
			}

			logger.Successf("All import paths are up to date (%d files checked)", summary.Total)
			return nil
		},
	}

	return cmd
}
