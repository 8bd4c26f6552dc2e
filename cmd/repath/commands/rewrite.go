package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/repath/cmd/repath/opts"
	"github.com/walteh/repath/pkg/log"
	"github.com/walteh/repath/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRewriteCmd creates a new rewrite command
func NewRewriteCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		dryRun bool
		diff   bool
	)

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite import paths in place",
		Long: `Rewrite applies the rule set to every selected file under the root.
It will:
1. Stop before touching anything if the root directory does not exist
2. Apply every rule, in order, to each selected file
3. Write back only the files whose content changed
4. Report "Updated X/Y files"

Files that cannot be read, decoded or written are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			op, err := newOperator(rootOpts, logger, dryRun, diff)
			if err != nil {
				return err
			}

			logger.Header("Updating import paths...")

			summary, err := op.Rewrite(ctx)
			if err != nil {
				if errors.Is(err, operation.ErrRootNotFound) {
					return errors.Errorf("%s directory not found: %w", rootOpts.Config.Root, err)
				}
				return errors.Errorf("rewriting files: %w", err)
			}

			if len(summary.Failures) > 0 {
				logger.Warningf("%d file(s) could not be processed", len(summary.Failures))
			}
			if dryRun {
				logger.Infof("dry run: %d file(s) would be updated, nothing was written", summary.Updated)
			}
			logger.Summary(summary.Updated, summary.Total)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")
	cmd.Flags().BoolVar(&diff, "diff", false, "print a line diff for every changed file")

	return cmd
}

// newOperator builds an operator from the loaded config
func newOperator(rootOpts *opts.RootOpts, reporter operation.Reporter, dryRun, diff bool) (operation.Operator, error) {
	set, err := rootOpts.Config.RuleSet()
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}

	op, err := operation.New(operation.Options{
		Root:     rootOpts.Config.Root,
		Include:  rootOpts.Config.Include,
		Exclude:  rootOpts.Config.Exclude,
		Rules:    set,
		DryRun:   dryRun,
		Diff:     diff,
		Reporter: reporter,
	})
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}
	return op, nil
}
