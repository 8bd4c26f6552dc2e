package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/repath/cmd/repath/opts"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates a command listing the active rules in application order
func NewRulesCmd(rootOpts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the active rules in the order they are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := rootOpts.Config.RuleSet()
			if err != nil {
				return errors.Errorf("compiling rules: %w", err)
			}

			out := cmd.OutOrStdout()
			for i, r := range set.Rules() {
				replacement := r.Replacement
				if r.Expand {
					replacement += color.New(color.Faint).Sprint(" (expand)")
				}
				fmt.Fprintf(out, "%3d  %s\n     %s %s\n",
					i+1,
					color.CyanString("%s", r.Pattern),
					color.New(color.Faint).Sprint("→"),
					replacement)
			}
			return nil
		},
	}

	return cmd
}
