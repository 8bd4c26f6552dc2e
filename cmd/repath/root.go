package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/repath/cmd/repath/commands"
	"github.com/walteh/repath/cmd/repath/opts"
	"github.com/walteh/repath/pkg/config"
	"github.com/walteh/repath/pkg/log"
	"github.com/walteh/repath/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// run builds the command tree, executes it and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootOpts := &opts.RootOpts{}
	rootCmd := newRootCmd(rootOpts, stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if rootOpts.Logger != nil {
			rootOpts.Logger.Error(err)
		} else {
			_, _ = io.WriteString(stderr, status.NewDefaultFileFormatter().FormatError(err)+"\n")
		}
		return 1
	}
	return 0
}

// newRootCmd creates the root command with every subcommand attached
func newRootCmd(rootOpts *opts.RootOpts, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repath",
		Short: "Rewrite import paths after a directory restructuring",
		Long: `repath walks a source tree and rewrites import paths with an ordered list of
regular expression rules. Files are only written when a rule changed them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), rootOpts, stderr)
			rootOpts.Logger = log.New(stdout, *zerolog.Ctx(ctx), rootOpts.Verbose)
			ctx = log.NewContext(ctx, rootOpts.Logger)
			cmd.SetContext(ctx)

			cfg, err := loadConfig(ctx, cmd, rootOpts)
			if err != nil {
				return err
			}
			rootOpts.Config = cfg
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addRootFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(
		commands.NewRewriteCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
		commands.NewRulesCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, rootOpts *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().StringVarP(&rootOpts.Root, "root", "r", "", "directory to rewrite (overrides config)")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "also list unchanged files")
}

// setupLogging configures zerolog based on flags and stores the logger in ctx
func setupLogging(ctx context.Context, rootOpts *opts.RootOpts, stderr io.Writer) context.Context {
	level := zerolog.WarnLevel
	if rootOpts.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// loadConfig reads the config file (optional unless --config was given), then applies
// environment and flag overrides
func loadConfig(ctx context.Context, cmd *cobra.Command, rootOpts *opts.RootOpts) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(ctx, rootOpts.ConfigFile)
	} else {
		cfg, err = config.LoadOrDefault(ctx, rootOpts.ConfigFile)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if err := config.ApplyEnv(cfg, nil); err != nil {
		return nil, errors.Errorf("applying environment: %w", err)
	}

	if rootOpts.Root != "" {
		cfg.Root = rootOpts.Root
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("validating config: %w", err)
		}
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return cfg, nil
}
