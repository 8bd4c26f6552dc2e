package opts

import (
	"github.com/walteh/repath/pkg/config"
	"github.com/walteh/repath/pkg/log"
)

// RootOpts contains shared options used by all commands.
// Config and Logger are filled in by the root command before any subcommand runs.
type RootOpts struct {
	ConfigFile string
	Root       string
	Debug      bool
	Verbose    bool

	Config *config.Config
	Logger *log.Logger
}
