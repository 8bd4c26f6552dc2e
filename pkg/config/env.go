package config

import (
	"github.com/caarlos0/env/v11"
	"gitlab.com/tozd/go/errors"
)

// envOverrides are read from the environment and win over the config file
type envOverrides struct {
	Root    string   `env:"REPATH_ROOT"`
	Include []string `env:"REPATH_INCLUDE" envSeparator:","`
	Exclude []string `env:"REPATH_EXCLUDE" envSeparator:","`
}

// ApplyEnv overrides cfg with REPATH_* variables. A nil environ reads the process environment.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return errors.Errorf("parsing environment: %w", err)
	}

	if o.Root != "" {
		cfg.Root = o.Root
	}
	if len(o.Include) > 0 {
		cfg.Include = o.Include
	}
	if len(o.Exclude) > 0 {
		cfg.Exclude = o.Exclude
	}

	return cfg.Validate()
}
