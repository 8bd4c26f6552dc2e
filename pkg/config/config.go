// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/repath/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// DefaultRoot is the directory rewritten when no root is configured
const DefaultRoot = "src_new"

// DefaultFile is the config file looked up when none is given
const DefaultFile = ".repath.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Root           string       `json:"root,omitempty" yaml:"root,omitempty"`                       // Directory to walk
	Include        []string     `json:"include,omitempty" yaml:"include,omitempty"`                 // Globs selecting files
	Exclude        []string     `json:"exclude,omitempty" yaml:"exclude,omitempty"`                 // Globs dropping selected files
	Rules          []rules.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`                     // Ordered rules; built-in rules when empty
	ExtendDefaults bool         `json:"extend_defaults,omitempty" yaml:"extend_defaults,omitempty"` // Run Rules after the built-in rules
}

// 🏭 Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Root:    DefaultRoot,
		Include: []string{"**/*.ts"},
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault loads path, falling back to Default when the file does not exist
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("validating config: %w", err)
		}
		return cfg, nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	cfg.Root = filepath.Clean(cfg.Root)

	if len(cfg.Include) == 0 {
		cfg.Include = Default().Include
	}

	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("include: invalid glob pattern %q", pattern)
		}
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude: invalid glob pattern %q", pattern)
		}
	}

	if _, err := cfg.RuleSet(); err != nil {
		return errors.Errorf("rules: %w", err)
	}

	return nil
}

// 📦 RuleSet compiles the configured rules in order
func (cfg *Config) RuleSet() (*rules.Set, error) {
	switch {
	case len(cfg.Rules) == 0:
		return rules.Default(), nil
	case cfg.ExtendDefaults:
		return rules.Compile(append(rules.DefaultRules(), cfg.Rules...))
	default:
		return rules.Compile(cfg.Rules)
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	out := fmt.Sprintf("%s [%s]", cfg.Root, strings.Join(cfg.Include, ", "))
	if len(cfg.Exclude) > 0 {
		out += fmt.Sprintf(" excluding [%s]", strings.Join(cfg.Exclude, ", "))
	}
	return out
}
