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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/repath/pkg/rules"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_config",
			filename: ".repath.yaml",
			config: `
root: ./src_new/
include:
  - "**/*.ts"
  - "**/*.tsx"
exclude:
  - "**/node_modules/**"
rules:
  - pattern: "from '\\.\\./old'"
    replacement: "from '../new'"
  - pattern: "(\\w+)@"
    replacement: "$1#"
    expand: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "src_new", cfg.Root, "root should be cleaned")
				assert.Equal(t, []string{"**/*.ts", "**/*.tsx"}, cfg.Include)
				assert.Equal(t, []string{"**/node_modules/**"}, cfg.Exclude)
				require.Len(t, cfg.Rules, 2)
				assert.Equal(t, `from '\.\./old'`, cfg.Rules[0].Pattern)
				assert.True(t, cfg.Rules[1].Expand)

				set, err := cfg.RuleSet()
				require.NoError(t, err)
				assert.Equal(t, 2, set.Len())
			},
		},
		{
			name:     "empty_yaml_uses_defaults",
			filename: "config.yml",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultRoot, cfg.Root)
				assert.Equal(t, []string{"**/*.ts"}, cfg.Include)

				set, err := cfg.RuleSet()
				require.NoError(t, err)
				assert.Same(t, rules.Default(), set)
			},
		},
		{
			name:     "json_config",
			filename: "repath.json",
			config: `{
				"root": "web/src",
				"rules": [{"pattern": "foo", "replacement": "bar"}],
				"extend_defaults": true
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, filepath.Clean("web/src"), cfg.Root)

				set, err := cfg.RuleSet()
				require.NoError(t, err)
				assert.Equal(t, rules.Default().Len()+1, set.Len())
				assert.Equal(t, "foo", set.Rules()[set.Len()-1].Pattern)
			},
		},
		{
			name:     "hcl_config",
			filename: "repath.hcl",
			config: `
root    = default_root
include = ["**/*.mts"]

rule {
  pattern     = "from '\\./a'"
  replacement = "from './b'"
}

rule {
  pattern     = "x"
  replacement = "y"
  expand      = true
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultRoot, cfg.Root)
				assert.Equal(t, []string{"**/*.mts"}, cfg.Include)
				require.Len(t, cfg.Rules, 2)
				assert.Equal(t, `from '\./a'`, cfg.Rules[0].Pattern)
				assert.Equal(t, "from './b'", cfg.Rules[0].Replacement)
				assert.True(t, cfg.Rules[1].Expand)
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    ".repath.yaml",
			config:      "destination: /tmp\n",
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			filename:    "repath.json",
			config:      `{"destination": "/tmp"}`,
			errContains: "parsing JSON",
		},
		{
			name:        "invalid_hcl",
			filename:    "repath.hcl",
			config:      "root = ",
			errContains: "parsing HCL",
		},
		{
			name:        "malformed_rule_pattern",
			filename:    ".repath.yaml",
			config:      "rules:\n  - pattern: \"from ([\"\n    replacement: x\n",
			errContains: "invalid rule pattern",
		},
		{
			name:        "invalid_glob",
			filename:    ".repath.yaml",
			config:      "include: [\"[a-\"]\n",
			errContains: "include: invalid glob pattern",
		},
		{
			name:        "unsupported_extension",
			filename:    "repath.toml",
			config:      "root = 'x'",
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0o644))

			cfg, err := Load(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	cfg, err := LoadOrDefault(ctx, filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, DefaultRoot, cfg.Root)
	assert.Equal(t, []string{"**/*.ts"}, cfg.Include)
	assert.Empty(t, cfg.Exclude)
	assert.Empty(t, cfg.Rules)

	_, err = Load(ctx, filepath.Join(t.TempDir(), DefaultFile))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{"yaml_file", "config.yaml", &YAMLParser{}},
		{"yml_file", "config.yml", &YAMLParser{}},
		{"json_file", "config.JSON", &JSONParser{}},
		{"hcl_file", "config.hcl", &HCLParser{}},
		{"unknown_extension", "config.txt", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name        string
		environ     map[string]string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:    "no_overrides",
			environ: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultRoot, cfg.Root)
				assert.Equal(t, []string{"**/*.ts"}, cfg.Include)
			},
		},
		{
			name: "overrides",
			environ: map[string]string{
				"REPATH_ROOT":    "packages/core/src",
				"REPATH_INCLUDE": "**/*.ts,**/*.tsx",
				"REPATH_EXCLUDE": "**/*.d.ts",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, filepath.Clean("packages/core/src"), cfg.Root)
				assert.Equal(t, []string{"**/*.ts", "**/*.tsx"}, cfg.Include)
				assert.Equal(t, []string{"**/*.d.ts"}, cfg.Exclude)
			},
		},
		{
			name:        "invalid_glob",
			environ:     map[string]string{"REPATH_EXCLUDE": "[a-"},
			errContains: "exclude: invalid glob pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := ApplyEnv(cfg, tt.environ)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{Root: "src_new", Include: []string{"**/*.ts"}, Exclude: []string{"**/*.d.ts"}}
	assert.Equal(t, "src_new [**/*.ts] excluding [**/*.d.ts]", cfg.String())
}
