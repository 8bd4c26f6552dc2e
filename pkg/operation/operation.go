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

package operation

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/repath/pkg/rules"
	"github.com/walteh/repath/pkg/status"
	"github.com/walteh/repath/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrRootNotFound is returned before any file is touched when the root is missing
	ErrRootNotFound = errors.Base("root directory not found")
	// ErrFileRead marks a file that could not be read
	ErrFileRead = errors.Base("file read failed")
	// ErrFileWrite marks a file that could not be written back
	ErrFileWrite = errors.Base("file write failed")
)

// DefaultInclude selects TypeScript files at any depth
var DefaultInclude = []string{"**/*.ts"}

// 🎯 Operator runs rewrites over a directory tree
type Operator interface {
	// Rewrite applies the rule set to every selected file and writes back changed files
	Rewrite(ctx context.Context) (*Summary, error)
	// Status runs Rewrite without writing. The summary tells which files are
	// pending and which could not be checked.
	Status(ctx context.Context) (*Summary, error)
}

// 📢 Reporter receives per-file outcomes as the walk progresses
type Reporter interface {
	LogFileOperation(ctx context.Context, info status.FileInfo)
	LogDiff(diff string)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Root is the directory to walk
	Root string
	// Include globs select files by slash separated path relative to Root
	Include []string
	// Exclude globs drop files that Include selected
	Exclude []string
	// Rules is the ordered rule set applied to every file
	Rules *rules.Set
	// DryRun computes the summary without writing
	DryRun bool
	// Diff reports a line diff for every changed file
	Diff bool
	// Reporter is optional
	Reporter Reporter
	// Files overrides file access; defaults to a status.Manager rooted at Root per run
	Files status.FileManager
	// Replacer overrides the text replacer; defaults to text.RegexpTextReplacer
	Replacer text.TextReplacer
}

// 📊 Summary is the result of a run
type Summary struct {
	Total    int               // Files selected
	Updated  int               // Files whose content changed
	Changed  []string          // Relative paths of changed files, in walk order
	Failures []FileFailure     // Files that could not be processed
	Files    []status.FileInfo // Every outcome, sorted by path
}

// Pending reports whether any file was (or would be) changed
func (s *Summary) Pending() bool {
	return s != nil && s.Updated > 0
}

// FileFailure records why a file was left untouched
type FileFailure struct {
	Path string
	Err  error
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Root == "" {
		return nil, errors.Errorf("root is required")
	}
	if opts.Rules == nil {
		return nil, errors.Errorf("rules are required")
	}
	if len(opts.Include) == 0 {
		opts.Include = DefaultInclude
	}
	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid glob pattern %q", pattern)
		}
	}

	if opts.Replacer == nil {
		opts.Replacer = text.NewRegexpTextReplacer()
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}

	return &operator{opts: opts}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	opts Options
}

type nopReporter struct{}

func (nopReporter) LogFileOperation(context.Context, status.FileInfo) {}
func (nopReporter) LogDiff(string)                                     {}
