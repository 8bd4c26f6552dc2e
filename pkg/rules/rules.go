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

// Package rules holds the ordered pattern -> replacement rules applied to file content.
package rules

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// ErrPattern is returned when a rule pattern cannot be compiled
var ErrPattern = errors.Base("invalid rule pattern")

// 🔄 Rule is a single pattern -> replacement substitution
type Rule struct {
	// Pattern is an RE2 expression matched against raw file content
	Pattern string `json:"pattern" yaml:"pattern"`
	// Replacement is substituted for every non-overlapping match
	Replacement string `json:"replacement" yaml:"replacement"`
	// Expand enables $1 / ${name} expansion in Replacement, otherwise it is literal
	Expand bool `json:"expand,omitempty" yaml:"expand,omitempty"`
}

// compiled pairs a rule with its compiled pattern
type compiled struct {
	rule Rule
	re   *regexp.Regexp
}

// 📚 Set is an ordered, immutable list of compiled rules
type Set struct {
	rules []compiled
}

// 🏭 Compile compiles every rule in order. The returned set is safe to share.
func Compile(rs []Rule) (*Set, error) {
	set := &Set{rules: make([]compiled, 0, len(rs))}
	for i, r := range rs {
		if r.Pattern == "" {
			return nil, errors.Errorf("%w: rule %d: pattern is required", ErrPattern, i)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.Errorf("%w: rule %d (%q): %s", ErrPattern, i, r.Pattern, err.Error())
		}
		set.rules = append(set.rules, compiled{rule: r, re: re})
	}
	return set, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(rs []Rule) *Set {
	set, err := Compile(rs)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of rules in the set
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Rules returns a copy of the source rules in application order
func (s *Set) Rules() []Rule {
	if s == nil {
		return nil
	}
	out := make([]Rule, len(s.rules))
	for i, c := range s.rules {
		out[i] = c.rule
	}
	return out
}

// 🎯 Apply runs every rule in order, each on the output of the previous one.
// It returns the final content and the total number of matches replaced.
func (s *Set) Apply(content []byte) ([]byte, int) {
	if s == nil {
		return content, 0
	}
	count := 0
	for _, c := range s.rules {
		n := len(c.re.FindAllIndex(content, -1))
		if n == 0 {
			continue
		}
		count += n
		if c.rule.Expand {
			content = c.re.ReplaceAll(content, []byte(c.rule.Replacement))
		} else {
			content = c.re.ReplaceAllLiteral(content, []byte(c.rule.Replacement))
		}
	}
	return content, count
}
