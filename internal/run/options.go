// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"fillmore-labs.com/fixkit/analyzer/level"
	"fillmore-labs.com/fixkit/internal/config"
	"fillmore-labs.com/fixkit/internal/match"
)

// Options represent configuration options for the fixkit analyzer.
type Options struct {
	// PreferConst configures the MakeConst check.
	PreferConst level.Check

	// Regex configures the Regex check.
	Regex level.Check

	// RegexTargets overrides the checked regular expression functions.
	RegexTargets []match.RegexTarget

	// Behavior holds behavioral options.
	Behavior config.Behavior
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		PreferConst: level.CheckOn,
		Regex:       level.CheckOn,
		Behavior:    config.DefaultBehavior(),
	}
}

// NewSet creates the [match.Set] of the enabled checks.
func (o *Options) NewSet() (*match.Set, error) {
	var (
		matchers []match.Matcher
		fixers   []match.Fixer
	)

	if o.PreferConst.Enabled() {
		matchers = append(matchers, match.MakeConst{})
		fixers = append(fixers, match.MakeConstFix{})
	}

	if o.Regex.Enabled() {
		matchers = append(matchers, match.Regex{Targets: o.RegexTargets})
		fixers = append(fixers, match.RegexFix{})
	}

	return match.NewSet(matchers, fixers)
}
