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

package gclplugin

import (
	fixkit "fillmore-labs.com/fixkit/analyzer"
	"fillmore-labs.com/fixkit/analyzer/level"
)

// Settings represents the configuration options of the golangci-lint plugin.
type Settings struct {
	// PreferConst sets the level of the check for variables that can be constants.
	PreferConst *level.Check `json:"prefer-const,omitzero"`
	// Regex sets the level of the check for invalid regular expression patterns.
	Regex *level.Check `json:"regex,omitzero"`
	// RegexTargets replaces the checked regular expression functions.
	RegexTargets *[]fixkit.RegexTarget `json:"regex-targets,omitzero"`
	// SuggestFixes enables suggested fixes.
	SuggestFixes *bool `json:"suggest-fixes,omitzero"`
}

// Options converts [Settings] into a list of [fixkit.Option] for the fixkit analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []fixkit.Option {
	var opts []fixkit.Option

	opts = appendOption(opts, s.PreferConst, fixkit.WithPreferConst)
	opts = appendOption(opts, s.Regex, fixkit.WithRegex)
	opts = appendOption(opts, s.RegexTargets, fixkit.WithRegexTargets)
	opts = appendOption(opts, s.SuggestFixes, fixkit.WithSuggestFixes)

	return opts
}

// disablesAll reports whether both checks are turned off.
func (s Settings) disablesAll() bool {
	return s.PreferConst != nil && !s.PreferConst.Enabled() && s.Regex != nil && !s.Regex.Enabled()
}

// appendOption appends a non-nil setting to a [fixkit.Option] list.
func appendOption[T any](opts []fixkit.Option, value *T, constructor func(T) fixkit.Option) []fixkit.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
