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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/fixkit/analyzer/level"
	"fillmore-labs.com/fixkit/internal/config"
	"fillmore-labs.com/fixkit/internal/match"
	"fillmore-labs.com/fixkit/internal/run"
)

// Option configures specific behavior of a [New] fixkit analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuggestFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithSuggestFixes(suggest bool) Option { return suggestOption{suggest: suggest} }

type suggestOption struct{ suggest bool }

func (o suggestOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.suggest)
}

func (o suggestOption) LogAttr() slog.Attr {
	return slog.Bool("suggest", o.suggest)
}

// WithPreferConst is an [Option] to configure the check for variables that can be constants.
func WithPreferConst(check level.Check) Option { return preferConstOption{check: check} }

type preferConstOption struct{ check level.Check }

func (o preferConstOption) apply(r *run.Options) {
	r.PreferConst = o.check
}

func (o preferConstOption) LogAttr() slog.Attr {
	return slog.String("prefer-const", o.check.String())
}

// WithRegex is an [Option] to configure the check for invalid regular expression patterns.
func WithRegex(check level.Check) Option { return regexOption{check: check} }

type regexOption struct{ check level.Check }

func (o regexOption) apply(r *run.Options) {
	r.Regex = o.check
}

func (o regexOption) LogAttr() slog.Attr {
	return slog.String("regex", o.check.String())
}

// WithRegexTargets is an [Option] to replace the regular expression functions checked.
// No targets restores the defaults.
func WithRegexTargets(targets []RegexTarget) Option { return regexTargetsOption{targets: targets} }

type regexTargetsOption struct{ targets []RegexTarget }

func (o regexTargetsOption) apply(r *run.Options) {
	r.RegexTargets = o.targets
}

func (o regexTargetsOption) LogAttr() slog.Attr {
	return slog.String("regex-targets", match.FormatRegexTargets(o.targets))
}
