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

// Package config holds the host behavior settings shared by the analyzer and sharplint.
package config

import (
	"log/slog"
	"strings"
)

// BehaviorFlags represents host behavior options.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// SuggestFixes attaches the available fixes to reported diagnostics.
	SuggestFixes
)

var behaviorNames = [...]struct {
	flag BehaviorFlags
	name string
}{
	{IncludeGenerated, "generated"},
	{SuggestFixes, "suggest"},
}

// Behavior is the set of enabled [BehaviorFlags]. The zero value has all flags disabled.
type Behavior struct{ flags BehaviorFlags }

// NewBehavior returns a behavior with the given flags enabled.
func NewBehavior(flags ...BehaviorFlags) Behavior {
	var b Behavior
	for _, f := range flags {
		b.flags |= f
	}

	return b
}

// DefaultBehavior returns the behavior of an unconfigured analyzer.
func DefaultBehavior() Behavior {
	return NewBehavior(SuggestFixes)
}

// Set enables or disables flag.
func (b *Behavior) Set(flag BehaviorFlags, enabled bool) {
	if enabled {
		b.flags |= flag
	} else {
		b.flags &^= flag
	}
}

// Enabled reports whether flag is set.
func (b Behavior) Enabled(flag BehaviorFlags) bool {
	return b.flags&flag != 0
}

// String lists the enabled flags, comma separated.
func (b Behavior) String() string {
	var names []string

	for _, n := range behaviorNames {
		if b.Enabled(n.flag) {
			names = append(names, n.name)
		}
	}

	return strings.Join(names, ",")
}

// LogValue implements [slog.LogValuer].
func (b Behavior) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(behaviorNames))
	for _, n := range behaviorNames {
		attrs = append(attrs, slog.Bool(n.name, b.Enabled(n.flag)))
	}

	return slog.GroupValue(attrs...)
}
