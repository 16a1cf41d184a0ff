// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package diag

import "fillmore-labs.com/fixkit/internal/syntax"

// Descriptor describes one kind of diagnostic. Descriptors are immutable after registration.
type Descriptor struct {
	// ID is the globally unique identifier, like "MakeConst".
	ID string

	// Title is a short human readable summary.
	Title string

	// MessageFormat is a [fmt] format string for the diagnostic message.
	MessageFormat string

	// Category groups related descriptors, like "Usage" or "Syntax".
	Category string

	// Description is a longer explanation.
	Description string

	// HelpURL points to documentation.
	HelpURL string

	Severity Severity

	EnabledByDefault bool
}

// Location is the place a diagnostic refers to.
type Location struct {
	Path string
	Span syntax.Span
}

// Diagnostic is one reported finding.
type Diagnostic struct {
	ID       string
	Category string
	Severity Severity
	Location Location
	Message  string
}

// WithSeverity returns a copy of d with the given severity.
func (d Diagnostic) WithSeverity(s Severity) Diagnostic {
	d.Severity = s

	return d
}
