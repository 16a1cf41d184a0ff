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

import (
	"fmt"
	"strings"
)

// Severity is the importance of a [Diagnostic].
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// Hidden diagnostics are not shown to users but still offer fixes.
	Hidden Severity = iota // hidden

	// Info diagnostics are suggestions.
	Info // info

	// Warning diagnostics point out likely problems.
	Warning // warning

	// Error diagnostics point out definite problems.
	Error // error
)

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	if s > Error {
		return nil, fmt.Errorf("unknown severity %d", s)
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "hidden", "none":
		*s = Hidden

	case "info", "suggestion":
		*s = Info

	case "warning", "warn":
		*s = Warning

	case "error":
		*s = Error

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}
