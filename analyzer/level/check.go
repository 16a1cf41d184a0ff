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

// Package level defines the text-valued levels of analyzer options.
package level

import (
	"fmt"
	"strings"

	"fillmore-labs.com/fixkit/internal/diag"
)

// Check specifies whether a check runs and the severity of its diagnostics.
type Check uint8

const (
	// CheckOn enables the check with its default severity.
	CheckOn Check = iota

	// CheckOff disables the check.
	CheckOff

	// CheckInfo enables the check and reports suggestions.
	CheckInfo

	// CheckWarning enables the check and reports warnings.
	CheckWarning

	// CheckError enables the check and reports errors.
	CheckError
)

// Enabled reports whether the check runs.
func (o Check) Enabled() bool { return o != CheckOff }

// Severity returns the severity of diagnostics with the given default severity.
func (o Check) Severity(def diag.Severity) diag.Severity {
	switch o {
	case CheckInfo:
		return diag.Info

	case CheckWarning:
		return diag.Warning

	case CheckError:
		return diag.Error

	default:
		return def
	}
}

// String implements [fmt.Stringer].
func (o Check) String() string {
	b, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Check(%d)", o)
	}

	return string(b)
}

// MarshalText implements [encoding.TextMarshaler].
func (o Check) MarshalText() ([]byte, error) {
	switch o {
	case CheckOn:
		return []byte("on"), nil

	case CheckOff:
		return []byte("off"), nil

	case CheckInfo:
		return []byte("info"), nil

	case CheckWarning:
		return []byte("warning"), nil

	case CheckError:
		return []byte("error"), nil

	default:
		return nil, fmt.Errorf("unknown check level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Check) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "default":
		*o = CheckOn

	case "off", "false", "none":
		*o = CheckOff

	case "info", "suggestion":
		*o = CheckInfo

	case "warning", "warn":
		*o = CheckWarning

	case "error":
		*o = CheckError

	default:
		return fmt.Errorf("unknown check level %q", string(text))
	}

	return nil
}
