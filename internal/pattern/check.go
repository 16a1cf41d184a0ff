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

// Package pattern validates regular expression patterns.
package pattern

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// ProbeError is the result of compiling an invalid pattern.
type ProbeError struct {
	Dialect Dialect
	Pattern string

	// Message is the error text of the regular expression engine.
	Message string
}

func (e *ProbeError) Error() string { return e.Message }

// Check compiles expr in the given dialect and returns a [*ProbeError] when
// the pattern is invalid.
func Check(d Dialect, expr string) error {
	var err error

	switch d {
	case POSIX:
		_, err = regexp.CompilePOSIX(expr)

	case DotNet:
		_, err = regexp2.Compile(expr, regexp2.None)

	default:
		_, err = regexp.Compile(expr)
	}

	if err != nil {
		return &ProbeError{Dialect: d, Pattern: expr, Message: err.Error()}
	}

	return nil
}
