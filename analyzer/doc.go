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

// Package analyzer implements the fixkit static analysis pass.
//
// # Overview
//
// fixkit runs two checks on every function body of a package.
//
// The prefer-const check reports local variables initialized with constants
// and never written afterwards:
//
//	func area(r float64) float64 {
//	    var pi = 3.14159  // Variable 'pi' can be made constant
//	    return pi * r * r
//	}
//
// The suggested fix turns the declaration into a constant:
//
//	func area(r float64) float64 {
//	    const pi = 3.14159
//	    return pi * r * r
//	}
//
// The regex check reports constant patterns of regular expression functions
// that do not compile, with the error message of the regexp package:
//
//	var digits = regexp.MustCompile("[0-9")  // error parsing regexp: missing closing ]: `[0-9`
//
// The suggested fix substitutes a valid placeholder pattern.
//
// # Configuration
//
// Both checks accept a level (on, off, info, warning, error). Regular expression
// functions of other packages are checked by listing them in -regex-targets,
// like "example.com/re.Compile@0/re2". Generated files are skipped unless
// -generated is set, and //nolint:fixkit suppresses diagnostics on a line,
// a declaration or a whole file.
package analyzer
