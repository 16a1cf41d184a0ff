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

package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/fixkit/internal/pattern"
)

// ErrInvalidTarget is returned for malformed regular expression targets.
var ErrInvalidTarget = errors.New("invalid regex target")

// RegexTarget is a function taking a regular expression pattern argument.
//
// The textual form is "qualified.Name@arg/dialect", where "@arg" defaults to
// the first argument and "/dialect" to RE2. Functions outside the standard
// library are qualified with their package path, like "example.com/re.Compile".
type RegexTarget struct {
	// Func is the fully qualified function name.
	Func string

	// Arg is the zero based position of the pattern argument.
	Arg int

	// Dialect is the regular expression syntax of the function.
	Dialect pattern.Dialect
}

// SimpleName is the unqualified name of the function.
func (t RegexTarget) SimpleName() string {
	return t.Func[strings.LastIndexByte(t.Func, '.')+1:]
}

func (t RegexTarget) String() string {
	s := t.Func
	if t.Arg != 0 {
		s += "@" + strconv.Itoa(t.Arg)
	}

	if t.Dialect != pattern.RE2 {
		s += "/" + t.Dialect.String()
	}

	return s
}

// MarshalText implements [encoding.TextMarshaler].
func (t RegexTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *RegexTarget) UnmarshalText(text []byte) error {
	s := string(text)

	var target RegexTarget

	// Package paths contain slashes, so only a trailing dialect name is split off.
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		if err := target.Dialect.UnmarshalText([]byte(s[i+1:])); err == nil {
			s = s[:i]
		}
	}

	if fn, arg, ok := strings.Cut(s, "@"); ok {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return fmt.Errorf("%w %q: bad argument position %q", ErrInvalidTarget, text, arg)
		}

		target.Arg, s = n, fn
	}

	if s == "" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return fmt.Errorf("%w %q: missing function name", ErrInvalidTarget, text)
	}

	target.Func = s
	*t = target

	return nil
}

// ParseRegexTargets parses a comma separated list of targets.
func ParseRegexTargets(s string) ([]RegexTarget, error) {
	var targets []RegexTarget

	for f := range strings.SplitSeq(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}

		var t RegexTarget
		if err := t.UnmarshalText([]byte(f)); err != nil {
			return nil, err
		}

		targets = append(targets, t)
	}

	return targets, nil
}

// FormatRegexTargets is the inverse of [ParseRegexTargets].
func FormatRegexTargets(targets []RegexTarget) string {
	fs := make([]string, 0, len(targets))
	for _, t := range targets {
		fs = append(fs, t.String())
	}

	return strings.Join(fs, ",")
}
