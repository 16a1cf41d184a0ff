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

package diag_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/syntax"
)

var (
	usage = &Descriptor{
		ID:               "MakeConst",
		Title:            "Variable can be made constant",
		MessageFormat:    "Variable '%s' can be made constant",
		Category:         "Usage",
		Severity:         Warning,
		EnabledByDefault: true,
	}
	syntaxError = &Descriptor{
		ID:               "Regex",
		MessageFormat:    "%s",
		Category:         "Syntax",
		Severity:         Error,
		EnabledByDefault: true,
	}
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(syntaxError, usage)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	ds := r.Descriptors()
	if len(ds) != 2 || ds[0] != usage || ds[1] != syntaxError {
		t.Errorf("Descriptors() = %v, want sorted by ID", ds)
	}

	if d, ok := r.Lookup("Regex"); !ok || d != syntaxError {
		t.Errorf("Lookup(Regex) = %v, %t", d, ok)
	}

	loc := Location{Path: "a.cs", Span: syntax.Span{Start: 3, Len: 10}}

	d, err := r.Create(usage, loc, "x, y")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	want := Diagnostic{
		ID:       "MakeConst",
		Category: "Usage",
		Severity: Warning,
		Location: loc,
		Message:  "Variable 'x, y' can be made constant",
	}
	if d != want {
		t.Errorf("Create() = %+v, want %+v", d, want)
	}
}

func TestRegistryErrors(t *testing.T) {
	t.Parallel()

	copied := *usage

	testCases := [...]struct {
		name        string
		descriptors []*Descriptor
		want        error
	}{
		{"duplicate", []*Descriptor{usage, syntaxError, &copied}, ErrDuplicateDescriptor},
		{"nil", []*Descriptor{nil}, ErrInvalidDescriptor},
		{"empty id", []*Descriptor{{Title: "no id"}}, ErrInvalidDescriptor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewRegistry(tc.descriptors...)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tc.want)
			}

			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("NewRegistry() error = %v, want %v", err, ErrConfiguration)
			}
		})
	}
}

func TestCreateUnknown(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(usage)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	copied := *usage

	for _, d := range []*Descriptor{syntaxError, &copied} {
		if _, err := r.Create(d, Location{}); !errors.Is(err, ErrUnknownDescriptor) {
			t.Errorf("Create(%s) error = %v, want %v", d.ID, err, ErrUnknownDescriptor)
		}
	}
}

func TestSeverityText(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		text string
		want Severity
	}{
		{"hidden", Hidden},
		{"Info", Info},
		{"warn", Warning},
		{"ERROR", Error},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			var s Severity
			if err := s.UnmarshalText([]byte(tc.text)); err != nil {
				t.Fatalf("UnmarshalText failed: %v", err)
			}

			if s != tc.want {
				t.Errorf("UnmarshalText(%q) = %s, want %s", tc.text, s, tc.want)
			}

			text, err := s.MarshalText()
			if err != nil || string(text) != tc.want.String() {
				t.Errorf("MarshalText() = %q, %v, want %q", text, err, tc.want.String())
			}
		})
	}

	var s Severity
	if err := s.UnmarshalText([]byte("fatal")); err == nil {
		t.Error("Expected error for unknown severity")
	}
}
