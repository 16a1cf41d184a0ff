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

package syntax_test

import (
	"testing"

	. "fillmore-labs.com/fixkit/internal/syntax"
)

func TestWithChildSharesSiblings(t *testing.T) {
	t.Parallel()

	tree := build(t, "var x = 1\n", declaration(0, 4, 5, 8, 9))

	vars := tree.Root().Child(0).Child(1)
	replaced := vars.WithChild(2, NewToken(Literal, "42"))

	if replaced == vars {
		t.Fatal("WithChild returned the original node")
	}

	for i := range 2 {
		if replaced.Child(i) != vars.Child(i) {
			t.Errorf("Child %d not shared", i)
		}
	}

	if got := replaced.Child(2).Field(); got != FieldValue {
		t.Errorf("Replacement field = %s, want %s", got, FieldValue)
	}

	if got, want := replaced.Text(), "x = 42"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	if got, want := vars.Text(), "x = 1\n"; got != want {
		t.Errorf("Original changed to %q, want %q", got, want)
	}
}

func TestWithTrivia(t *testing.T) {
	t.Parallel()

	n := NewNode(Invocation,
		NewToken(Identifier, "f").WithField(FieldFunction),
		NewToken(Punctuation, "("),
		NewToken(Punctuation, ")"),
	)

	got := n.WithTrivia("\t", " // c\n")

	if want := "\tf() // c\n"; got.Text() != want {
		t.Errorf("Text() = %q, want %q", got.Text(), want)
	}

	if got.FullWidth() != len(got.Text()) {
		t.Errorf("FullWidth() = %d, want %d", got.FullWidth(), len(got.Text()))
	}

	if got.Width() != 3 || got.InnerText() != "f()" {
		t.Errorf("Width() = %d, InnerText() = %q, want 3, %q", got.Width(), got.InnerText(), "f()")
	}

	if n.LeadingTrivia() != "" || n.TrailingTrivia() != "" {
		t.Error("Original node modified")
	}
}

func TestAnnotations(t *testing.T) {
	t.Parallel()

	n := NewToken(Literal, `"a"`)
	a := n.WithAnnotations(AnnotationFormat)

	if n.HasAnnotation(AnnotationFormat) || !a.HasAnnotation(AnnotationFormat) {
		t.Errorf("Annotation set on %v and %v", n.Annotations(), a.Annotations())
	}

	if a.WithoutAnnotations(AnnotationFormat).HasAnnotation(AnnotationFormat) {
		t.Error("Annotation not cleared")
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		kind      Kind
		token     bool
		matchable bool
	}{
		{KindInvalid, false, false},
		{LocalDeclaration, false, true},
		{Invocation, false, true},
		{Other, false, true},
		{Identifier, true, false},
		{Punctuation, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			t.Parallel()

			if got := tc.kind.IsToken(); got != tc.token {
				t.Errorf("IsToken() = %t, want %t", got, tc.token)
			}

			if got := tc.kind.Matchable(); got != tc.matchable {
				t.Errorf("Matchable() = %t, want %t", got, tc.matchable)
			}
		})
	}
}
