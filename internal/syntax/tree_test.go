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

func TestFindNodeAt(t *testing.T) {
	t.Parallel()

	const src = "// head\nvar /* t */ y = \"a b\"\n"

	tree := build(t, src, declaration(8, 20, 21, 24, 29))

	testCases := [...]struct {
		name string
		pos  int
		kind Kind
		text string
	}{
		{"literal", 25, Literal, `"a b"`},
		{"name", 20, Identifier, "y"},
		{"keyword", 8, Keyword, "var"},
		{"between tokens", 21, VariableDeclaration, `y = "a b"`},
		{"inside comment", 14, LocalDeclaration, `var /* t */ y = "a b"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := tree.FindNodeAt(tc.pos)
			if n == nil {
				t.Fatalf("FindNodeAt(%d) = nil", tc.pos)
			}

			if n.Kind() != tc.kind || n.InnerText() != tc.text {
				t.Errorf("FindNodeAt(%d) = %s %q, want %s %q", tc.pos, n.Kind(), n.InnerText(), tc.kind, tc.text)
			}

			if s := tree.Span(n); !s.Contains(tc.pos) {
				t.Errorf("Span %s does not contain %d", s, tc.pos)
			}
		})
	}

	if n := tree.FindNodeAt(3); n != nil {
		t.Errorf("FindNodeAt(3) = %s, want nil for leading trivia", n.Kind())
	}
}

func TestFindNode(t *testing.T) {
	t.Parallel()

	tree := build(t, "var x = 1\n", declaration(0, 4, 5, 8, 9))

	decl := tree.Root().Child(0)

	if got := tree.FindNode(tree.Span(decl)); got != decl {
		t.Errorf("FindNode(%s) = %v, want declaration", tree.Span(decl), got)
	}

	if got := tree.FindNode(Span{Start: 4, Len: 3}); got.Kind() != VariableDeclaration {
		t.Errorf("FindNode([4,7)) = %s, want %s", got.Kind(), VariableDeclaration)
	}
}

func TestTreeNavigation(t *testing.T) {
	t.Parallel()

	tree := build(t, "var x = 1\n", declaration(0, 4, 5, 8, 9))

	decl := tree.Root().Child(0)
	value := Declarators(decl)[0].Value

	path := tree.Path(value)
	if len(path) != 4 || path[0] != tree.Root() || path[3] != value {
		t.Fatalf("Path() = %d nodes, want root, declaration, variables, value", len(path))
	}

	if got := tree.Parent(value); got != path[2] {
		t.Errorf("Parent() = %v, want %v", got, path[2])
	}

	if got := tree.Slot(value); got != 2 {
		t.Errorf("Slot() = %d, want 2", got)
	}

	var ancestors int
	for range tree.Ancestors(value) {
		ancestors++
	}

	if ancestors != 3 {
		t.Errorf("Got %d ancestors, want 3", ancestors)
	}

	if got, want := tree.Span(value), (Span{Start: 8, Len: 1}); got != want {
		t.Errorf("Span() = %s, want %s", got, want)
	}

	if got, want := tree.FullSpan(value), (Span{Start: 8, Len: 2}); got != want {
		t.Errorf("FullSpan() = %s, want %s", got, want)
	}

	foreign := NewToken(Literal, "2")
	if tree.Contains(foreign) || tree.Parent(foreign) != nil || tree.Path(foreign) != nil {
		t.Error("Foreign node reported as part of the tree")
	}
}

func TestSpanContainsEveryDescendant(t *testing.T) {
	t.Parallel()

	tree := build(t, "// c\nvar x = 1 /* x */\n", declaration(5, 9, 10, 13, 14))

	for n := range tree.Root().Preorder() {
		outer := tree.Span(n)
		for c := range n.Children() {
			if inner := tree.Span(c); !outer.Covers(inner) {
				t.Errorf("Span %s of %s does not cover %s child span %s", outer, n.Kind(), c.Kind(), inner)
			}
		}
	}
}
