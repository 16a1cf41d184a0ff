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

package rewrite

import (
	"fmt"
	"iter"

	"fillmore-labs.com/fixkit/internal/syntax"
)

// Formatter reformats a subtree according to the conventions of a language.
type Formatter interface {
	Format(n *syntax.Node) (*syntax.Node, error)
}

// FormatterFunc adapts a function to the [Formatter] interface.
type FormatterFunc func(n *syntax.Node) (*syntax.Node, error)

// Format implements [Formatter].
func (f FormatterFunc) Format(n *syntax.Node) (*syntax.Node, error) { return f(n) }

// Format replaces every outermost node annotated with [syntax.AnnotationFormat]
// by its formatted version. The annotation is cleared afterwards.
func Format(tree *syntax.Tree, f Formatter) (*syntax.Tree, error) {
	var edits []Edit

	for n := range annotated(tree.Root()) {
		formatted, err := f.Format(n)
		if err != nil {
			return nil, fmt.Errorf("format %s at %s: %w", n.Kind(), tree.Span(n), err)
		}

		formatted = formatted.WithoutAnnotations(syntax.AnnotationFormat)
		edits = append(edits, Edit{
			Target:      n,
			Replacement: formatted,
			Leading:     n.LeadingTrivia(),
			Trailing:    n.TrailingTrivia(),
		})
	}

	if len(edits) == 0 {
		return tree, nil
	}

	return ApplyAll(tree, edits...)
}

func annotated(n *syntax.Node) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		var walk func(n *syntax.Node) bool
		walk = func(n *syntax.Node) bool {
			if n.HasAnnotation(syntax.AnnotationFormat) {
				return yield(n)
			}

			for c := range n.Children() {
				if !walk(c) {
					return false
				}
			}

			return true
		}

		walk(n)
	}
}
