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
	"context"
	"fmt"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/facts"
	"fillmore-labs.com/fixkit/internal/rewrite"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// Set is a validated collection of matchers and fixers.
// It is immutable and safe for concurrent use.
type Set struct {
	registry *diag.Registry
	matchers map[syntax.Kind][]Matcher
	fixers   map[string]Fixer
}

// NewSet registers the descriptors of all matchers and validates the fixers.
// All problems are configuration errors.
func NewSet(matchers []Matcher, fixers []Fixer) (*Set, error) {
	descriptors := make([]*diag.Descriptor, 0, len(matchers))
	for _, m := range matchers {
		descriptors = append(descriptors, m.Descriptor())
	}

	registry, err := diag.NewRegistry(descriptors...)
	if err != nil {
		return nil, err
	}

	s := &Set{
		registry: registry,
		matchers: make(map[syntax.Kind][]Matcher),
		fixers:   make(map[string]Fixer, len(fixers)),
	}

	for _, m := range matchers {
		kinds := m.Kinds()
		if len(kinds) == 0 {
			return nil, fmt.Errorf("%w: matcher %q has no kinds", ErrUnsupportedKind, m.Descriptor().ID)
		}

		for _, k := range kinds {
			if !k.Matchable() {
				return nil, fmt.Errorf("%w %s for matcher %q", ErrUnsupportedKind, k, m.Descriptor().ID)
			}

			s.matchers[k] = append(s.matchers[k], m)
		}
	}

	for _, f := range fixers {
		id := f.ID()
		if _, ok := registry.Lookup(id); !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownFixer, id)
		}

		if _, ok := s.fixers[id]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateFixer, id)
		}

		if len(f.Kinds()) == 0 || slices.Contains(f.Kinds(), syntax.KindInvalid) {
			return nil, fmt.Errorf("%w for fixer %q", ErrUnsupportedKind, id)
		}

		s.fixers[id] = f
	}

	return s, nil
}

// Registry returns the registry holding the descriptors of this set.
func (s *Set) Registry() *diag.Registry { return s.registry }

// Fixable reports whether a fix is available for diagnostics with the given ID.
func (s *Set) Fixable(id string) bool {
	_, ok := s.fixers[id]

	return ok
}

// NewPass prepares the analysis of tree. Facts are memoized for the lifetime of the pass.
func (s *Set) NewPass(tree *syntax.Tree, provider facts.Provider, grammar Grammar, path string) *Pass {
	return &Pass{
		Tree:     tree,
		Facts:    facts.Memoize(provider),
		Grammar:  grammar,
		Path:     path,
		registry: s.registry,
	}
}

// Run feeds every node of the tree to the matchers registered for its kind.
//
// A canceled context stops the run before the next matcher is invoked. The
// diagnostics found so far are returned together with the context's error.
func (s *Set) Run(ctx context.Context, p *Pass) ([]diag.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "match")
	defer task.End()

	var diagnostics []diag.Diagnostic

	for n := range p.Tree.Root().Preorder() {
		for _, m := range s.matchers[n.Kind()] {
			if err := ctx.Err(); err != nil {
				return diagnostics, err
			}

			var (
				d     diag.Diagnostic
				found bool
				err   error
			)

			trace.WithRegion(ctx, m.Descriptor().ID, func() {
				d, found, err = m.Match(p, n)
			})

			if err != nil {
				return diagnostics, fmt.Errorf("%s at %s: %w", m.Descriptor().ID, p.Tree.Span(n), err)
			}

			if found {
				diagnostics = append(diagnostics, d)
			}
		}
	}

	return diagnostics, nil
}

// Action is one available fix.
type Action struct {
	Title string
	Edit  rewrite.Edit

	tree    *syntax.Tree
	grammar Grammar
}

// Apply returns the fixed tree. Annotated replacements are formatted by the grammar.
func (a Action) Apply() (*syntax.Tree, error) {
	tree, err := rewrite.Apply(a.tree, a.Edit)
	if err != nil {
		return nil, err
	}

	return rewrite.Format(tree, a.grammar)
}

// TextEdit returns the fix as a replacement of source text.
func (a Action) TextEdit() (rewrite.TextEdit, error) {
	formatted, err := rewrite.Format(syntax.NewTree(a.Edit.Replacement), a.grammar)
	if err != nil {
		return rewrite.TextEdit{}, err
	}

	e := a.Edit
	e.Replacement = formatted.Root()

	return e.TextEdit(a.tree)
}

// Fixes returns the fixes available for d, exactly one when a fixer handles d's ID.
func (s *Set) Fixes(p *Pass, d diag.Diagnostic) ([]Action, error) {
	f, ok := s.fixers[d.ID]
	if !ok {
		return nil, nil
	}

	n := fixTarget(p.Tree, d.Location.Span, f.Kinds())
	if n == nil {
		return nil, fmt.Errorf("%w: %s at %s", ErrNoFixTarget, d.ID, d.Location.Span)
	}

	edit, err := f.Fix(p, n)
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", d.ID, d.Location.Span, err)
	}

	return []Action{{Title: f.Title(), Edit: edit, tree: p.Tree, grammar: p.Grammar}}, nil
}

// fixTarget finds the node of one of the kinds spanning exactly s.
func fixTarget(tree *syntax.Tree, s syntax.Span, kinds []syntax.Kind) *syntax.Node {
	for n := tree.FindNode(s); n != nil && tree.Span(n) == s; n = tree.Parent(n) {
		if slices.Contains(kinds, n.Kind()) {
			return n
		}
	}

	return nil
}
