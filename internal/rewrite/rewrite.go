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

// Package rewrite substitutes nodes in immutable syntax trees.
//
// A rewrite copies only the path from the root to the replaced node, all other
// subtrees are shared with the original tree. The functions hold no state, so
// the same inputs always produce the same tree.
package rewrite

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/fixkit/internal/syntax"
)

var (
	// ErrNodeNotFound is returned when the target of an edit is not part of the tree.
	ErrNodeNotFound = errors.New("target node not found in tree")

	// ErrOverlappingEdits is returned when a batch contains edits with overlapping targets.
	ErrOverlappingEdits = errors.New("overlapping edits")

	// ErrInvalidEdit is returned for edits without target or replacement.
	ErrInvalidEdit = errors.New("invalid edit")
)

// Edit replaces a target node. The trivia of the target is preserved and
// reattached to the replacement.
type Edit struct {
	Target      *syntax.Node
	Replacement *syntax.Node

	// Leading and Trailing are the preserved trivia of the target.
	Leading  syntax.Trivia
	Trailing syntax.Trivia
}

// Replace creates an [Edit] substituting target with replacement,
// preserving the trivia of target.
func Replace(target, replacement *syntax.Node) Edit {
	return Edit{
		Target:      target,
		Replacement: replacement,
		Leading:     target.LeadingTrivia(),
		Trailing:    target.TrailingTrivia(),
	}
}

// Node returns the replacement with the preserved trivia attached.
func (e Edit) Node() *syntax.Node {
	return e.Replacement.WithTrivia(e.Leading, e.Trailing)
}

// Apply returns a new tree with the target of e substituted.
// The target is located by identity.
func Apply(tree *syntax.Tree, e Edit) (*syntax.Tree, error) {
	if e.Target == nil || e.Replacement == nil {
		return nil, ErrInvalidEdit
	}

	path := tree.Path(e.Target)
	if path == nil {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, e.Target.Kind())
	}

	n := e.Node().WithField(e.Target.Field())
	for i := len(path) - 1; i > 0; i-- {
		n = path[i-1].WithChild(tree.Slot(path[i]), n)
	}

	return syntax.NewTree(n), nil
}

// ApplyAll applies edits with pairwise disjoint targets in one batch.
// The result does not depend on the order of edits.
func ApplyAll(tree *syntax.Tree, edits ...Edit) (*syntax.Tree, error) {
	type located struct {
		Edit
		span syntax.Span
	}

	ls := make([]located, 0, len(edits))
	for _, e := range edits {
		if e.Target == nil || e.Replacement == nil {
			return nil, ErrInvalidEdit
		}

		if !tree.Contains(e.Target) {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, e.Target.Kind())
		}

		ls = append(ls, located{Edit: e, span: tree.FullSpan(e.Target)})
	}

	slices.SortFunc(ls, func(a, b located) int {
		return cmp.Or(cmp.Compare(a.span.Start, b.span.Start), cmp.Compare(a.span.Len, b.span.Len))
	})

	for i := 1; i < len(ls); i++ {
		if overlaps(ls[i-1].Target, ls[i-1].span, ls[i].Target, ls[i].span) {
			return nil, fmt.Errorf("%w: %s at %s and %s at %s", ErrOverlappingEdits,
				ls[i-1].Target.Kind(), ls[i-1].span, ls[i].Target.Kind(), ls[i].span)
		}
	}

	// Targets outside the path of earlier edits stay shared, so later lookups still succeed.
	result := tree
	for _, l := range ls {
		var err error
		if result, err = Apply(result, l.Edit); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func overlaps(a *syntax.Node, as syntax.Span, b *syntax.Node, bs syntax.Span) bool {
	if a == b || as.Overlaps(bs) {
		return true
	}

	// Empty nodes at the same offset are nested or identical.
	return as.Len == 0 && bs.Len == 0 && as.Start == bs.Start
}
