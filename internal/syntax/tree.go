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

package syntax

import (
	"fmt"
	"iter"
	"sync"
)

// Span is a half-open byte range of source text.
type Span struct {
	Start int
	Len   int
}

// End returns the offset just past the span.
func (s Span) End() int { return s.Start + s.Len }

// Contains reports whether the offset pos lies inside s.
func (s Span) Contains(pos int) bool { return s.Start <= pos && pos < s.End() }

// Covers reports whether o lies completely inside s.
func (s Span) Covers(o Span) bool { return s.Start <= o.Start && o.End() <= s.End() }

// Overlaps reports whether s and o share at least one offset.
func (s Span) Overlaps(o Span) bool { return s.Start < o.End() && o.Start < s.End() }

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End()) }

// Tree is one version of a parsed source unit.
//
// Parent links and positions are kept in an index computed on first use,
// so the nodes themselves stay shareable across versions. A node must occur
// at most once in a tree.
type Tree struct {
	root *Node

	once  sync.Once
	index map[*Node]location
}

type location struct {
	parent *Node
	slot   int
	offset int // start including leading trivia
}

// NewTree creates a tree with the given root.
func NewTree(root *Node) *Tree {
	return &Tree{root: root}
}

// Root returns the root node of t.
func (t *Tree) Root() *Node { return t.root }

// Text returns the complete source text of t.
func (t *Tree) Text() string { return t.root.Text() }

func (t *Tree) locations() map[*Node]location {
	t.once.Do(func() {
		t.index = make(map[*Node]location)
		t.indexNode(t.root, nil, -1, 0)
	})

	return t.index
}

func (t *Tree) indexNode(n, parent *Node, slot, offset int) {
	if _, ok := t.index[n]; ok {
		return
	}

	t.index[n] = location{parent: parent, slot: slot, offset: offset}

	for i, c := range n.children {
		t.indexNode(c, n, i, offset)
		offset += c.width
	}
}

// Contains reports whether n is part of t.
func (t *Tree) Contains(n *Node) bool {
	_, ok := t.locations()[n]

	return ok
}

// Parent returns the parent of n, or nil for the root and for nodes not in t.
func (t *Tree) Parent(n *Node) *Node {
	return t.locations()[n].parent
}

// Ancestors yields the parents of n, innermost first.
func (t *Tree) Ancestors(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := t.Parent(n); p != nil; p = t.Parent(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// Path returns the nodes from the root down to n, or nil when n is not in t.
func (t *Tree) Path(n *Node) []*Node {
	if !t.Contains(n) {
		return nil
	}

	var path []*Node
	for p := n; p != nil; p = t.Parent(p) {
		path = append(path, p)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Slot returns the index of n among the children of its parent, or -1.
func (t *Tree) Slot(n *Node) int {
	if l, ok := t.locations()[n]; ok {
		return l.slot
	}

	return -1
}

// FullSpan returns the range of n including its outer trivia.
// The result is the zero span for nodes not in t.
func (t *Tree) FullSpan(n *Node) Span {
	l, ok := t.locations()[n]
	if !ok {
		return Span{}
	}

	return Span{Start: l.offset, Len: n.width}
}

// Span returns the range of n without its outer trivia.
// The result is the zero span for nodes not in t.
func (t *Tree) Span(n *Node) Span {
	l, ok := t.locations()[n]
	if !ok {
		return Span{}
	}

	return Span{Start: l.offset + len(n.LeadingTrivia()), Len: n.Width()}
}

// FindNodeAt returns the most deeply nested node whose span contains pos,
// or nil when pos lies outside the span of the root.
func (t *Tree) FindNodeAt(pos int) *Node {
	return t.find(func(s Span) bool { return s.Contains(pos) })
}

// FindNode returns the most deeply nested node whose span covers s.
// A node with exactly the span s is found when one exists.
func (t *Tree) FindNode(s Span) *Node {
	return t.find(func(n Span) bool { return n.Covers(s) })
}

func (t *Tree) find(match func(Span) bool) *Node {
	n := t.root
	if !match(t.Span(n)) {
		return nil
	}

descend:
	for {
		for _, c := range n.children {
			if match(t.Span(c)) {
				n = c

				continue descend
			}
		}

		return n
	}
}
