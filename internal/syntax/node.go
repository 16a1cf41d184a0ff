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
	"iter"
	"slices"
	"strings"
)

// Node is an immutable element of a syntax tree.
//
// Nodes hold no parent links or absolute positions, so a subtree can be shared
// between several [Tree] versions. Tokens are leaves and carry source text and
// trivia, every other node derives its text from its children.
type Node struct {
	kind        Kind
	field       Field
	annotations Annotation
	native      string
	text        string
	leading     Trivia
	trailing    Trivia
	children    []*Node
	width       int
}

// NewToken creates a leaf node with the given source text.
func NewToken(kind Kind, text string) *Node {
	return &Node{kind: kind, text: text, width: len(text)}
}

// NewNode creates an inner node owning the given children.
func NewNode(kind Kind, children ...*Node) *Node {
	n := &Node{kind: kind, children: slices.Clip(children)}
	for _, c := range children {
		n.width += c.width
	}

	return n
}

// Kind returns the grammar-neutral tag of n.
func (n *Node) Kind() Kind { return n.kind }

// Field returns the role of n inside its parent.
func (n *Node) Field() Field { return n.field }

// Native returns the front end specific name of the construct, if known.
func (n *Node) Native() string { return n.native }

// IsToken reports whether n is a leaf carrying source text.
func (n *Node) IsToken() bool { return n.children == nil && n.kind.IsToken() }

// TokenText returns the text of a token without trivia.
func (n *Node) TokenText() string { return n.text }

// Annotations returns the annotations set on n.
func (n *Node) Annotations() Annotation { return n.annotations }

// HasAnnotation reports whether all bits of a are set on n.
func (n *Node) HasAnnotation(a Annotation) bool { return n.annotations&a == a }

// NumChildren returns the number of children of n.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child of n.
func (n *Node) Child(i int) *Node { return n.children[i] }

// Children yields the children of n in source order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildByField returns the first child with the given role, or nil.
func (n *Node) ChildByField(f Field) *Node {
	for _, c := range n.children {
		if c.field == f {
			return c
		}
	}

	return nil
}

// ChildrenByField yields all children with the given role.
func (n *Node) ChildrenByField(f Field) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if c.field == f && !yield(c) {
				return
			}
		}
	}
}

// Preorder yields n and all its descendants in depth-first order.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, c := range n.children {
		if !c.preorder(yield) {
			return false
		}
	}

	return true
}

// Tokens yields the tokens of n in source order.
func (n *Node) Tokens() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := range n.Preorder() {
			if c.IsToken() && !yield(c) {
				return
			}
		}
	}
}

// FirstToken returns the first token of n, or nil when n has none.
func (n *Node) FirstToken() *Node {
	for t := range n.Tokens() {
		return t
	}

	return nil
}

// LastToken returns the last token of n, or nil when n has none.
func (n *Node) LastToken() *Node {
	if n.IsToken() {
		return n
	}

	for _, c := range slices.Backward(n.children) {
		if t := c.LastToken(); t != nil {
			return t
		}
	}

	return nil
}

// LeadingTrivia returns the leading trivia of the first token of n.
func (n *Node) LeadingTrivia() Trivia {
	if t := n.FirstToken(); t != nil {
		return t.leading
	}

	return ""
}

// TrailingTrivia returns the trailing trivia of the last token of n.
func (n *Node) TrailingTrivia() Trivia {
	if t := n.LastToken(); t != nil {
		return t.trailing
	}

	return ""
}

// FullWidth is the length of the text of n including its outer trivia.
func (n *Node) FullWidth() int { return n.width }

// Width is the length of the text of n without its outer trivia.
func (n *Node) Width() int {
	return n.width - len(n.LeadingTrivia()) - len(n.TrailingTrivia())
}

// Text returns the source text of n including its outer trivia.
func (n *Node) Text() string {
	var b strings.Builder
	b.Grow(n.width)

	for t := range n.Tokens() {
		b.WriteString(string(t.leading))
		b.WriteString(t.text)
		b.WriteString(string(t.trailing))
	}

	return b.String()
}

// InnerText returns the source text of n without its outer trivia.
func (n *Node) InnerText() string {
	text := n.Text()

	return text[len(n.LeadingTrivia()) : len(text)-len(n.TrailingTrivia())]
}

// WithField returns a copy of n with the given role.
func (n *Node) WithField(f Field) *Node {
	if n.field == f {
		return n
	}

	c := *n
	c.field = f

	return &c
}

// WithNative returns a copy of n with the given front end name.
func (n *Node) WithNative(native string) *Node {
	c := *n
	c.native = native

	return &c
}

// WithAnnotations returns a copy of n with the additional annotations set.
func (n *Node) WithAnnotations(a Annotation) *Node {
	c := *n
	c.annotations |= a

	return &c
}

// WithoutAnnotations returns a copy of n with the given annotations cleared.
func (n *Node) WithoutAnnotations(a Annotation) *Node {
	c := *n
	c.annotations &^= a

	return &c
}

// WithLeadingTrivia returns a copy of n whose first token has the given leading trivia.
func (n *Node) WithLeadingTrivia(t Trivia) *Node {
	if n.IsToken() {
		c := *n
		c.width += len(t) - len(c.leading)
		c.leading = t

		return &c
	}

	for i, ch := range n.children {
		if ch.FirstToken() != nil {
			return n.WithChild(i, ch.WithLeadingTrivia(t))
		}
	}

	return n
}

// WithTrailingTrivia returns a copy of n whose last token has the given trailing trivia.
func (n *Node) WithTrailingTrivia(t Trivia) *Node {
	if n.IsToken() {
		c := *n
		c.width += len(t) - len(c.trailing)
		c.trailing = t

		return &c
	}

	for i, ch := range slices.Backward(n.children) {
		if ch.LastToken() != nil {
			return n.WithChild(i, ch.WithTrailingTrivia(t))
		}
	}

	return n
}

// WithTrivia returns a copy of n with the outer trivia replaced.
func (n *Node) WithTrivia(leading, trailing Trivia) *Node {
	return n.WithLeadingTrivia(leading).WithTrailingTrivia(trailing)
}

// WithChild returns a copy of n with the i-th child replaced by child.
// The replacement inherits the role of the child it replaces.
// All other children are shared with n.
func (n *Node) WithChild(i int, child *Node) *Node {
	child = child.WithField(n.children[i].field)

	c := *n
	c.children = slices.Clone(n.children)
	c.children[i] = child
	c.width += child.width - n.children[i].width

	return &c
}

// WithChildren returns a copy of n with a new list of children.
func (n *Node) WithChildren(children ...*Node) *Node {
	c := *n
	c.children = slices.Clip(children)
	c.width = 0

	for _, ch := range children {
		c.width += ch.width
	}

	return &c
}

// IndexOf returns the position of child among the children of n, or -1.
func (n *Node) IndexOf(child *Node) int {
	return slices.Index(n.children, child)
}
