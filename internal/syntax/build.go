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
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned when front end elements are not properly nested.
var ErrMalformed = errors.New("malformed syntax element")

// EndOfFile is the native name of the empty token closing every built tree.
const EndOfFile = "end-of-file"

// Element describes a construct recognized by a grammar front end.
//
// Children must be ordered and lie within the range of their parent.
// Source text not covered by a child is split into keyword, punctuation and
// trivia by a small lexer.
type Element struct {
	Kind     Kind
	Field    Field
	Native   string
	Start    int
	End      int
	Children []Element

	// Origin is an opaque front end value reported back by [Build].
	Origin any
}

// Origins maps built nodes to the [Element.Origin] they were created from.
type Origins map[*Node]any

// Build creates a lossless tree for src from the root element.
// The root always covers the complete source.
func Build(src []byte, root Element) (*Tree, Origins, error) {
	root.Start, root.End = 0, len(src)

	b := builder{src: src}

	p, err := b.element(&root)
	if err != nil {
		return nil, nil, err
	}

	eof := len(b.tokens)
	b.tokens = append(b.tokens, lexeme{kind: Punctuation, start: len(src), end: len(src)})
	p.children = append(p.children, proto{token: eof, native: EndOfFile})

	b.distributeTrivia()

	origins := make(Origins)
	n := b.node(&p, origins)

	return NewTree(n), origins, nil
}

type lexeme struct {
	kind       Kind
	start, end int
	leading    string
	trailing   string
}

type proto struct {
	elem     *Element
	native   string
	token    int
	children []proto
}

type builder struct {
	src    []byte
	tokens []lexeme
}

func (b *builder) element(e *Element) (proto, error) {
	if e.Start < 0 || e.End > len(b.src) || e.Start > e.End {
		return proto{}, fmt.Errorf("%w: %s range [%d,%d) outside source", ErrMalformed, e.Kind, e.Start, e.End)
	}

	if e.Kind.IsToken() {
		return proto{elem: e, token: b.add(e.Kind, e.Start, e.End)}, nil
	}

	p := proto{elem: e, token: -1}
	pos := e.Start

	for i := range e.Children {
		c := &e.Children[i]
		if c.Start == c.End {
			continue
		}

		if c.Start < pos || c.End > e.End {
			return proto{}, fmt.Errorf("%w: %s child [%d,%d) of %s [%d,%d)",
				ErrMalformed, c.Kind, c.Start, c.End, e.Kind, e.Start, e.End)
		}

		p.children = b.lex(p.children, pos, c.Start)

		cp, err := b.element(c)
		if err != nil {
			return proto{}, err
		}

		p.children = append(p.children, cp)
		pos = c.End
	}

	p.children = b.lex(p.children, pos, e.End)

	return p, nil
}

func (b *builder) add(kind Kind, start, end int) int {
	b.tokens = append(b.tokens, lexeme{kind: kind, start: start, end: end})

	return len(b.tokens) - 1
}

// lex appends the tokens found in src[start:end], skipping whitespace and comments.
func (b *builder) lex(ps []proto, start, end int) []proto {
	src := b.src[:end]

	for i := start; i < end; {
		c := src[i]

		var (
			kind Kind
			j    int
		)

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v':
			i++

			continue

		case c == '/' && i+1 < end && src[i+1] == '/':
			if k := strings.IndexByte(string(src[i:]), '\n'); k >= 0 {
				i += k
			} else {
				i = end
			}

			continue

		case c == '/' && i+1 < end && src[i+1] == '*':
			if k := strings.Index(string(src[i+2:]), "*/"); k >= 0 {
				i += k + 4
			} else {
				i = end
			}

			continue

		case isWord(c):
			kind, j = Keyword, i+1
			for j < end && isWord(src[j]) {
				j++
			}

		case c == '"' || c == '\'' || c == '`':
			kind, j = Literal, quoted(src, i)

		case strings.IndexByte("()[]{},;", c) >= 0:
			kind, j = Punctuation, i+1

		default:
			kind, j = Punctuation, i+1
			for j < end && isOperator(src[j]) && !(src[j] == '/' && j+1 < end && (src[j+1] == '/' || src[j+1] == '*')) {
				j++
			}
		}

		ps = append(ps, proto{token: b.add(kind, i, j)})
		i = j
	}

	return ps
}

func isWord(c byte) bool {
	return c == '_' || c == '@' || c == '$' || c >= 0x80 ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isOperator(c byte) bool {
	return strings.IndexByte("=!<>:+-*/%&|^.?~", c) >= 0
}

func quoted(src []byte, i int) int {
	q := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case q:
			return j + 1

		case '\\':
			if q != '`' {
				j++
			}

		case '\n':
			if q != '`' {
				return j
			}
		}
	}

	return len(src)
}

func (b *builder) distributeTrivia() {
	prev := 0

	for i := range b.tokens {
		gap := string(b.src[prev:b.tokens[i].start])
		if i == 0 {
			b.tokens[i].leading = gap
		} else {
			b.tokens[i-1].trailing, b.tokens[i].leading = splitTrivia(gap)
		}

		prev = b.tokens[i].end
	}
}

func (b *builder) node(p *proto, origins Origins) *Node {
	var n *Node

	if p.token >= 0 {
		l := b.tokens[p.token]
		kind := l.kind

		if p.elem != nil {
			kind = p.elem.Kind
		}

		n = NewToken(kind, string(b.src[l.start:l.end]))
		n.leading, n.trailing = Trivia(l.leading), Trivia(l.trailing)
		n.width += len(l.leading) + len(l.trailing)
		n.native = p.native
	} else {
		children := make([]*Node, len(p.children))
		for i := range p.children {
			children[i] = b.node(&p.children[i], origins)
		}

		n = NewNode(p.elem.Kind, children...)
	}

	if e := p.elem; e != nil {
		n.field, n.native = e.Field, e.Native
		if e.Origin != nil {
			origins[n] = e.Origin
		}
	}

	return n
}
