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

package csfront

import (
	"fmt"

	"fillmore-labs.com/fixkit/internal/facts"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// WrittenOutside implements [facts.Provider].
//
// Writes are matched by name within the outermost enclosing function,
// so a shadowing declaration counts as a write too.
func (p *Provider) WrittenOutside(sym facts.Symbol, region *syntax.Node) (bool, error) {
	decl, ok := sym.Handle.(*syntax.Node)
	if !ok || !p.tree.Contains(decl) {
		return false, fmt.Errorf("%w: symbol %q not from analyzed tree", facts.ErrHostContract, sym.Name)
	}

	if err := p.check(region); err != nil {
		return false, err
	}

	scope := p.tree.Root()
	for a := range p.tree.Ancestors(decl) {
		if a.Kind() == syntax.FunctionDeclaration {
			scope = a
		}
	}

	inside := p.tree.Span(region)
	for _, site := range p.writesIn(scope)[sym.Name] {
		if !inside.Covers(site) {
			return true, nil
		}
	}

	return false, nil
}

func (p *Provider) writesIn(scope *syntax.Node) map[string][]syntax.Span {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writes[scope]; ok {
		return w
	}

	w := make(map[string][]syntax.Span)
	add := func(target *syntax.Node) {
		for id := range targets(target) {
			w[id.TokenText()] = append(w[id.TokenText()], p.tree.Span(id))
		}
	}

	for n := range scope.Preorder() {
		switch n.Kind() {
		case syntax.Assignment:
			add(n.ChildByField(syntax.FieldLeft))

		case syntax.Unary:
			if op := operator(n); op == "++" || op == "--" {
				add(n.ChildByField(syntax.FieldOperand))
			}

		case syntax.Argument:
			for c := range n.Children() {
				if c.Kind() == syntax.Keyword && (c.TokenText() == "ref" || c.TokenText() == "out") {
					add(syntax.ArgumentExpression(n))

					break
				}
			}
		}
	}

	p.writes[scope] = w

	return w
}

// targets yields the local names assigned by an assignment target.
// Tuples are decomposed, member and element accesses are not local writes.
func targets(n *syntax.Node) func(yield func(*syntax.Node) bool) {
	return func(yield func(*syntax.Node) bool) {
		n = syntax.Unparen(n)
		if n == nil {
			return
		}

		switch n.Kind() {
		case syntax.Identifier:
			yield(n)

		case syntax.Other:
			if n.Native() != "tuple_expression" && n.Native() != "declaration_expression" {
				return
			}

			for c := range n.Children() {
				if c.Kind() == syntax.Argument {
					c = syntax.ArgumentExpression(c)
				}

				for id := range targets(c) {
					if !yield(id) {
						return
					}
				}
			}
		}
	}
}
