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

// Package factstest provides a table driven [facts.Provider] for tests.
package factstest

import (
	"fmt"
	"sync/atomic"

	"fillmore-labs.com/fixkit/internal/facts"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// Provider answers queries from explicit tables. Missing entries mean "no fact".
type Provider struct {
	Tree        *syntax.Tree
	Constants   map[*syntax.Node]facts.Constant
	Types       map[*syntax.Node]facts.TypeInfo
	Conversions map[*syntax.Node]facts.Conversion
	Symbols     map[*syntax.Node]facts.Symbol

	// Writes lists the assignment sites per symbol ID.
	Writes map[string][]*syntax.Node

	// Queries counts the answered queries.
	Queries atomic.Int64
}

var _ facts.Provider = (*Provider)(nil)

// New creates an empty [Provider] for tree.
func New(tree *syntax.Tree) *Provider {
	return &Provider{
		Tree:        tree,
		Constants:   make(map[*syntax.Node]facts.Constant),
		Types:       make(map[*syntax.Node]facts.TypeInfo),
		Conversions: make(map[*syntax.Node]facts.Conversion),
		Symbols:     make(map[*syntax.Node]facts.Symbol),
		Writes:      make(map[string][]*syntax.Node),
	}
}

func (p *Provider) check(n *syntax.Node) error {
	p.Queries.Add(1)

	if !p.Tree.Contains(n) {
		return fmt.Errorf("%w: node not in tree", facts.ErrHostContract)
	}

	return nil
}

// ConstantValue implements [facts.Provider].
func (p *Provider) ConstantValue(expr *syntax.Node) (facts.Constant, bool, error) {
	if err := p.check(expr); err != nil {
		return facts.Constant{}, false, err
	}

	c, ok := p.Constants[expr]

	return c, ok, nil
}

// TypeOf implements [facts.Provider].
func (p *Provider) TypeOf(n *syntax.Node) (facts.TypeInfo, error) {
	if err := p.check(n); err != nil {
		return facts.TypeInfo{}, err
	}

	return p.Types[n], nil
}

// ClassifyConversion implements [facts.Provider].
func (p *Provider) ClassifyConversion(expr *syntax.Node, _ facts.Type) (facts.Conversion, error) {
	if err := p.check(expr); err != nil {
		return facts.Conversion{}, err
	}

	return p.Conversions[expr], nil
}

// SymbolOf implements [facts.Provider].
func (p *Provider) SymbolOf(n *syntax.Node) (facts.Symbol, bool, error) {
	if err := p.check(n); err != nil {
		return facts.Symbol{}, false, err
	}

	s, ok := p.Symbols[n]

	return s, ok, nil
}

// WrittenOutside implements [facts.Provider].
func (p *Provider) WrittenOutside(sym facts.Symbol, region *syntax.Node) (bool, error) {
	if err := p.check(region); err != nil {
		return false, err
	}

	outer := p.Tree.Span(region)
	for _, w := range p.Writes[sym.ID] {
		if !outer.Covers(p.Tree.Span(w)) {
			return true, nil
		}
	}

	return false, nil
}
