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

package facts

import (
	"sync"

	"fillmore-labs.com/fixkit/internal/syntax"
)

// Memo caches the answers of a [Provider] for the duration of one analysis pass.
// It is safe for concurrent use. Errors are cached like answers.
type Memo struct {
	p Provider

	mu    sync.Mutex
	cache map[queryKey]answer
}

type query uint8

const (
	queryConstant query = iota
	queryType
	queryConversion
	querySymbol
	queryWritten
)

type queryKey struct {
	node  *syntax.Node
	query query
	arg   string
}

type answer struct {
	constant   Constant
	typeInfo   TypeInfo
	conversion Conversion
	symbol     Symbol
	ok         bool
	err        error
}

// Memoize wraps p with a fresh pass-scoped cache. A [*Memo] is unwrapped
// first, so caches never outlive the pass they were created for.
func Memoize(p Provider) *Memo {
	if m, ok := p.(*Memo); ok {
		p = m.p
	}

	return &Memo{p: p, cache: make(map[queryKey]answer)}
}

func (m *Memo) lookup(key queryKey, compute func() answer) answer {
	m.mu.Lock()
	a, ok := m.cache[key]
	m.mu.Unlock()

	if ok {
		return a
	}

	a = compute()

	m.mu.Lock()
	m.cache[key] = a
	m.mu.Unlock()

	return a
}

// ConstantValue implements [Provider].
func (m *Memo) ConstantValue(expr *syntax.Node) (Constant, bool, error) {
	a := m.lookup(queryKey{node: expr, query: queryConstant}, func() answer {
		c, ok, err := m.p.ConstantValue(expr)

		return answer{constant: c, ok: ok, err: err}
	})

	return a.constant, a.ok, a.err
}

// TypeOf implements [Provider].
func (m *Memo) TypeOf(n *syntax.Node) (TypeInfo, error) {
	a := m.lookup(queryKey{node: n, query: queryType}, func() answer {
		t, err := m.p.TypeOf(n)

		return answer{typeInfo: t, err: err}
	})

	return a.typeInfo, a.err
}

// ClassifyConversion implements [Provider].
func (m *Memo) ClassifyConversion(expr *syntax.Node, to Type) (Conversion, error) {
	a := m.lookup(queryKey{node: expr, query: queryConversion, arg: to.Name}, func() answer {
		c, err := m.p.ClassifyConversion(expr, to)

		return answer{conversion: c, err: err}
	})

	return a.conversion, a.err
}

// SymbolOf implements [Provider].
func (m *Memo) SymbolOf(n *syntax.Node) (Symbol, bool, error) {
	a := m.lookup(queryKey{node: n, query: querySymbol}, func() answer {
		s, ok, err := m.p.SymbolOf(n)

		return answer{symbol: s, ok: ok, err: err}
	})

	return a.symbol, a.ok, a.err
}

// WrittenOutside implements [Provider].
func (m *Memo) WrittenOutside(sym Symbol, region *syntax.Node) (bool, error) {
	a := m.lookup(queryKey{node: region, query: queryWritten, arg: sym.ID}, func() answer {
		w, err := m.p.WrittenOutside(sym, region)

		return answer{ok: w, err: err}
	})

	return a.ok, a.err
}

// Len returns the number of cached answers.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.cache)
}
