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

package gofront

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sync"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/fixkit/internal/facts"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// Provider answers semantic queries from the type checker.
type Provider struct {
	in      *inspector.Inspector
	info    *types.Info
	tree    *syntax.Tree
	origins syntax.Origins

	writesOnce sync.Once
	writes     map[types.Object][]token.Pos
}

var _ facts.Provider = (*Provider)(nil)

// NewProvider creates a [Provider] for a tree built by [Convert].
func NewProvider(in *inspector.Inspector, info *types.Info, tree *syntax.Tree, origins syntax.Origins) *Provider {
	return &Provider{in: in, info: info, tree: tree, origins: origins}
}

// node returns the AST node n was built from, or nil for lexed tokens.
func (p *Provider) node(n *syntax.Node) (ast.Node, error) {
	if !p.tree.Contains(n) {
		return nil, fmt.Errorf("%w: %s not in analyzed tree", facts.ErrHostContract, n.Kind())
	}

	o, ok := p.origins[n].(origin)
	if !ok {
		return nil, nil
	}

	return o.cursor(p.in).Node(), nil
}

func (p *Provider) expr(n *syntax.Node) (ast.Expr, error) {
	node, err := p.node(n)
	if err != nil {
		return nil, err
	}

	e, _ := node.(ast.Expr)

	return e, nil
}

// ConstantValue implements [facts.Provider]. nil is not a constant in Go.
func (p *Provider) ConstantValue(n *syntax.Node) (facts.Constant, bool, error) {
	e, err := p.expr(n)
	if err != nil || e == nil {
		return facts.Constant{}, false, err
	}

	tv, ok := p.info.Types[e]
	if !ok || tv.Value == nil {
		return facts.Constant{}, false, nil
	}

	var kind facts.ConstKind
	switch tv.Value.Kind() {
	case constant.Bool:
		kind = facts.ConstBool

	case constant.String:
		kind = facts.ConstString

	case constant.Int:
		kind = facts.ConstInt
		if b, ok := tv.Type.(*types.Basic); ok && b.Kind() == types.UntypedRune {
			kind = facts.ConstChar
		}

	case constant.Float:
		kind = facts.ConstFloat

	case constant.Complex:
		kind = facts.ConstComplex

	default:
		return facts.Constant{}, false, nil
	}

	return facts.Constant{Kind: kind, Value: tv.Value}, true, nil
}

// TypeOf implements [facts.Provider].
//
// For untyped constant expressions the declared type is the untyped type and
// the converted type is the type the constant assumes in its context.
func (p *Provider) TypeOf(n *syntax.Node) (facts.TypeInfo, error) {
	node, err := p.node(n)
	if err != nil || node == nil {
		return facts.TypeInfo{}, err
	}

	if id, ok := node.(*ast.Ident); ok {
		if obj := p.info.Defs[id]; obj != nil {
			t := typeOf(obj.Type())

			return facts.TypeInfo{Declared: t, Converted: t}, nil
		}
	}

	e, ok := node.(ast.Expr)
	if !ok {
		return facts.TypeInfo{}, nil
	}

	tv, ok := p.info.Types[e]
	if !ok {
		return facts.TypeInfo{}, nil
	}

	converted := typeOf(tv.Type)
	declared := converted

	if lit, ok := ast.Unparen(e).(*ast.BasicLit); ok {
		declared = typeOf(untyped(lit.Kind))
	}

	return facts.TypeInfo{Declared: declared, Converted: converted}, nil
}

func untyped(tok token.Token) types.Type {
	switch tok {
	case token.INT:
		return types.Typ[types.UntypedInt]

	case token.FLOAT:
		return types.Typ[types.UntypedFloat]

	case token.IMAG:
		return types.Typ[types.UntypedComplex]

	case token.CHAR:
		return types.Typ[types.UntypedRune]

	default:
		return types.Typ[types.UntypedString]
	}
}

// typeOf describes t. Every type with an underlying string type can hold
// string constants, so these are all treated like the string type.
func typeOf(t types.Type) facts.Type {
	if t == nil {
		return facts.Type{}
	}

	ft := facts.Type{Name: types.TypeString(t, nil), Handle: t}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch {
		case u.Info()&types.IsString != 0:
			ft.Special = facts.SpecialString

		case u.Kind() == types.UntypedNil, u.Kind() == types.UnsafePointer:
			ft.Reference = true
		}

	case *types.Interface:
		ft.Reference = true
		if u.Empty() {
			ft.Special = facts.SpecialObject
		}

	case *types.Pointer, *types.Map, *types.Slice, *types.Chan, *types.Signature:
		ft.Reference = true
	}

	return ft
}

// ClassifyConversion implements [facts.Provider]. Go has no user-defined conversions.
func (p *Provider) ClassifyConversion(n *syntax.Node, to facts.Type) (facts.Conversion, error) {
	e, err := p.expr(n)
	if err != nil || e == nil {
		return facts.Conversion{}, err
	}

	target, ok := to.Handle.(types.Type)
	if !ok {
		return facts.Conversion{}, nil
	}

	tv, ok := p.info.Types[e]
	if !ok || tv.Type == nil {
		return facts.Conversion{}, nil
	}

	return facts.Conversion{Exists: types.AssignableTo(tv.Type, target)}, nil
}

// SymbolOf implements [facts.Provider]. Invocations resolve to the called function.
func (p *Provider) SymbolOf(n *syntax.Node) (facts.Symbol, bool, error) {
	node, err := p.node(n)
	if err != nil || node == nil {
		return facts.Symbol{}, false, err
	}

	var obj types.Object

	switch node := node.(type) {
	case *ast.CallExpr:
		obj = typeutil.Callee(p.info, node)

	case *ast.Ident:
		obj = p.info.ObjectOf(node)
	}

	if obj == nil {
		return facts.Symbol{}, false, nil
	}

	return symbolOf(obj), true, nil
}

func symbolOf(obj types.Object) facts.Symbol {
	s := facts.Symbol{
		ID:        fmt.Sprintf("%s@%d", obj.Name(), obj.Pos()),
		Name:      obj.Name(),
		Qualified: obj.Name(),
		Handle:    obj,
	}

	if pkg := obj.Pkg(); pkg != nil {
		s.ID = pkg.Path() + "." + s.ID
	}

	switch obj := obj.(type) {
	case *types.Func:
		s.Qualified = obj.FullName()
		s.Kind = facts.SymbolFunction

		if sig, ok := obj.Type().(*types.Signature); ok && sig.Recv() != nil {
			s.Kind = facts.SymbolMethod
		}

	case *types.Var:
		if obj.Pkg() != nil && obj.Parent() != nil && obj.Parent() != obj.Pkg().Scope() {
			s.Kind = facts.SymbolLocal
		}

	case *types.PkgName:
		s.Qualified = obj.Imported().Path()
		s.Kind = facts.SymbolNamespace
	}

	return s
}

// WrittenOutside implements [facts.Provider].
func (p *Provider) WrittenOutside(sym facts.Symbol, region *syntax.Node) (bool, error) {
	node, err := p.node(region)
	if err != nil {
		return false, err
	}

	obj, ok := sym.Handle.(types.Object)
	if !ok || node == nil {
		return false, fmt.Errorf("%w: symbol %q not from this front end", facts.ErrHostContract, sym.ID)
	}

	p.writesOnce.Do(p.indexWrites)

	for _, pos := range p.writes[obj] {
		if pos < node.Pos() || pos >= node.End() {
			return true, nil
		}
	}

	return false, nil
}
