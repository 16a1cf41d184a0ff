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

// Package csfront adapts C# sources parsed with tree-sitter to the matching kernel.
//
// C# sources are not compiled, so the [Provider] derives its facts from the
// syntax alone: predefined types, literals, constant locals and using directives.
package csfront

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"strings"
	"sync"

	"fillmore-labs.com/fixkit/internal/facts"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// ErrNoCGO is returned when C# parsing is unavailable due to missing CGO.
var ErrNoCGO = errors.New("C# parsing requires CGO (tree-sitter)")

// maxDepth limits the resolution of constant locals referring to each other.
const maxDepth = 16

// Provider answers semantic queries syntactically.
type Provider struct {
	tree *syntax.Tree

	usingsOnce sync.Once
	namespaces map[string]bool
	aliases    map[string]string

	mu     sync.Mutex
	writes map[*syntax.Node]map[string][]syntax.Span
}

var _ facts.Provider = (*Provider)(nil)

// NewProvider creates a [Provider] for a tree built by [Parse].
func NewProvider(tree *syntax.Tree) *Provider {
	return &Provider{tree: tree, writes: make(map[*syntax.Node]map[string][]syntax.Span)}
}

func (p *Provider) check(n *syntax.Node) error {
	if n == nil || !p.tree.Contains(n) {
		return fmt.Errorf("%w: node not in analyzed tree", facts.ErrHostContract)
	}

	return nil
}

// ConstantValue implements [facts.Provider].
func (p *Provider) ConstantValue(expr *syntax.Node) (facts.Constant, bool, error) {
	if err := p.check(expr); err != nil {
		return facts.Constant{}, false, err
	}

	c, _, ok := p.eval(expr, 0)

	return c, ok, nil
}

func (p *Provider) eval(n *syntax.Node, depth int) (facts.Constant, facts.Type, bool) {
	if n == nil || depth > maxDepth {
		return facts.Constant{}, facts.Type{}, false
	}

	switch n.Kind() {
	case syntax.Literal:
		c, t, err := literal(n.Native(), n.TokenText())

		return c, t, err == nil

	case syntax.Parenthesized:
		return p.eval(syntax.Unparen(n), depth)

	case syntax.Unary:
		return p.unary(n, depth)

	case syntax.Binary:
		return p.binary(n, depth)

	case syntax.Identifier:
		decl := p.resolve(n)
		if decl == nil || !isConst(p.tree.Parent(p.tree.Parent(p.tree.Parent(decl)))) {
			return facts.Constant{}, facts.Type{}, false
		}

		c, _, ok := p.eval(p.tree.Parent(decl).ChildByField(syntax.FieldValue), depth+1)
		if !ok {
			return facts.Constant{}, facts.Type{}, false
		}

		return c, p.declaredType(decl), true

	default:
		return facts.Constant{}, facts.Type{}, false
	}
}

// operator returns the text of the first operator token directly below n.
func operator(n *syntax.Node) string {
	for c := range n.Children() {
		if c.Kind() == syntax.Punctuation && c.TokenText() != "" {
			return c.TokenText()
		}
	}

	return ""
}

func (p *Provider) unary(n *syntax.Node, depth int) (facts.Constant, facts.Type, bool) {
	if n.Native() != "prefix_unary_expression" {
		return facts.Constant{}, facts.Type{}, false
	}

	c, t, ok := p.eval(n.ChildByField(syntax.FieldOperand), depth)
	if !ok {
		return facts.Constant{}, facts.Type{}, false
	}

	numeric := c.Kind == facts.ConstInt || c.Kind == facts.ConstFloat || c.Kind == facts.ConstChar
	if c.Kind == facts.ConstChar {
		c.Kind, t = facts.ConstInt, predefined(typeInt32)
	}

	switch op := operator(n); {
	case op == "-" && numeric:
		return facts.Constant{Kind: c.Kind, Value: constant.UnaryOp(token.SUB, c.Value, 0)}, t, true

	case op == "+" && numeric:
		return c, t, true

	case op == "!" && c.Kind == facts.ConstBool:
		return facts.Constant{Kind: c.Kind, Value: constant.UnaryOp(token.NOT, c.Value, 0)}, t, true

	case op == "~" && c.Kind == facts.ConstInt:
		var prec uint
		switch t.Name {
		case typeUInt32:
			prec = 32

		case typeUInt64:
			prec = 64
		}

		return facts.Constant{Kind: c.Kind, Value: constant.UnaryOp(token.XOR, c.Value, prec)}, t, true

	default:
		return facts.Constant{}, facts.Type{}, false
	}
}

var binaryOps = map[string]token.Token{
	"+": token.ADD, "-": token.SUB, "*": token.MUL, "/": token.QUO, "%": token.REM,
	"&": token.AND, "|": token.OR, "^": token.XOR,
	"==": token.EQL, "!=": token.NEQ, "<": token.LSS, "<=": token.LEQ, ">": token.GTR, ">=": token.GEQ,
}

func (p *Provider) binary(n *syntax.Node, depth int) (facts.Constant, facts.Type, bool) {
	x, xt, ok := p.eval(n.ChildByField(syntax.FieldLeft), depth)
	if !ok {
		return facts.Constant{}, facts.Type{}, false
	}

	y, yt, ok := p.eval(n.ChildByField(syntax.FieldRight), depth)
	if !ok {
		return facts.Constant{}, facts.Type{}, false
	}

	op := operator(n)

	switch {
	case x.Kind == facts.ConstString && y.Kind == facts.ConstString:
		if op != "+" {
			return facts.Constant{}, facts.Type{}, false
		}

		return facts.Constant{Kind: facts.ConstString, Value: constant.BinaryOp(x.Value, token.ADD, y.Value)}, xt, true

	case x.Kind == facts.ConstBool && y.Kind == facts.ConstBool:
		var v constant.Value

		switch op {
		case "&&", "&":
			v = constant.BinaryOp(x.Value, token.LAND, y.Value)

		case "||", "|":
			v = constant.BinaryOp(x.Value, token.LOR, y.Value)

		case "==":
			v = constant.MakeBool(constant.Compare(x.Value, token.EQL, y.Value))

		case "!=", "^":
			v = constant.MakeBool(constant.Compare(x.Value, token.NEQ, y.Value))

		default:
			return facts.Constant{}, facts.Type{}, false
		}

		return facts.Constant{Kind: facts.ConstBool, Value: v}, xt, true
	}

	if !arithmetic(x.Kind) || !arithmetic(y.Kind) {
		return facts.Constant{}, facts.Type{}, false
	}

	t := predefined(promote(xt.Name, yt.Name))
	integral := x.Kind != facts.ConstFloat && y.Kind != facts.ConstFloat

	switch op {
	case "<<", ">>":
		s, ok := constant.Int64Val(y.Value)
		if !ok || !integral {
			return facts.Constant{}, facts.Type{}, false
		}

		tok := token.SHL
		if op == ">>" {
			tok = token.SHR
		}

		// The count is masked by the width of the promoted left operand.
		lt := predefined(promote(xt.Name, ""))
		bits, signed := intWidth(lt.Name)
		v := constant.Shift(x.Value, tok, uint(s&int64(bits-1)))

		return facts.Constant{Kind: facts.ConstInt, Value: wrap(v, bits, signed)}, lt, true
	}

	tok, ok := binaryOps[op]
	if !ok {
		return facts.Constant{}, facts.Type{}, false
	}

	switch tok {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		return facts.Constant{Kind: facts.ConstBool, Value: constant.MakeBool(constant.Compare(x.Value, tok, y.Value))}, predefined("bool"), true

	case token.QUO, token.REM:
		if constant.Sign(y.Value) == 0 {
			return facts.Constant{}, facts.Type{}, false
		}

		if integral && tok == token.QUO {
			tok = token.QUO_ASSIGN
		}

	case token.AND, token.OR, token.XOR:
		if !integral {
			return facts.Constant{}, facts.Type{}, false
		}
	}

	if tok == token.REM && !integral {
		return facts.Constant{}, facts.Type{}, false
	}

	kind := facts.ConstInt
	if !integral {
		kind = facts.ConstFloat
	}

	return facts.Constant{Kind: kind, Value: constant.BinaryOp(x.Value, tok, y.Value)}, t, true
}

// intWidth returns the bit size and signedness of a promoted integral type.
func intWidth(name string) (uint, bool) {
	switch name {
	case typeInt64:
		return 64, true

	case typeUInt64:
		return 64, false

	case typeUInt32:
		return 32, false

	default:
		return 32, true
	}
}

// wrap truncates v to bits in two's complement.
func wrap(v constant.Value, bits uint, signed bool) constant.Value {
	one := constant.MakeInt64(1)
	mask := constant.BinaryOp(constant.Shift(one, token.SHL, bits), token.SUB, one)
	v = constant.BinaryOp(v, token.AND, mask)

	if signed && constant.Compare(v, token.GEQ, constant.Shift(one, token.SHL, bits-1)) {
		v = constant.BinaryOp(v, token.SUB, constant.Shift(one, token.SHL, bits))
	}

	return v
}

func arithmetic(k facts.ConstKind) bool {
	return k == facts.ConstInt || k == facts.ConstFloat || k == facts.ConstChar
}

// isConst reports whether stmt is a constant local declaration.
func isConst(stmt *syntax.Node) bool {
	if stmt == nil || stmt.Kind() != syntax.LocalDeclaration {
		return false
	}

	for c := range stmt.Children() {
		if c.Kind() == syntax.Modifier && c.TokenText() == "const" {
			return true
		}
	}

	return false
}

// resolve returns the name of the local variable declarator an identifier refers to.
func (p *Provider) resolve(id *syntax.Node) *syntax.Node {
	if id.Field() == syntax.FieldName {
		if parent := p.tree.Parent(id); parent != nil && parent.Kind() == syntax.VariableDeclarator {
			return id
		}
	}

	pos := p.tree.Span(id).Start

	for scope := range p.tree.Ancestors(id) {
		if scope.Kind() != syntax.Block && scope.Kind() != syntax.CompilationUnit {
			continue
		}

		var found *syntax.Node

		for stmt := range scope.Children() {
			if stmt.Native() == "global_statement" && stmt.NumChildren() > 0 {
				stmt = stmt.Child(0)
			}

			if stmt.Kind() != syntax.LocalDeclaration || p.tree.Span(stmt).Start > pos {
				continue
			}

			for _, d := range syntax.Declarators(stmt) {
				if d.Name.TokenText() == id.TokenText() {
					found = d.Name
				}
			}
		}

		if found != nil {
			return found
		}
	}

	return nil
}

// declaredType returns the type of the variable declared by name.
func (p *Provider) declaredType(name *syntax.Node) facts.Type {
	decl := p.tree.Parent(p.tree.Parent(name))
	if decl == nil || decl.Kind() != syntax.VariableDeclaration {
		return facts.Type{}
	}

	return p.typeNode(decl.ChildByField(syntax.FieldType), 0)
}

// typeNode describes a type expression.
func (p *Provider) typeNode(n *syntax.Node, depth int) facts.Type {
	if n == nil {
		return facts.Type{}
	}

	switch n.Native() {
	case "implicit_type":
		decl := p.tree.Parent(n)
		ds := syntax.Declarators(p.tree.Parent(decl))

		for _, d := range ds {
			if d.Type == n && d.Value != nil {
				_, t, ok := p.eval(d.Value, depth+1)
				if !ok || t.Name == typeNull {
					return facts.Type{}
				}

				return t
			}
		}

		return facts.Type{}

	case "nullable_type":
		for c := range n.Children() {
			if c.Kind() != syntax.Punctuation {
				return nullable(p.typeNode(c, depth))
			}
		}

		return facts.Type{}

	case "array_type", "pointer_type", "function_pointer_type":
		return facts.Type{Name: n.InnerText(), Reference: true}

	default:
		return predefined(n.InnerText())
	}
}

// TypeOf implements [facts.Provider].
func (p *Provider) TypeOf(n *syntax.Node) (facts.TypeInfo, error) {
	if err := p.check(n); err != nil {
		return facts.TypeInfo{}, err
	}

	var info facts.TypeInfo

	switch {
	case n.Field() == syntax.FieldType:
		info.Declared = p.typeNode(n, 0)

	case n.Kind() == syntax.Identifier && p.resolve(n) != nil:
		info.Declared = p.declaredType(p.resolve(n))

	default:
		_, t, ok := p.eval(n, 0)
		if !ok {
			return facts.TypeInfo{}, nil
		}

		info.Declared = t
	}

	info.Converted = info.Declared

	if n.Field() == syntax.FieldValue {
		if d := p.tree.Parent(n); d != nil && d.Kind() == syntax.VariableDeclarator {
			if name := d.ChildByField(syntax.FieldName); name != nil {
				if target := p.declaredType(name); target.Name != "" {
					info.Converted = target
				}
			}
		}
	}

	return info, nil
}

// ClassifyConversion implements [facts.Provider]. User-defined conversions are not known.
func (p *Provider) ClassifyConversion(expr *syntax.Node, to facts.Type) (facts.Conversion, error) {
	if err := p.check(expr); err != nil {
		return facts.Conversion{}, err
	}

	c, from, ok := p.eval(expr, 0)
	if !ok {
		return facts.Conversion{}, nil
	}

	return facts.Conversion{Exists: convertible(from, to, &c)}, nil
}

// SymbolOf implements [facts.Provider].
func (p *Provider) SymbolOf(n *syntax.Node) (facts.Symbol, bool, error) {
	if err := p.check(n); err != nil {
		return facts.Symbol{}, false, err
	}

	switch n.Kind() {
	case syntax.Identifier:
		decl := p.resolve(n)
		if decl == nil {
			return facts.Symbol{}, false, nil
		}

		name := decl.TokenText()

		return facts.Symbol{
			ID:        fmt.Sprintf("%s@%d", name, p.tree.Span(decl).Start),
			Name:      name,
			Qualified: name,
			Kind:      facts.SymbolLocal,
			Handle:    decl,
		}, true, nil

	case syntax.Invocation:
		f := syntax.CallFunction(n)
		if f == nil || f.Kind() != syntax.MemberAccess {
			return facts.Symbol{}, false, nil
		}

		target, member := f.ChildByField(syntax.FieldTarget), f.ChildByField(syntax.FieldMember)
		if target == nil || member == nil {
			return facts.Symbol{}, false, nil
		}

		typ, ok := p.qualify(target.InnerText())
		if !ok {
			return facts.Symbol{}, false, nil
		}

		qualified := typ + "." + member.TokenText()

		return facts.Symbol{
			ID:        qualified,
			Name:      member.TokenText(),
			Qualified: qualified,
			Kind:      facts.SymbolFunction,
		}, true, nil

	default:
		return facts.Symbol{}, false, nil
	}
}

// wellKnownTypes maps type names to their namespaces.
var wellKnownTypes = map[string]string{
	"Regex":   "System.Text.RegularExpressions",
	"Console": "System",
	"Convert": "System",
	"Math":    "System",
	"String":  "System",
}

// qualify resolves a type name through the using directives of the unit.
func (p *Provider) qualify(name string) (string, bool) {
	name = strings.Join(strings.Fields(strings.TrimPrefix(name, "global::")), "")

	p.usingsOnce.Do(p.collectUsings)

	if target, ok := p.aliases[name]; ok {
		name = target
	}

	if ns, typ, ok := cutLast(name, "."); ok {
		if wellKnownTypes[typ] == ns {
			return name, true
		}

		return "", false
	}

	if ns, ok := wellKnownTypes[name]; ok && p.namespaces[ns] {
		return ns + "." + name, true
	}

	return "", false
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}

	return s, "", false
}

func (p *Provider) collectUsings() {
	p.namespaces = make(map[string]bool)
	p.aliases = make(map[string]string)

	for n := range p.tree.Root().Preorder() {
		switch n.Native() {
		case "using_directive":
			var names []string
			for c := range n.Children() {
				switch {
				case c.Kind() == syntax.Identifier || c.Kind() == syntax.MemberAccess:
					names = append(names, c.InnerText())

				case c.Native() == "name_equals" && c.NumChildren() > 0:
					names = append(names, c.Child(0).InnerText())
				}
			}

			switch len(names) {
			case 1:
				p.namespaces[names[0]] = true

			case 2:
				p.aliases[names[0]] = names[1]
			}

		case "namespace_declaration", "file_scoped_namespace_declaration":
			for c := range n.Children() {
				if c.Kind() == syntax.Identifier || c.Kind() == syntax.MemberAccess {
					// Enclosing namespaces and their parents are in scope.
					for ns, ok := c.InnerText(), true; ok; ns, _, ok = cutLast(ns, ".") {
						p.namespaces[ns] = true
					}

					break
				}
			}
		}
	}
}
