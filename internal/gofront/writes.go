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
	"go/ast"
	"go/token"
	"go/types"
)

// indexWrites collects the positions of all writes to variables in the file.
//
// Besides assignments, taking the address of a variable and calling a method
// with pointer receiver on it count as writes.
func (p *Provider) indexWrites() {
	p.writes = make(map[types.Object][]token.Pos)

	root, ok := p.origins[p.tree.Root()].(origin)
	if !ok {
		return
	}

	filter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.UnaryExpr)(nil),
		(*ast.SelectorExpr)(nil),
	}

	for c := range root.cursor(p.in).Preorder(filter...) {
		switch n := c.Node().(type) {
		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				p.write(lhs)
			}

		case *ast.IncDecStmt:
			p.write(n.X)

		case *ast.RangeStmt:
			if n.Tok == token.ASSIGN {
				p.write(n.Key)
				p.write(n.Value)
			}

		case *ast.UnaryExpr:
			if n.Op == token.AND {
				p.write(n.X)
			}

		case *ast.SelectorExpr:
			if p.pointerMethod(n) {
				p.write(n.X)
			}
		}
	}
}

func (p *Provider) write(e ast.Expr) {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok || id.Name == "_" {
		return
	}

	if obj, ok := p.info.ObjectOf(id).(*types.Var); ok {
		p.writes[obj] = append(p.writes[obj], id.Pos())
	}
}

// pointerMethod reports whether sel is a method value with pointer receiver
// on an addressable operand, which takes the operand's address implicitly.
func (p *Provider) pointerMethod(sel *ast.SelectorExpr) bool {
	s, ok := p.info.Selections[sel]
	if !ok || s.Kind() != types.MethodVal {
		return false
	}

	sig, ok := s.Obj().Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	if _, ptr := sig.Recv().Type().Underlying().(*types.Pointer); !ptr {
		return false
	}

	_, ptr := s.Recv().Underlying().(*types.Pointer)

	return !ptr
}
