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

// Package gofront adapts go/ast and go/types to the grammar neutral matching kernel.
package gofront

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"reflect"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/fixkit/internal/syntax"
)

// ErrSourceMismatch is returned when the source text does not belong to the parsed file.
var ErrSourceMismatch = errors.New("source does not match parsed file")

// Convert builds a lossless syntax tree for the file at the cursor.
// The origins of the tree map nodes to the inspector index of their AST node.
func Convert(handle *token.File, file inspector.Cursor, src []byte) (*syntax.Tree, syntax.Origins, error) {
	f, ok := file.Node().(*ast.File)
	if !ok {
		return nil, nil, fmt.Errorf("%w: cursor at %T", ErrSourceMismatch, file.Node())
	}

	if handle.Size() != len(src) || handle.Base() > int(f.FileStart) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSourceMismatch, handle.Name())
	}

	c := converter{handle: handle}

	root := syntax.Element{
		Kind:     syntax.CompilationUnit,
		Native:   "File",
		Children: c.children(file, 0, len(src)),
		Origin:   originOf(file),
	}

	return syntax.Build(src, root)
}

type converter struct {
	handle *token.File
}

func (c converter) children(parent inspector.Cursor, start, end int) []syntax.Element {
	var elems []syntax.Element

	pos := start
	for child := range parent.Children() {
		e, ok := c.element(child)
		if !ok || e.Start < start || e.End > end {
			continue
		}

		switch {
		case flattened(parent.Node()), e.Start < pos:
			// Nodes covering tokens of the parent, like the type of a function
			// declaration, are replaced by their children.
			for _, ce := range c.children(child, max(pos, e.Start), e.End) {
				elems = append(elems, ce)
				pos = ce.End
			}

		default:
			elems = append(elems, e)
			pos = e.End
		}
	}

	return elems
}

// flattened reports whether the children of parent's children are attached to parent.
func flattened(parent ast.Node) bool {
	_, decl := parent.(*ast.DeclStmt)

	return decl
}

func (c converter) element(cur inspector.Cursor) (syntax.Element, bool) {
	n := cur.Node()

	switch n.(type) {
	case *ast.CommentGroup, *ast.Comment:
		return syntax.Element{}, false
	}

	if !n.Pos().IsValid() || !n.End().IsValid() || n.End() <= n.Pos() {
		return syntax.Element{}, false
	}

	base, size := token.Pos(c.handle.Base()), token.Pos(c.handle.Size())
	if n.Pos() < base || n.End() > base+size {
		return syntax.Element{}, false
	}

	e := syntax.Element{
		Kind:   kindOf(n),
		Field:  fieldOf(cur),
		Native: reflect.TypeOf(n).Elem().Name(),
		Start:  c.handle.Offset(n.Pos()),
		End:    c.handle.Offset(n.End()),
		Origin: originOf(cur),
	}

	if !e.Kind.IsToken() {
		e.Children = c.children(cur, e.Start, e.End)
	}

	return e, true
}

func kindOf(n ast.Node) syntax.Kind {
	switch n.(type) {
	case *ast.File:
		return syntax.CompilationUnit

	case *ast.FuncDecl:
		return syntax.FunctionDeclaration

	case *ast.FuncLit:
		return syntax.FunctionLiteral

	case *ast.BlockStmt:
		return syntax.Block

	case *ast.DeclStmt:
		return syntax.LocalDeclaration

	case *ast.ValueSpec:
		return syntax.VariableDeclaration

	case *ast.AssignStmt:
		return syntax.Assignment

	case *ast.CallExpr:
		return syntax.Invocation

	case *ast.SelectorExpr:
		return syntax.MemberAccess

	case *ast.UnaryExpr:
		return syntax.Unary

	case *ast.BinaryExpr:
		return syntax.Binary

	case *ast.ParenExpr:
		return syntax.Parenthesized

	case *ast.Ident:
		return syntax.Identifier

	case *ast.BasicLit:
		return syntax.Literal
	}

	return syntax.Other
}

func fieldOf(cur inspector.Cursor) syntax.Field {
	k, _ := cur.ParentEdge()

	switch k {
	case edge.ValueSpec_Names, edge.FuncDecl_Name:
		return syntax.FieldName

	case edge.ValueSpec_Type:
		return syntax.FieldType

	case edge.ValueSpec_Values:
		return syntax.FieldValue

	case edge.CallExpr_Fun:
		return syntax.FieldFunction

	case edge.CallExpr_Args:
		return syntax.FieldArgument

	case edge.SelectorExpr_X:
		return syntax.FieldTarget

	case edge.SelectorExpr_Sel:
		return syntax.FieldMember

	case edge.BinaryExpr_X, edge.AssignStmt_Lhs:
		return syntax.FieldLeft

	case edge.BinaryExpr_Y, edge.AssignStmt_Rhs:
		return syntax.FieldRight

	case edge.UnaryExpr_X, edge.ParenExpr_X, edge.StarExpr_X, edge.IncDecStmt_X:
		return syntax.FieldOperand

	case edge.FuncDecl_Body, edge.FuncLit_Body:
		return syntax.FieldBody

	default:
		return syntax.FieldNone
	}
}

// origin is the inspector index of the AST node a syntax node was built from.
type origin int32

func originOf(c inspector.Cursor) origin { return origin(c.Index()) }

func (o origin) cursor(in *inspector.Inspector) inspector.Cursor { return in.At(int32(o)) }
