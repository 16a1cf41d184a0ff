//go:build cgo

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
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"fillmore-labs.com/fixkit/internal/syntax"
)

// Available reports whether C# sources can be parsed.
func Available() bool { return true }

// Parse builds a lossless syntax tree for a C# source unit.
func Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	root := element(tree.RootNode(), "", "")

	t, _, err := syntax.Build(src, root)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// element converts n, held in field of a parent with the given tree-sitter type.
func element(n *sitter.Node, parent, field string) syntax.Element {
	typ := n.Type()

	e := syntax.Element{
		Kind:   kindOf(typ),
		Field:  fieldOf(parent, field),
		Native: typ,
		Start:  int(n.StartByte()),
		End:    int(n.EndByte()),
	}

	if e.Kind.IsToken() {
		return e
	}

	var afterAssign, named bool

	for i := range int(n.ChildCount()) {
		c := n.Child(i)

		if !c.IsNamed() {
			afterAssign = c.Type() == "="

			continue
		}

		switch ct := c.Type(); {
		case ct == "comment":
			continue

		case ct == "equals_value_clause":
			for j := range int(c.NamedChildCount()) {
				if v := c.NamedChild(j); v.Type() != "comment" {
					e.Children = append(e.Children, element(v, typ, "value"))
				}
			}

		default:
			f := fieldName(n, c)

			if typ == "variable_declarator" && f == "" {
				switch {
				case afterAssign:
					f = "value"

				case ct == "identifier" && !named:
					f = "name"
				}
			}

			named = named || f == "name"

			e.Children = append(e.Children, element(c, typ, f))
		}

		afterAssign = false
	}

	return e
}

// fieldName returns the field of the parent holding c.
func fieldName(parent, c *sitter.Node) string {
	for _, f := range fieldNames[parent.Type()] {
		if fc := parent.ChildByFieldName(f); fc != nil && same(fc, c) {
			return f
		}
	}

	switch parent.Type() {
	case "prefix_unary_expression", "postfix_unary_expression", "parenthesized_expression":
		return "operand"
	}

	return ""
}

func same(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

var fieldNames = map[string][]string{
	"variable_declaration":        {"type"},
	"variable_declarator":         {"name"},
	"invocation_expression":       {"function"},
	"member_access_expression":    {"expression", "name"},
	"qualified_name":              {"qualifier", "name"},
	"binary_expression":           {"left", "right"},
	"assignment_expression":       {"left", "right"},
	"method_declaration":          {"name", "body"},
	"local_function_statement":    {"name", "body"},
	"constructor_declaration":     {"name", "body"},
	"lambda_expression":           {"body"},
	"anonymous_method_expression": {"body"},
}

func fieldOf(parent, field string) syntax.Field {
	switch field {
	case "name":
		if parent == "member_access_expression" || parent == "qualified_name" {
			return syntax.FieldMember
		}

		return syntax.FieldName

	case "type":
		return syntax.FieldType

	case "value":
		return syntax.FieldValue

	case "function":
		return syntax.FieldFunction

	case "expression", "qualifier":
		return syntax.FieldTarget

	case "left":
		return syntax.FieldLeft

	case "right":
		return syntax.FieldRight

	case "operand":
		return syntax.FieldOperand

	case "body":
		return syntax.FieldBody

	default:
		return syntax.FieldNone
	}
}

func kindOf(typ string) syntax.Kind {
	switch typ {
	case "compilation_unit":
		return syntax.CompilationUnit

	case "method_declaration", "local_function_statement", "constructor_declaration":
		return syntax.FunctionDeclaration

	case "lambda_expression", "anonymous_method_expression":
		return syntax.FunctionLiteral

	case "block":
		return syntax.Block

	case "local_declaration_statement":
		return syntax.LocalDeclaration

	case "variable_declaration":
		return syntax.VariableDeclaration

	case "variable_declarator":
		return syntax.VariableDeclarator

	case "assignment_expression":
		return syntax.Assignment

	case "invocation_expression":
		return syntax.Invocation

	case "member_access_expression", "qualified_name":
		return syntax.MemberAccess

	case "argument_list":
		return syntax.ArgumentList

	case "argument":
		return syntax.Argument

	case "prefix_unary_expression", "postfix_unary_expression":
		return syntax.Unary

	case "binary_expression":
		return syntax.Binary

	case "parenthesized_expression":
		return syntax.Parenthesized

	case "identifier":
		return syntax.Identifier

	case "modifier":
		return syntax.Modifier

	case "predefined_type", "implicit_type":
		return syntax.Keyword
	}

	if strings.HasSuffix(typ, "_literal") {
		return syntax.Literal
	}

	return syntax.Other
}
