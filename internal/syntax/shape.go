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

// Declarator is one variable introduced by a local declaration.
type Declarator struct {
	// Name is the declared identifier.
	Name *Node

	// Type is the declared type, nil when inferred by the grammar.
	Type *Node

	// Value is the initializer, nil when there is none.
	Value *Node
}

// Declarators lists the variables of a local declaration in source order.
//
// Both grammar shapes are understood: explicit declarator nodes holding a name
// and an initializer, and declarations holding parallel name and value lists.
func Declarators(decl *Node) []Declarator {
	var ds []Declarator

	for v := range decl.Children() {
		if v.Kind() != VariableDeclaration {
			continue
		}

		typ := v.ChildByField(FieldType)

		var names, values []*Node

		for c := range v.Children() {
			switch {
			case c.Kind() == VariableDeclarator:
				if name := c.ChildByField(FieldName); name != nil {
					ds = append(ds, Declarator{Name: name, Type: typ, Value: c.ChildByField(FieldValue)})
				}

			case c.Field() == FieldName:
				names = append(names, c)

			case c.Field() == FieldValue:
				values = append(values, c)
			}
		}

		for i, name := range names {
			d := Declarator{Name: name, Type: typ}
			if len(values) == len(names) {
				d.Value = values[i]
			}

			ds = append(ds, d)
		}
	}

	return ds
}

// CallFunction returns the callee expression of an invocation.
func CallFunction(call *Node) *Node {
	return call.ChildByField(FieldFunction)
}

// CallName returns the simple name of the invoked member, or "" when the
// callee is not a plain or qualified name.
func CallName(call *Node) string {
	f := CallFunction(call)
	if f == nil {
		return ""
	}

	switch f.Kind() {
	case Identifier:
		return f.TokenText()

	case MemberAccess:
		if m := f.ChildByField(FieldMember); m != nil && m.Kind() == Identifier {
			return m.TokenText()
		}
	}

	return ""
}

// CallArguments returns the argument expressions of an invocation in order.
func CallArguments(call *Node) []*Node {
	var args []*Node

	for c := range call.Children() {
		switch {
		case c.Kind() == ArgumentList:
			for a := range c.Children() {
				if a.Kind() == Argument {
					args = append(args, ArgumentExpression(a))
				}
			}

		case c.Field() == FieldArgument:
			args = append(args, ArgumentExpression(c))
		}
	}

	return args
}

// ArgumentExpression unwraps an argument node to its expression.
// Other nodes are returned unchanged.
func ArgumentExpression(arg *Node) *Node {
	if arg.Kind() != Argument {
		return arg
	}

	var expr *Node
	for c := range arg.Children() {
		if k := c.Kind(); k != Keyword && k != Punctuation {
			expr = c
		}
	}

	if expr == nil && arg.NumChildren() > 0 {
		expr = arg.Child(arg.NumChildren() - 1)
	}

	return expr
}

// Unparen strips enclosing parentheses from an expression.
func Unparen(n *Node) *Node {
	for n != nil && n.Kind() == Parenthesized {
		n = n.ChildByField(FieldOperand)
	}

	return n
}
