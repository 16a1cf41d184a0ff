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
	"errors"
	"fmt"
	"strings"

	"fillmore-labs.com/fixkit/internal/match"
	"fillmore-labs.com/fixkit/internal/pattern"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// ErrNoConstType is returned when an inferred type has no constant keyword.
var ErrNoConstType = errors.New("inferred type cannot be spelled in a constant declaration")

// Grammar is the C# [match.Grammar].
type Grammar struct{}

var _ match.Grammar = Grammar{}

const regexType = "System.Text.RegularExpressions.Regex"

// DefaultRegexTargets are the static Regex methods taking a pattern as second argument.
var DefaultRegexTargets = []match.RegexTarget{
	{Func: regexType + ".IsMatch", Arg: 1, Dialect: pattern.DotNet},
	{Func: regexType + ".Match", Arg: 1, Dialect: pattern.DotNet},
	{Func: regexType + ".Matches", Arg: 1, Dialect: pattern.DotNet},
	{Func: regexType + ".Replace", Arg: 1, Dialect: pattern.DotNet},
	{Func: regexType + ".Split", Arg: 1, Dialect: pattern.DotNet},
}

// Name implements [match.Grammar].
func (Grammar) Name() string { return "csharp" }

// IsConstant implements [match.Grammar].
func (Grammar) IsConstant(decl *syntax.Node) bool { return isConst(decl) }

// ConstDeclaration implements [match.Grammar].
//
// A const modifier is prepended and an implicit var type is replaced by the
// keyword of the inferred type.
func (Grammar) ConstDeclaration(p *match.Pass, decl *syntax.Node) (*syntax.Node, error) {
	if decl.NumChildren() == 0 {
		return nil, fmt.Errorf("%w: empty declaration", syntax.ErrMalformed)
	}

	for i := range decl.NumChildren() {
		c := decl.Child(i)
		if c.Kind() != syntax.VariableDeclaration {
			continue
		}

		typ := c.ChildByField(syntax.FieldType)
		if typ == nil || typ.Native() != "implicit_type" {
			break
		}

		info, err := p.Facts.TypeOf(typ)
		if err != nil {
			return nil, err
		}

		kw, ok := keyword(info.Declared.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoConstType, info.Declared.Name)
		}

		explicit := syntax.NewToken(syntax.Keyword, kw).WithNative("predefined_type").
			WithTrivia(typ.LeadingTrivia(), typ.TrailingTrivia())
		decl = decl.WithChild(i, c.WithChild(c.IndexOf(typ), explicit))

		break
	}

	first := decl.Child(0)
	modifier := syntax.NewToken(syntax.Modifier, "const").WithNative("modifier").WithTrivia(first.LeadingTrivia(), " ")

	children := make([]*syntax.Node, 0, decl.NumChildren()+1)
	children = append(children, modifier, first.WithLeadingTrivia(""))

	for i := 1; i < decl.NumChildren(); i++ {
		children = append(children, decl.Child(i))
	}

	return decl.WithChildren(children...), nil
}

// StringLiteral implements [match.Grammar].
func (Grammar) StringLiteral(value string) *syntax.Node {
	return syntax.NewToken(syntax.Literal, quote(value)).WithNative("string_literal")
}

// quote returns a regular C# string literal for s.
func quote(s string) string {
	var b strings.Builder

	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)

		case '\\':
			b.WriteString(`\\`)

		case '\n':
			b.WriteString(`\n`)

		case '\r':
			b.WriteString(`\r`)

		case '\t':
			b.WriteString(`\t`)

		case 0:
			b.WriteString(`\0`)

		default:
			if r < 0x20 || r == 0x85 || r == 0x2028 || r == 0x2029 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}

	b.WriteByte('"')

	return b.String()
}

// RegexTargets implements [match.Grammar].
func (Grammar) RegexTargets() []match.RegexTarget { return DefaultRegexTargets }

// Format implements [match.Grammar]. Replacements are kept as built.
func (Grammar) Format(n *syntax.Node) (*syntax.Node, error) { return n, nil }
