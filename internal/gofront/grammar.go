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
	"errors"
	"go/format"
	"strconv"
	"strings"

	"fillmore-labs.com/fixkit/internal/match"
	"fillmore-labs.com/fixkit/internal/pattern"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// ErrNotVariable is returned when a declaration has no var keyword.
var ErrNotVariable = errors.New("not a variable declaration")

// Grammar is the Go [match.Grammar].
type Grammar struct{}

var _ match.Grammar = Grammar{}

// DefaultRegexTargets are the functions of package regexp taking a pattern.
var DefaultRegexTargets = []match.RegexTarget{
	{Func: "regexp.Compile"},
	{Func: "regexp.MustCompile"},
	{Func: "regexp.Match"},
	{Func: "regexp.MatchString"},
	{Func: "regexp.MatchReader"},
	{Func: "regexp.CompilePOSIX", Dialect: pattern.POSIX},
	{Func: "regexp.MustCompilePOSIX", Dialect: pattern.POSIX},
}

// Name implements [match.Grammar].
func (Grammar) Name() string { return "go" }

// IsConstant implements [match.Grammar].
func (Grammar) IsConstant(decl *syntax.Node) bool {
	return keyword(decl, "const") >= 0
}

// ConstDeclaration implements [match.Grammar]. The var keyword is replaced by const.
func (Grammar) ConstDeclaration(_ *match.Pass, decl *syntax.Node) (*syntax.Node, error) {
	i := keyword(decl, "var")
	if i < 0 {
		return nil, ErrNotVariable
	}

	old := decl.Child(i)
	tok := syntax.NewToken(syntax.Keyword, "const").WithTrivia(old.LeadingTrivia(), old.TrailingTrivia())

	return decl.WithChild(i, tok), nil
}

func keyword(decl *syntax.Node, text string) int {
	for i := range decl.NumChildren() {
		if c := decl.Child(i); c.Kind() == syntax.Keyword && c.TokenText() == text {
			return i
		}
	}

	return -1
}

// StringLiteral implements [match.Grammar].
func (Grammar) StringLiteral(value string) *syntax.Node {
	return syntax.NewToken(syntax.Literal, strconv.Quote(value))
}

// RegexTargets implements [match.Grammar].
func (Grammar) RegexTargets() []match.RegexTarget { return DefaultRegexTargets }

// Format implements [match.Grammar] with gofmt.
func (Grammar) Format(n *syntax.Node) (*syntax.Node, error) {
	src, err := format.Source([]byte(n.InnerText()))
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(src))

	if n.IsToken() {
		return syntax.NewToken(n.Kind(), text).WithNative(n.Native()), nil
	}

	tree, _, err := syntax.Build([]byte(text), syntax.Element{Kind: n.Kind(), Native: n.Native()})
	if err != nil {
		return nil, err
	}

	root := tree.Root()
	children := make([]*syntax.Node, 0, root.NumChildren())

	for c := range root.Children() {
		if c.Native() != syntax.EndOfFile {
			children = append(children, c)
		}
	}

	return root.WithChildren(children...).WithField(n.Field()), nil
}
