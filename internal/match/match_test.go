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

package match_test

import (
	"context"
	"errors"
	"go/constant"
	"strconv"
	"testing"

	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/facts"
	"fillmore-labs.com/fixkit/internal/facts/factstest"
	. "fillmore-labs.com/fixkit/internal/match"
	"fillmore-labs.com/fixkit/internal/pattern"
	"fillmore-labs.com/fixkit/internal/syntax"
	"github.com/dlclark/regexp2"
)

const source = "var x = 1, y = 2;\nRegex.Match(s, \"[\");\n"

const regexMatch = "System.Text.RegularExpressions.Regex.Match"

type testGrammar struct{}

func (testGrammar) Name() string { return "test" }

func (testGrammar) IsConstant(decl *syntax.Node) bool {
	for c := range decl.Children() {
		if c.Kind() == syntax.Modifier && c.TokenText() == "const" {
			return true
		}
	}

	return false
}

func (testGrammar) ConstDeclaration(_ *Pass, decl *syntax.Node) (*syntax.Node, error) {
	children := []*syntax.Node{syntax.NewToken(syntax.Modifier, "const").WithTrailingTrivia(" ")}
	for c := range decl.Children() {
		children = append(children, c)
	}

	return decl.WithChildren(children...), nil
}

func (testGrammar) StringLiteral(value string) *syntax.Node {
	return syntax.NewToken(syntax.Literal, strconv.Quote(value))
}

func (testGrammar) RegexTargets() []RegexTarget {
	return []RegexTarget{{Func: regexMatch, Arg: 1, Dialect: pattern.DotNet}}
}

func (testGrammar) Format(n *syntax.Node) (*syntax.Node, error) { return n, nil }

func parse(tb testing.TB, src string) *syntax.Tree {
	tb.Helper()

	declarator := func(name, value int) syntax.Element {
		return syntax.Element{
			Kind: syntax.VariableDeclarator, Start: name, End: value + 1,
			Children: []syntax.Element{
				{Kind: syntax.Identifier, Field: syntax.FieldName, Start: name, End: name + 1},
				{Kind: syntax.Literal, Field: syntax.FieldValue, Start: value, End: value + 1},
			},
		}
	}

	tree, _, err := syntax.Build([]byte(src), syntax.Element{
		Kind: syntax.CompilationUnit,
		Children: []syntax.Element{
			{
				Kind: syntax.LocalDeclaration, Start: 0, End: 17,
				Children: []syntax.Element{{
					Kind: syntax.VariableDeclaration, Start: 0, End: 16,
					Children: []syntax.Element{
						{Kind: syntax.Identifier, Field: syntax.FieldType, Start: 0, End: 3},
						declarator(4, 8),
						declarator(11, 15),
					},
				}},
			},
			{
				Kind: syntax.Other, Native: "expression_statement", Start: 18, End: 38,
				Children: []syntax.Element{{
					Kind: syntax.Invocation, Start: 18, End: 37,
					Children: []syntax.Element{
						{
							Kind: syntax.MemberAccess, Field: syntax.FieldFunction, Start: 18, End: 29,
							Children: []syntax.Element{
								{Kind: syntax.Identifier, Field: syntax.FieldTarget, Start: 18, End: 23},
								{Kind: syntax.Identifier, Field: syntax.FieldMember, Start: 24, End: 29},
							},
						},
						{
							Kind: syntax.ArgumentList, Start: 29, End: 37,
							Children: []syntax.Element{
								{
									Kind: syntax.Argument, Start: 30, End: 31,
									Children: []syntax.Element{{Kind: syntax.Identifier, Start: 30, End: 31}},
								},
								{
									Kind: syntax.Argument, Start: 33, End: 36,
									Children: []syntax.Element{{Kind: syntax.Literal, Start: 33, End: 36}},
								},
							},
						},
					},
				}},
			},
		},
	})
	if err != nil {
		tb.Fatalf("Build failed: %v", err)
	}

	return tree
}

type fixture struct {
	tree     *syntax.Tree
	provider *factstest.Provider
	varType  *syntax.Node
	x, y     *syntax.Node
	one, two *syntax.Node
	s        *syntax.Node
	call     *syntax.Node
	pattern  *syntax.Node
}

var int32Type = facts.Type{Name: "System.Int32"}

func newFixture(tb testing.TB) *fixture {
	tb.Helper()

	tree := parse(tb, source)
	f := &fixture{
		tree:     tree,
		provider: factstest.New(tree),
		varType:  factstest.Find(tb, tree, syntax.Identifier, "var"),
		x:        factstest.Find(tb, tree, syntax.Identifier, "x"),
		y:        factstest.Find(tb, tree, syntax.Identifier, "y"),
		one:      factstest.Find(tb, tree, syntax.Literal, "1"),
		two:      factstest.Find(tb, tree, syntax.Literal, "2"),
		s:        factstest.Find(tb, tree, syntax.Identifier, "s"),
		call:     factstest.Find(tb, tree, syntax.Invocation, `Regex.Match(s, "[")`),
		pattern:  factstest.Find(tb, tree, syntax.Literal, `"["`),
	}

	p := f.provider
	p.Types[f.varType] = facts.TypeInfo{Declared: int32Type, Converted: int32Type}
	p.Constants[f.one] = facts.Constant{Kind: facts.ConstInt, Value: constant.MakeInt64(1)}
	p.Constants[f.two] = facts.Constant{Kind: facts.ConstInt, Value: constant.MakeInt64(2)}
	p.Conversions[f.one] = facts.Conversion{Exists: true}
	p.Conversions[f.two] = facts.Conversion{Exists: true}
	p.Symbols[f.x] = facts.Symbol{ID: "x@4", Name: "x", Kind: facts.SymbolLocal}
	p.Symbols[f.y] = facts.Symbol{ID: "y@11", Name: "y", Kind: facts.SymbolLocal}
	p.Symbols[f.call] = facts.Symbol{ID: regexMatch, Name: "Match", Qualified: regexMatch, Kind: facts.SymbolFunction}
	p.Constants[f.pattern] = facts.Constant{Kind: facts.ConstString, Value: constant.MakeString("[")}

	return f
}

func newSet(tb testing.TB) *Set {
	tb.Helper()

	set, err := NewSet(Default())
	if err != nil {
		tb.Fatalf("NewSet failed: %v", err)
	}

	return set
}

func regexError(tb testing.TB, expr string) string {
	tb.Helper()

	_, err := regexp2.Compile(expr, regexp2.None)
	if err == nil {
		tb.Fatalf("Expected %q to be invalid", expr)
	}

	return err.Error()
}

func TestRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	set := newSet(t)

	diagnostics, err := set.Run(t.Context(), set.NewPass(f.tree, f.provider, testGrammar{}, "a.cs"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []diag.Diagnostic{
		{
			ID: MakeConstID, Category: "Usage", Severity: diag.Warning,
			Location: diag.Location{Path: "a.cs", Span: syntax.Span{Start: 0, Len: 17}},
			Message:  "Variable 'x, y' can be made constant",
		},
		{
			ID: RegexID, Category: "Syntax", Severity: diag.Error,
			Location: diag.Location{Path: "a.cs", Span: syntax.Span{Start: 33, Len: 3}},
			Message:  regexError(t, "["),
		},
	}

	if len(diagnostics) != len(want) {
		t.Fatalf("Got %d diagnostics, want %d: %v", len(diagnostics), len(want), diagnostics)
	}

	for i := range want {
		if diagnostics[i] != want[i] {
			t.Errorf("Diagnostic %d = %+v, want %+v", i, diagnostics[i], want[i])
		}
	}
}

func TestMakeConstPreconditions(t *testing.T) {
	t.Parallel()

	objectType := facts.Type{Name: "System.Object", Special: facts.SpecialObject, Reference: true}
	stringType := facts.Type{Name: "System.String", Special: facts.SpecialString, Reference: true}

	testCases := [...]struct {
		name   string
		modify func(f *fixture)
		want   bool
	}{
		{"all constant", func(*fixture) {}, true},
		{"not constant", func(f *fixture) { delete(f.provider.Constants, f.two) }, false},
		{"no conversion", func(f *fixture) { f.provider.Conversions[f.one] = facts.Conversion{} }, false},
		{"user defined conversion", func(f *fixture) {
			f.provider.Conversions[f.one] = facts.Conversion{Exists: true, UserDefined: true}
		}, false},
		{"string into int", func(f *fixture) {
			f.provider.Constants[f.one] = facts.Constant{Kind: facts.ConstString, Value: constant.MakeString("5")}
		}, false},
		{"string into object", func(f *fixture) {
			f.provider.Types[f.varType] = facts.TypeInfo{Converted: objectType}
			f.provider.Constants[f.one] = facts.Constant{Kind: facts.ConstString, Value: constant.MakeString("text")}
			f.provider.Constants[f.two] = facts.Constant{Kind: facts.ConstString, Value: constant.MakeString("text")}
		}, false},
		{"strings", func(f *fixture) {
			f.provider.Types[f.varType] = facts.TypeInfo{Converted: stringType}
			f.provider.Constants[f.one] = facts.Constant{Kind: facts.ConstString, Value: constant.MakeString("a")}
			f.provider.Constants[f.two] = facts.Constant{Kind: facts.ConstNull, Value: constant.MakeUnknown()}
		}, true},
		{"int into object", func(f *fixture) { f.provider.Types[f.varType] = facts.TypeInfo{Converted: objectType} }, false},
		{"int into nullable int", func(f *fixture) {
			f.provider.Types[f.varType] = facts.TypeInfo{Converted: facts.Type{Name: "System.Nullable<System.Int32>", Nullable: true}}
		}, false},
		{"null into int", func(f *fixture) {
			f.provider.Constants[f.two] = facts.Constant{Kind: facts.ConstNull, Value: constant.MakeUnknown()}
		}, false},
		{"nulls into object", func(f *fixture) {
			f.provider.Types[f.varType] = facts.TypeInfo{Converted: objectType}
			f.provider.Constants[f.one] = facts.Constant{Kind: facts.ConstNull, Value: constant.MakeUnknown()}
			f.provider.Constants[f.two] = facts.Constant{Kind: facts.ConstNull, Value: constant.MakeUnknown()}
		}, true},
		{"written later", func(f *fixture) {
			f.provider.Writes["y@11"] = []*syntax.Node{f.s}
		}, false},
		{"written inside", func(f *fixture) { f.provider.Writes["y@11"] = []*syntax.Node{f.y} }, true},
		{"no symbol", func(f *fixture) { delete(f.provider.Symbols, f.x) }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.modify(f)

			set, err := NewSet([]Matcher{MakeConst{}}, nil)
			if err != nil {
				t.Fatalf("NewSet failed: %v", err)
			}

			diagnostics, err := set.Run(t.Context(), set.NewPass(f.tree, f.provider, testGrammar{}, "a.cs"))
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if got := len(diagnostics) == 1; got != tc.want {
				t.Errorf("Got diagnostics %v, want match %t", diagnostics, tc.want)
			}
		})
	}
}

func TestRegexPreconditions(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name    string
		targets []RegexTarget
		modify  func(f *fixture)
		want    bool
	}{
		{"invalid", nil, func(*fixture) {}, true},
		{"valid", nil, func(f *fixture) {
			f.provider.Constants[f.pattern] = facts.Constant{Kind: facts.ConstString, Value: constant.MakeString("[a-z]")}
		}, false},
		{"not constant", nil, func(f *fixture) { delete(f.provider.Constants, f.pattern) }, false},
		{"other symbol", nil, func(f *fixture) {
			f.provider.Symbols[f.call] = facts.Symbol{ID: "Match", Name: "Match", Qualified: "Other.Regex.Match"}
		}, false},
		{"wrong argument", []RegexTarget{{Func: regexMatch, Arg: 0, Dialect: pattern.DotNet}}, func(*fixture) {}, false},
		{"too few arguments", []RegexTarget{{Func: regexMatch, Arg: 2, Dialect: pattern.DotNet}}, func(*fixture) {}, false},
		{"other name", []RegexTarget{{Func: "System.Text.RegularExpressions.Regex.IsMatch", Arg: 1}}, func(*fixture) {}, false},
		{"re2", []RegexTarget{{Func: regexMatch, Arg: 1, Dialect: pattern.RE2}}, func(*fixture) {}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.modify(f)

			set, err := NewSet([]Matcher{Regex{Targets: tc.targets}}, nil)
			if err != nil {
				t.Fatalf("NewSet failed: %v", err)
			}

			diagnostics, err := set.Run(t.Context(), set.NewPass(f.tree, f.provider, testGrammar{}, "a.cs"))
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if got := len(diagnostics) == 1; got != tc.want {
				t.Errorf("Got diagnostics %v, want match %t", diagnostics, tc.want)
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	set := newSet(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	diagnostics, err := set.Run(ctx, set.NewPass(f.tree, f.provider, testGrammar{}, "a.cs"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}

	if len(diagnostics) != 0 {
		t.Errorf("Got diagnostics %v from canceled run", diagnostics)
	}

	if q := f.provider.Queries.Load(); q != 0 {
		t.Errorf("Got %d fact queries from canceled run", q)
	}
}

func TestRunHostContract(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	set := newSet(t)

	other := factstest.New(parse(t, source))

	_, err := set.Run(t.Context(), set.NewPass(f.tree, other, testGrammar{}, "a.cs"))
	if !errors.Is(err, facts.ErrHostContract) {
		t.Errorf("Run() error = %v, want %v", err, facts.ErrHostContract)
	}
}

func TestRegexFix(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	set := newSet(t)
	p := set.NewPass(f.tree, f.provider, testGrammar{}, "a.cs")

	d, _, err := p.Report(RegexDescriptor, f.pattern, "invalid")
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	actions, err := set.Fixes(p, d)
	if err != nil {
		t.Fatalf("Fixes failed: %v", err)
	}

	if len(actions) != 1 || actions[0].Title != RegexFixTitle {
		t.Fatalf("Got actions %+v, want one %q", actions, RegexFixTitle)
	}

	fixed, err := actions[0].Apply()
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	const want = "var x = 1, y = 2;\nRegex.Match(s, \"valid regex\");\n"
	if fixed.Text() != want {
		t.Errorf("Text() = %q, want %q", fixed.Text(), want)
	}

	if fixed.Root().Child(0) != f.tree.Root().Child(0) {
		t.Error("Expected declaration to be shared")
	}

	te, err := actions[0].TextEdit()
	if err != nil {
		t.Fatalf("TextEdit failed: %v", err)
	}

	if te.Span != (syntax.Span{Start: 33, Len: 3}) || te.NewText != `"valid regex"` {
		t.Errorf("TextEdit() = %+v", te)
	}

	// The placeholder passes the check.
	provider := factstest.New(fixed)
	call := factstest.Find(t, fixed, syntax.Invocation, `Regex.Match(s, "valid regex")`)
	lit := factstest.Find(t, fixed, syntax.Literal, `"valid regex"`)
	provider.Symbols[call] = f.provider.Symbols[f.call]
	provider.Constants[lit] = facts.Constant{Kind: facts.ConstString, Value: constant.MakeString(RegexPlaceholder)}

	regex, err := NewSet([]Matcher{Regex{}}, nil)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	diagnostics, err := regex.Run(t.Context(), regex.NewPass(fixed, provider, testGrammar{}, "a.cs"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(diagnostics) != 0 {
		t.Errorf("Got diagnostics %v after fix", diagnostics)
	}
}

func TestMakeConstFix(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	set := newSet(t)
	p := set.NewPass(f.tree, f.provider, testGrammar{}, "a.cs")

	diagnostics, err := set.Run(t.Context(), p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(diagnostics) == 0 || diagnostics[0].ID != MakeConstID {
		t.Fatalf("Got diagnostics %v, want %s", diagnostics, MakeConstID)
	}

	actions, err := set.Fixes(p, diagnostics[0])
	if err != nil {
		t.Fatalf("Fixes failed: %v", err)
	}

	if len(actions) != 1 || actions[0].Title != MakeConstFixTitle {
		t.Fatalf("Got actions %+v, want one %q", actions, MakeConstFixTitle)
	}

	fixed, err := actions[0].Apply()
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	const want = "const var x = 1, y = 2;\nRegex.Match(s, \"[\");\n"
	if fixed.Text() != want {
		t.Errorf("Text() = %q, want %q", fixed.Text(), want)
	}

	stmt := fixed.Root().Child(0)
	if !(testGrammar{}).IsConstant(stmt) {
		t.Error("Expected fixed declaration to be constant")
	}
}

func TestFixesUnknown(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	set := newSet(t)
	p := set.NewPass(f.tree, f.provider, testGrammar{}, "a.cs")

	actions, err := set.Fixes(p, diag.Diagnostic{ID: "Other"})
	if err != nil || actions != nil {
		t.Errorf("Fixes() = %v, %v, want none", actions, err)
	}

	stale := diag.Diagnostic{ID: RegexID, Location: diag.Location{Span: syntax.Span{Start: 4, Len: 1}}}
	if _, err := set.Fixes(p, stale); !errors.Is(err, ErrNoFixTarget) {
		t.Errorf("Fixes() error = %v, want %v", err, ErrNoFixTarget)
	}
}

type identifierMatcher struct{ MakeConst }

func (identifierMatcher) Kinds() []syntax.Kind { return []syntax.Kind{syntax.Identifier} }

type otherFixer struct{ RegexFix }

func (otherFixer) ID() string { return "Other" }

func TestNewSetErrors(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		matchers []Matcher
		fixers   []Fixer
		err      error
	}{
		{"duplicate", []Matcher{MakeConst{}, MakeConst{}}, nil, diag.ErrDuplicateDescriptor},
		{"token kind", []Matcher{identifierMatcher{}}, nil, ErrUnsupportedKind},
		{"unknown fixer", []Matcher{MakeConst{}}, []Fixer{otherFixer{}}, ErrUnknownFixer},
		{"duplicate fixer", []Matcher{Regex{}}, []Fixer{RegexFix{}, RegexFix{}}, ErrDuplicateFixer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSet(tc.matchers, tc.fixers)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewSet() error = %v, want %v", err, tc.err)
			}

			if !errors.Is(err, diag.ErrConfiguration) {
				t.Errorf("NewSet() error = %v, want configuration error", err)
			}
		})
	}
}
