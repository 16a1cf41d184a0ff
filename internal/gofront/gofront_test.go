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

package gofront_test

import (
	"errors"
	"regexp"
	"testing"

	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/facts"
	. "fillmore-labs.com/fixkit/internal/gofront"
	"fillmore-labs.com/fixkit/internal/match"
	"fillmore-labs.com/fixkit/internal/syntax"
	"fillmore-labs.com/fixkit/internal/testsource"
)

type unit struct {
	tree     *syntax.Tree
	provider *Provider
	set      *match.Set
	pass     *match.Pass
}

func load(tb testing.TB, src []byte) unit {
	tb.Helper()

	fset, f := testsource.ParseFile(tb, src)
	_, info := testsource.Check(tb, fset, f)
	in, file := testsource.FileCursor(f)

	tree, origins, err := Convert(fset.File(f.FileStart), file, src)
	if err != nil {
		tb.Fatalf("Convert failed: %v", err)
	}

	set, err := match.NewSet(match.Default())
	if err != nil {
		tb.Fatalf("NewSet failed: %v", err)
	}

	provider := NewProvider(in, info, tree, origins)

	return unit{
		tree:     tree,
		provider: provider,
		set:      set,
		pass:     set.NewPass(tree, provider, Grammar{}, "test.go"),
	}
}

func (u unit) run(tb testing.TB) []diag.Diagnostic {
	tb.Helper()

	diagnostics, err := u.set.Run(tb.Context(), u.pass)
	if err != nil {
		tb.Fatalf("Run failed: %v", err)
	}

	return diagnostics
}

func statements(src string) []byte {
	return []byte("package test\n\nfunc _() {\n" + src + "\n}\n")
}

func TestConvertLossless(t *testing.T) {
	t.Parallel()

	src := []byte(`// Package test is a test.
package test

import "strings"

type counter int

// inc increments.
func (c *counter) inc() { *c++ } // trailing

func f[T any](x T, ys ...string) (T, error) {
	var (
		a = 1 /* one */
		b = "two"
	)
	for i := range 3 {
		_ = i
	}
	g := func() string { return strings.Repeat(b, a) }
	_ = g
	return x, nil
}
`)

	fset, file := testsource.ParseFile(t, src)
	_, c := testsource.FileCursor(file)

	tree, origins, err := Convert(fset.File(file.FileStart), c, src)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if got := tree.Text(); got != string(src) {
		t.Errorf("Text() = %q, want %q", got, src)
	}

	counts := make(map[syntax.Kind]int)
	for n := range tree.Root().Preorder() {
		counts[n.Kind()]++

		if n.Kind().Matchable() && n.Kind() != syntax.CompilationUnit {
			if _, ok := origins[n]; !ok {
				t.Errorf("No origin for %s %q", n.Kind(), n.InnerText())
			}
		}
	}

	want := map[syntax.Kind]int{
		syntax.FunctionDeclaration: 2,
		syntax.FunctionLiteral:     1,
		syntax.LocalDeclaration:    1,
		syntax.VariableDeclaration: 2,
		syntax.Invocation:          1,
		syntax.MemberAccess:        1,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("Got %d nodes of kind %s, want %d", counts[k], k, n)
		}
	}
}

func TestConvertMismatch(t *testing.T) {
	t.Parallel()

	src := statements("")
	fset, file := testsource.ParseFile(t, src)
	_, c := testsource.FileCursor(file)

	if _, _, err := Convert(fset.File(file.FileStart), c, append(src, ' ')); !errors.Is(err, ErrSourceMismatch) {
		t.Errorf("Convert() error = %v, want %v", err, ErrSourceMismatch)
	}
}

func TestMakeConst(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name string
		src  []byte
		want string
	}{
		{"pair", statements("var x, y = 1, 2\n_, _ = x, y"), "Variable 'x, y' can be made constant"},
		{"typed", statements("var f float64 = 1\n_ = f"), "Variable 'f' can be made constant"},
		{"string", statements("var s string = \"a\"\n_ = s"), "Variable 's' can be made constant"},
		{"builtin", statements("var n = len(\"abc\")\n_ = n"), "Variable 'n' can be made constant"},
		{"group", statements("var (\n\ta = 1\n\tb = 'b'\n)\n_, _ = a, b"), "Variable 'a, b' can be made constant"},
		{"interface", statements("var i any = \"text\"\n_ = i"), ""},
		{"incremented", statements("var x = 1\nx++\n_ = x"), ""},
		{"assigned", statements("var x = 1\nx = 2\n_ = x"), ""},
		{"redeclared", statements("var x = 1\nx, y := 2, 3\n_, _ = x, y"), ""},
		{"address", statements("var x = 1\np := &x\n_ = p"), ""},
		{"range", statements("var x = 1\nfor x = range 3 {\n}\n_ = x"), ""},
		{"no value", statements("var x int\n_ = x"), ""},
		{"not constant", statements("var x, y = 1, len([]int{})\n_, _ = x, y"), ""},
		{"nil", statements("var e error = nil\n_ = e"), ""},
		{"already constant", statements("const c = 1\n_ = c"), ""},
		{"pointer method", []byte(`package test

type counter int

func (c *counter) inc() { *c++ }

func _() {
	var c counter = 1
	c.inc()
}
`), ""},
		{"value method", []byte(`package test

type counter int

func (c counter) get() int { return int(c) }

func _() {
	var c counter = 1
	_ = c.get()
}
`), "Variable 'c' can be made constant"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			u := load(t, tc.src)

			var got []string
			for _, d := range u.run(t) {
				if d.ID == match.MakeConstID {
					got = append(got, d.Message)
				}
			}

			switch {
			case tc.want == "" && len(got) > 0:
				t.Errorf("Got unexpected diagnostics %q", got)

			case tc.want != "" && (len(got) != 1 || got[0] != tc.want):
				t.Errorf("Got diagnostics %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMakeConstFix(t *testing.T) {
	t.Parallel()

	src := statements("var x, y = 1, 2 // pair\n_, _ = x, y")
	u := load(t, src)

	diagnostics := u.run(t)
	if len(diagnostics) != 1 {
		t.Fatalf("Got diagnostics %v, want one", diagnostics)
	}

	if got, want := diagnostics[0].Location.Span, (syntax.Span{Start: 25, Len: 15}); got != want {
		t.Errorf("Span = %s, want %s", got, want)
	}

	actions, err := u.set.Fixes(u.pass, diagnostics[0])
	if err != nil || len(actions) != 1 {
		t.Fatalf("Fixes() = %v, %v, want one action", actions, err)
	}

	fixed, err := actions[0].Apply()
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	want := statements("const x, y = 1, 2 // pair\n_, _ = x, y")
	if fixed.Text() != string(want) {
		t.Errorf("Text() = %q, want %q", fixed.Text(), want)
	}

	if got := load(t, []byte(fixed.Text())).run(t); len(got) != 0 {
		t.Errorf("Got diagnostics %v after fix", got)
	}
}

func TestRegex(t *testing.T) {
	t.Parallel()

	errorText := func(compile func(string) (*regexp.Regexp, error), expr string) string {
		_, err := compile(expr)

		return err.Error()
	}

	testCases := [...]struct {
		name string
		decl string
		lit  string
		want string
	}{
		{"invalid", `var _ = regexp.MustCompile("[")`, `"["`, errorText(regexp.Compile, "[")},
		{"match string", `var _, _ = regexp.MatchString("a(b", "ab")`, `"a(b"`, errorText(regexp.Compile, "a(b")},
		{"posix", "var _, _ = regexp.CompilePOSIX(`\\d`)", "`\\d`", errorText(regexp.CompilePOSIX, `\d`)},
		{"valid", `var _ = regexp.MustCompile("[a-z]")`, "", ""},
		{"perl in re2", "var _ = regexp.MustCompile(`\\d`)", "", ""},
		{"not literal", `var _ = regexp.MustCompile("[" + "]")`, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := "package test\n\nimport \"regexp\"\n\n" + tc.decl + "\n"
			u := load(t, []byte(src))
			diagnostics := u.run(t)

			if tc.want == "" {
				if len(diagnostics) != 0 {
					t.Errorf("Got unexpected diagnostics %v", diagnostics)
				}

				return
			}

			if len(diagnostics) != 1 {
				t.Fatalf("Got diagnostics %v, want one", diagnostics)
			}

			d := diagnostics[0]
			if d.ID != match.RegexID || d.Message != tc.want {
				t.Errorf("Got %s %q, want %s %q", d.ID, d.Message, match.RegexID, tc.want)
			}

			if lit := src[d.Location.Span.Start:d.Location.Span.End()]; lit != tc.lit {
				t.Errorf("Diagnostic at %q, want %q", lit, tc.lit)
			}
		})
	}
}

func TestRegexFix(t *testing.T) {
	t.Parallel()

	src := "package test\n\nimport \"regexp\"\n\nvar re = regexp.MustCompile( /* bad */ \"[\" )\n"
	u := load(t, []byte(src))

	diagnostics := u.run(t)
	if len(diagnostics) != 1 {
		t.Fatalf("Got diagnostics %v, want one", diagnostics)
	}

	actions, err := u.set.Fixes(u.pass, diagnostics[0])
	if err != nil || len(actions) != 1 || actions[0].Title != match.RegexFixTitle {
		t.Fatalf("Fixes() = %v, %v, want %q", actions, err, match.RegexFixTitle)
	}

	fixed, err := actions[0].Apply()
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	const want = "package test\n\nimport \"regexp\"\n\nvar re = regexp.MustCompile( /* bad */ \"valid regex\" )\n"
	if fixed.Text() != want {
		t.Errorf("Text() = %q, want %q", fixed.Text(), want)
	}

	if got := load(t, []byte(fixed.Text())).run(t); len(got) != 0 {
		t.Errorf("Got diagnostics %v after fix", got)
	}
}

func TestProvider(t *testing.T) {
	t.Parallel()

	src := "package test\n\nimport \"regexp\"\n\nvar re = regexp.MustCompile(\"a\")\n\nvar e error = nil\n"
	u := load(t, []byte(src))

	var call, lit, nilIdent *syntax.Node
	for n := range u.tree.Root().Preorder() {
		switch {
		case n.Kind() == syntax.Invocation:
			call = n

		case n.Kind() == syntax.Literal && n.TokenText() == `"a"`:
			lit = n

		case n.Kind() == syntax.Identifier && n.TokenText() == "nil":
			nilIdent = n
		}
	}

	sym, ok, err := u.provider.SymbolOf(call)
	if err != nil || !ok || sym.Qualified != "regexp.MustCompile" || sym.Kind != facts.SymbolFunction {
		t.Errorf("SymbolOf() = %+v, %t, %v", sym, ok, err)
	}

	c, ok, err := u.provider.ConstantValue(lit)
	if s, isString := c.StringValue(); err != nil || !ok || !isString || s != "a" {
		t.Errorf("ConstantValue() = %+v, %t, %v", c, ok, err)
	}

	info, err := u.provider.TypeOf(lit)
	if err != nil || info.Declared.Name != "untyped string" || info.Converted.Special != facts.SpecialString {
		t.Errorf("TypeOf() = %+v, %v", info, err)
	}

	if _, ok, err := u.provider.ConstantValue(nilIdent); err != nil || ok {
		t.Errorf("ConstantValue(nil) = %t, %v, want not constant", ok, err)
	}

	foreign := syntax.NewToken(syntax.Literal, `"a"`)
	if _, _, err := u.provider.ConstantValue(foreign); !errors.Is(err, facts.ErrHostContract) {
		t.Errorf("ConstantValue() error = %v, want %v", err, facts.ErrHostContract)
	}
}

func TestGrammarFormat(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name string
		node *syntax.Node
		want string
	}{
		{"literal", syntax.NewToken(syntax.Literal, `"valid regex"`), `"valid regex"`},
		{"expression", syntax.NewNode(syntax.Binary,
			syntax.NewToken(syntax.Literal, "1"),
			syntax.NewToken(syntax.Punctuation, "+"),
			syntax.NewToken(syntax.Literal, "2"),
		), "1 + 2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := (Grammar{}).Format(tc.node)
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}

			if got.Text() != tc.want || got.Kind() != tc.node.Kind() {
				t.Errorf("Format() = %s %q, want %s %q", got.Kind(), got.Text(), tc.node.Kind(), tc.want)
			}
		})
	}
}
