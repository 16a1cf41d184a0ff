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

package match

import (
	"errors"

	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/pattern"
	"fillmore-labs.com/fixkit/internal/rewrite"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// RegexID is the ID of [RegexDescriptor].
const RegexID = "Regex"

// RegexDescriptor describes invalid regular expression patterns.
var RegexDescriptor = &diag.Descriptor{
	ID:               RegexID,
	Title:            "Regex error parsing string argument",
	MessageFormat:    "%s",
	Category:         "Syntax",
	Description:      "The constant pattern passed to a regular expression function does not compile.",
	Severity:         diag.Error,
	EnabledByDefault: true,
}

// Regex reports constant patterns of known regular expression functions that do not compile.
type Regex struct {
	// Targets overrides the functions checked, the grammar's defaults are used when empty.
	Targets []RegexTarget
}

var _ Matcher = Regex{}

// Descriptor implements [Matcher].
func (Regex) Descriptor() *diag.Descriptor { return RegexDescriptor }

// Kinds implements [Matcher].
func (Regex) Kinds() []syntax.Kind { return []syntax.Kind{syntax.Invocation} }

// Match implements [Matcher].
func (r Regex) Match(p *Pass, call *syntax.Node) (diag.Diagnostic, bool, error) {
	name := syntax.CallName(call)
	if name == "" {
		return diag.Diagnostic{}, false, nil
	}

	targets := r.Targets
	if len(targets) == 0 {
		targets = p.Grammar.RegexTargets()
	}

	var candidates []RegexTarget
	for _, t := range targets {
		if t.SimpleName() == name {
			candidates = append(candidates, t)
		}
	}

	if len(candidates) == 0 {
		return diag.Diagnostic{}, false, nil
	}

	sym, ok, err := p.Facts.SymbolOf(call)
	if err != nil || !ok {
		return diag.Diagnostic{}, false, err
	}

	for _, t := range candidates {
		if sym.Qualified == t.Func {
			return r.check(p, call, t)
		}
	}

	return diag.Diagnostic{}, false, nil
}

func (Regex) check(p *Pass, call *syntax.Node, t RegexTarget) (diag.Diagnostic, bool, error) {
	args := syntax.CallArguments(call)
	if len(args) <= t.Arg {
		return diag.Diagnostic{}, false, nil
	}

	lit := args[t.Arg]
	if lit == nil || lit.Kind() != syntax.Literal {
		return diag.Diagnostic{}, false, nil
	}

	value, ok, err := p.Facts.ConstantValue(lit)
	if err != nil || !ok {
		return diag.Diagnostic{}, false, err
	}

	expr, ok := value.StringValue()
	if !ok {
		return diag.Diagnostic{}, false, nil
	}

	var probe *pattern.ProbeError
	if err := pattern.Check(t.Dialect, expr); !errors.As(err, &probe) {
		return diag.Diagnostic{}, false, nil
	}

	return p.Report(RegexDescriptor, lit, probe.Message)
}

const (
	// RegexFixTitle is the title of the fix for [RegexDescriptor].
	RegexFixTitle = "Fix regex"

	// RegexPlaceholder is the pattern substituted for invalid patterns. It is valid in all dialects.
	RegexPlaceholder = "valid regex"
)

// RegexFix replaces an invalid pattern literal with a placeholder.
type RegexFix struct{}

var _ Fixer = RegexFix{}

// ID implements [Fixer].
func (RegexFix) ID() string { return RegexID }

// Title implements [Fixer].
func (RegexFix) Title() string { return RegexFixTitle }

// Kinds implements [Fixer].
func (RegexFix) Kinds() []syntax.Kind { return []syntax.Kind{syntax.Literal} }

// Fix implements [Fixer].
func (RegexFix) Fix(p *Pass, lit *syntax.Node) (rewrite.Edit, error) {
	repl := p.Grammar.StringLiteral(RegexPlaceholder).WithAnnotations(syntax.AnnotationFormat)

	return rewrite.Replace(lit, repl), nil
}

// Default returns the matchers and fixers of all checks.
func Default() ([]Matcher, []Fixer) {
	return []Matcher{MakeConst{}, Regex{}}, []Fixer{MakeConstFix{}, RegexFix{}}
}
