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
	"strings"

	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/facts"
	"fillmore-labs.com/fixkit/internal/rewrite"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// MakeConstID is the ID of [MakeConstDescriptor].
const MakeConstID = "MakeConst"

// MakeConstDescriptor describes local variables that can be declared constant.
var MakeConstDescriptor = &diag.Descriptor{
	ID:            MakeConstID,
	Title:         "Variable can be made constant",
	MessageFormat: "Variable '%s' can be made constant",
	Category:      "Usage",
	Description: "A local variable initialized with compile-time constants " +
		"and never assigned afterwards can be declared as a constant.",
	Severity:         diag.Warning,
	EnabledByDefault: true,
}

// MakeConst reports local declarations whose variables could be constants.
type MakeConst struct{}

var _ Matcher = MakeConst{}

// Descriptor implements [Matcher].
func (MakeConst) Descriptor() *diag.Descriptor { return MakeConstDescriptor }

// Kinds implements [Matcher].
func (MakeConst) Kinds() []syntax.Kind { return []syntax.Kind{syntax.LocalDeclaration} }

// Match implements [Matcher].
func (MakeConst) Match(p *Pass, stmt *syntax.Node) (diag.Diagnostic, bool, error) {
	if p.Grammar.IsConstant(stmt) {
		return diag.Diagnostic{}, false, nil
	}

	declarators := syntax.Declarators(stmt)
	if len(declarators) == 0 {
		return diag.Diagnostic{}, false, nil
	}

	for _, d := range declarators {
		ok, err := constantInitializer(p, d)
		if err != nil || !ok {
			return diag.Diagnostic{}, false, err
		}
	}

	names := make([]string, 0, len(declarators))
	for _, d := range declarators {
		sym, ok, err := p.Facts.SymbolOf(d.Name)
		if err != nil || !ok {
			return diag.Diagnostic{}, false, err
		}

		written, err := p.Facts.WrittenOutside(sym, stmt)
		if err != nil || written {
			return diag.Diagnostic{}, false, err
		}

		names = append(names, d.Name.TokenText())
	}

	return p.Report(MakeConstDescriptor, stmt, strings.Join(names, ", "))
}

// constantInitializer reports whether the declarator is initialized with a
// constant its variable type accepts without user-defined conversion.
func constantInitializer(p *Pass, d syntax.Declarator) (bool, error) {
	if d.Value == nil {
		return false, nil
	}

	value, ok, err := p.Facts.ConstantValue(d.Value)
	if err != nil || !ok {
		return false, err
	}

	typed := d.Type
	if typed == nil {
		typed = d.Name
	}

	info, err := p.Facts.TypeOf(typed)
	if err != nil {
		return false, err
	}

	variableType := info.Converted

	conversion, err := p.Facts.ClassifyConversion(d.Value, variableType)
	if err != nil || !conversion.Exists || conversion.UserDefined {
		return false, err
	}

	switch {
	case value.Kind == facts.ConstString:
		return variableType.Special == facts.SpecialString, nil

	case value.IsNull():
		return variableType.Reference, nil

	default:
		// Nullable value types cannot be declared const.
		return !variableType.Reference && !variableType.Nullable, nil
	}
}

// MakeConstFixTitle is the title of the fix for [MakeConstDescriptor].
const MakeConstFixTitle = "Make constant"

// MakeConstFix turns a local variable declaration into a constant declaration.
type MakeConstFix struct{}

var _ Fixer = MakeConstFix{}

// ID implements [Fixer].
func (MakeConstFix) ID() string { return MakeConstID }

// Title implements [Fixer].
func (MakeConstFix) Title() string { return MakeConstFixTitle }

// Kinds implements [Fixer].
func (MakeConstFix) Kinds() []syntax.Kind { return []syntax.Kind{syntax.LocalDeclaration} }

// Fix implements [Fixer].
func (MakeConstFix) Fix(p *Pass, stmt *syntax.Node) (rewrite.Edit, error) {
	decl, err := p.Grammar.ConstDeclaration(p, stmt)
	if err != nil {
		return rewrite.Edit{}, err
	}

	return rewrite.Replace(stmt, decl), nil
}
