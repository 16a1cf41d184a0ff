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

// Package match runs pattern matchers over syntax trees and offers fixes for their diagnostics.
//
// Matchers and fixers are grammar neutral. Everything language specific is
// answered by a [facts.Provider] or a [Grammar].
package match

import (
	"errors"
	"fmt"

	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/facts"
	"fillmore-labs.com/fixkit/internal/rewrite"
	"fillmore-labs.com/fixkit/internal/syntax"
)

var (
	// ErrUnsupportedKind is returned when a matcher is registered for a kind that is never matched.
	ErrUnsupportedKind = fmt.Errorf("%w: unsupported node kind", diag.ErrConfiguration)

	// ErrUnknownFixer is returned for a fixer without a registered descriptor.
	ErrUnknownFixer = fmt.Errorf("%w: fixer without descriptor", diag.ErrConfiguration)

	// ErrDuplicateFixer is returned when two fixers handle the same descriptor.
	ErrDuplicateFixer = fmt.Errorf("%w: duplicate fixer", diag.ErrConfiguration)

	// ErrNoFixTarget is returned when a diagnostic does not refer to a fixable node of the tree.
	ErrNoFixTarget = errors.New("no fix target")
)

// Matcher is a predicate producing at most one diagnostic per node.
//
// Unmet preconditions are not errors, Match returns false. Errors are reserved
// for host contract violations. Matchers must be safe for concurrent use.
type Matcher interface {
	// Descriptor describes the diagnostics of this matcher.
	Descriptor() *diag.Descriptor

	// Kinds lists the node kinds this matcher is registered for.
	Kinds() []syntax.Kind

	// Match inspects n.
	Match(p *Pass, n *syntax.Node) (diag.Diagnostic, bool, error)
}

// Fixer proposes an edit resolving diagnostics of one descriptor.
type Fixer interface {
	// ID is the descriptor ID this fixer handles.
	ID() string

	// Title is the human readable label of the fix.
	Title() string

	// Kinds lists the node kinds the fix applies to.
	Kinds() []syntax.Kind

	// Fix builds the edit for the diagnostic reported at n.
	Fix(p *Pass, n *syntax.Node) (rewrite.Edit, error)
}

// Grammar supplies the syntax specific knowledge of one language.
type Grammar interface {
	rewrite.Formatter

	// Name identifies the language.
	Name() string

	// IsConstant reports whether a local declaration already declares constants.
	IsConstant(decl *syntax.Node) bool

	// ConstDeclaration builds a constant declaration equivalent to decl.
	ConstDeclaration(p *Pass, decl *syntax.Node) (*syntax.Node, error)

	// StringLiteral builds a literal token for the string value.
	StringLiteral(value string) *syntax.Node

	// RegexTargets lists the regular expression functions checked by default.
	RegexTargets() []RegexTarget
}

// Pass is the state of analyzing one tree. Facts are cached for the lifetime of the pass.
type Pass struct {
	Tree    *syntax.Tree
	Facts   facts.Provider
	Grammar Grammar

	// Path is the name of the analyzed source unit, used in diagnostic locations.
	Path string

	registry *diag.Registry
}

// Location returns the diagnostic location of n.
func (p *Pass) Location(n *syntax.Node) diag.Location {
	return diag.Location{Path: p.Path, Span: p.Tree.Span(n)}
}

// Report creates a diagnostic for d located at n.
func (p *Pass) Report(d *diag.Descriptor, n *syntax.Node, args ...any) (diag.Diagnostic, bool, error) {
	r, err := p.registry.Create(d, p.Location(n), args...)
	if err != nil {
		return diag.Diagnostic{}, false, err
	}

	return r, true, nil
}
