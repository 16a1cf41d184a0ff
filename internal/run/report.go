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

package run

import (
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/fixkit/internal/astutil"
	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/match"
)

type reporter struct {
	*analysis.Pass
	currentFile astutil.CurrentFile
	set         *match.Set
	pass        *match.Pass
	fixes       bool
}

func (r reporter) report(diagnostics []diag.Diagnostic) {
	var suppressed []ast.Decl
	for decl := range astutil.NoLintDecls(r.currentFile.File()) {
		suppressed = append(suppressed, decl)
	}

diagnostics:
	for _, d := range diagnostics {
		pos := r.currentFile.Pos(d.Location.Span.Start)
		end := r.currentFile.Pos(d.Location.Span.End())

		for _, decl := range suppressed {
			if decl.Pos() <= pos && pos < decl.End() {
				continue diagnostics
			}
		}

		if r.currentFile.NoLintComment(pos) {
			continue
		}

		r.Report(analysis.Diagnostic{
			Pos:            pos,
			End:            end,
			Category:       d.ID,
			Message:        d.Message,
			SuggestedFixes: r.suggestedFixes(d),
		})
	}
}

func (r reporter) suggestedFixes(d diag.Diagnostic) []analysis.SuggestedFix {
	if !r.fixes || !r.set.Fixable(d.ID) {
		return nil
	}

	actions, err := r.set.Fixes(r.pass, d)
	if err != nil {
		internalError(r.Pass, r.rangeOf(d), "Can't fix %s: %v", d.ID, err)

		return nil
	}

	fixes := make([]analysis.SuggestedFix, 0, len(actions))

	for _, a := range actions {
		edit, err := a.TextEdit()
		if err != nil {
			internalError(r.Pass, r.rangeOf(d), "Fix %q failed: %v", a.Title, err)

			continue
		}

		fixes = append(fixes, analysis.SuggestedFix{
			Message: a.Title,
			TextEdits: []analysis.TextEdit{{
				Pos:     r.currentFile.Pos(edit.Span.Start),
				End:     r.currentFile.Pos(edit.Span.End()),
				NewText: []byte(edit.NewText),
			}},
		})
	}

	return fixes
}

type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }

func (r reporter) rangeOf(d diag.Diagnostic) analysis.Range {
	return span{r.currentFile.Pos(d.Location.Span.Start), r.currentFile.Pos(d.Location.Span.End())}
}

// internalErrorCategory is the category of diagnostics about failures of the analyzer itself.
const internalErrorCategory = "internal"

// internalError reports a bug in fixkit or its host integration at rng.
func internalError(p *analysis.Pass, rng analysis.Range, format string, args ...any) {
	p.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: internalErrorCategory,
		Message:  "Internal Error: " + fmt.Sprintf(format, args...),
	})
}
