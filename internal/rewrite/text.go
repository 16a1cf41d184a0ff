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

package rewrite

import "fillmore-labs.com/fixkit/internal/syntax"

// TextEdit replaces a range of the original source text.
type TextEdit struct {
	Span    syntax.Span
	NewText string
}

// TextEdit projects e onto the source text of tree. The trivia of the target is
// preserved, so only the inner text is replaced.
func (e Edit) TextEdit(tree *syntax.Tree) (TextEdit, error) {
	if e.Target == nil || e.Replacement == nil {
		return TextEdit{}, ErrInvalidEdit
	}

	if !tree.Contains(e.Target) {
		return TextEdit{}, ErrNodeNotFound
	}

	return TextEdit{Span: tree.Span(e.Target), NewText: e.Replacement.InnerText()}, nil
}

// ApplyText applies non-overlapping text edits, sorted by start offset, to src.
func ApplyText(src string, edits []TextEdit) string {
	var (
		out  []byte
		last int
	)

	for _, e := range edits {
		out = append(out, src[last:e.Span.Start]...)
		out = append(out, e.NewText...)
		last = e.Span.End()
	}

	out = append(out, src[last:]...)

	return string(out)
}
