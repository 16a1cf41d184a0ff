// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package astutil provides per-file helpers for the go/analysis host.
package astutil

import (
	"go/ast"
	"go/token"
	"strings"
)

// linterName is matched against nolint directives.
const linterName = "fixkit"

// CurrentFile is the file under analysis with its position table and nolint lines.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	nolint    map[int]struct{} // lines carrying a nolint:fixkit comment
}

// NewCurrentFile looks up the position table of file. The result is invalid
// when file is nil or does not belong to fset.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	c := CurrentFile{file: file, handle: handle, generated: ast.IsGenerated(file)}

	for _, group := range file.Comments {
		for _, comment := range group.List {
			if IsNoLint(comment.Text) {
				if c.nolint == nil {
					c.nolint = make(map[int]struct{})
				}

				c.nolint[handle.Line(comment.Pos())] = struct{}{}
			}
		}
	}

	return c
}

// Valid reports whether the position table was found.
func (c CurrentFile) Valid() bool { return c.handle != nil }

// Generated reports whether the file carries a "Code generated ... DO NOT EDIT." comment.
func (c CurrentFile) Generated() bool { return c.generated }

func (c CurrentFile) File() *ast.File { return c.file }

func (c CurrentFile) Handle() *token.File { return c.handle }

func (c CurrentFile) Name() string { return c.handle.Name() }

// Pos converts a byte offset into a [token.Pos]. Offsets past the end are clamped.
func (c CurrentFile) Pos(offset int) token.Pos {
	return c.handle.Pos(min(offset, c.handle.Size()))
}

// NoLintComment reports whether the line of pos carries a nolint:fixkit comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.nolint == nil || !pos.IsValid() {
		return false
	}

	_, ok := c.nolint[c.handle.Line(pos)]

	return ok
}

// NoLintFile reports whether the package doc comment suppresses the linter for the whole file.
func (c CurrentFile) NoLintFile() bool {
	return c.file != nil && GroupHasNoLint(c.file.Doc)
}

// GroupHasNoLint reports whether the last line of a doc comment is a nolint directive.
func GroupHasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && len(doc.List) > 0 && IsNoLint(doc.List[len(doc.List)-1].Text)
}

// IsNoLint reports whether a comment is a nolint directive naming fixkit or all
// linters, like "//nolint:fixkit" or "//nolint:errcheck,fixkit // reason".
func IsNoLint(text string) bool {
	rest, ok := strings.CutPrefix(text, "//")
	if !ok {
		return false
	}

	rest, ok = strings.CutPrefix(strings.TrimLeft(rest, " \t"), "nolint:")
	if !ok {
		return false
	}

	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		rest = rest[:i]
	}

	for linter := range strings.SplitSeq(rest, ",") {
		if l := strings.ToLower(linter); l == linterName || l == "all" {
			return true
		}
	}

	return false
}
