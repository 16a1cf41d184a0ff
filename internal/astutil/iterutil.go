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

package astutil

import (
	"go/ast"
	"iter"
)

// NoLintDecls yields the top level declarations whose doc comment carries a nolint directive.
func NoLintDecls(file *ast.File) iter.Seq[ast.Decl] {
	return func(yield func(ast.Decl) bool) {
		for _, decl := range file.Decls {
			var doc *ast.CommentGroup

			switch decl := decl.(type) {
			case *ast.FuncDecl:
				doc = decl.Doc

			case *ast.GenDecl:
				doc = decl.Doc
			}

			if !GroupHasNoLint(doc) {
				continue
			}

			if !yield(decl) {
				return
			}
		}
	}
}
