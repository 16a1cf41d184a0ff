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

package syntax

import "strings"

// Trivia is whitespace and comment text attached to the edge of a token.
type Trivia string

// HasNewline reports whether the trivia spans a line break.
func (t Trivia) HasNewline() bool { return strings.ContainsRune(string(t), '\n') }

// HasComment reports whether the trivia contains a comment.
func (t Trivia) HasComment() bool {
	return strings.Contains(string(t), "//") || strings.Contains(string(t), "/*")
}

// Annotation marks a [Node] for downstream processing.
type Annotation uint8

const (
	// AnnotationFormat requests that a formatter re-layout the node.
	AnnotationFormat Annotation = 1 << iota
)

// splitTrivia divides the trivia between two tokens. The trailing part of the
// preceding token extends up to and including the first line break outside a
// comment, the remainder leads the following token.
func splitTrivia(gap string) (trailing, leading string) {
	for i := 0; i < len(gap); i++ {
		switch gap[i] {
		case '\n':
			return gap[:i+1], gap[i+1:]

		case '/':
			if i+1 >= len(gap) {
				break
			}

			switch gap[i+1] {
			case '/':
				if j := strings.IndexByte(gap[i:], '\n'); j >= 0 {
					i += j - 1
				} else {
					i = len(gap)
				}

			case '*':
				if j := strings.Index(gap[i+2:], "*/"); j >= 0 {
					i += j + 3
				} else {
					i = len(gap)
				}
			}
		}
	}

	return gap, ""
}
