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

package factstest

import (
	"testing"

	"fillmore-labs.com/fixkit/internal/syntax"
)

// Find returns the first node of the given kind whose text without trivia is text.
func Find(tb testing.TB, tree *syntax.Tree, kind syntax.Kind, text string) *syntax.Node {
	tb.Helper()

	for n := range tree.Root().Preorder() {
		if n.Kind() == kind && n.InnerText() == text {
			return n
		}
	}

	tb.Fatalf("No %s %q in tree", kind, text)

	return nil
}
