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

// Package syntax provides an immutable, lossless syntax tree shared by all grammar front ends.
//
// Trees are built from [Element] descriptions, never mutated, and rewritten by
// copying the path from the root to the changed node. Trivia (whitespace and
// comments) is attached to tokens, so every tree reproduces its source text.
package syntax
