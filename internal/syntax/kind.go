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

// Kind is the grammar-neutral tag of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindInvalid is the zero value and never appears in a built tree.
	KindInvalid Kind = iota // invalid

	// CompilationUnit is the root of a source unit.
	CompilationUnit // compilation-unit

	// FunctionDeclaration is a named function, method or local function.
	FunctionDeclaration // function-declaration

	// FunctionLiteral is an anonymous function or lambda.
	FunctionLiteral // function-literal

	// Block is a braced statement list.
	Block // block

	// LocalDeclaration is a local variable declaration statement.
	LocalDeclaration // local-declaration

	// VariableDeclaration groups declared names with their type and initializers.
	VariableDeclaration // variable-declaration

	// VariableDeclarator is a single declared name with its initializer.
	VariableDeclarator // variable-declarator

	// Assignment is an assignment statement or expression.
	Assignment // assignment

	// Invocation is a call expression.
	Invocation // invocation

	// MemberAccess is a qualified name or selector expression.
	MemberAccess // member-access

	// ArgumentList holds the arguments of an invocation.
	ArgumentList // argument-list

	// Argument wraps a single argument expression.
	Argument // argument

	// Unary is a prefix or postfix operator expression.
	Unary // unary

	// Binary is an infix operator expression.
	Binary // binary

	// Parenthesized is an expression in parentheses.
	Parenthesized // parenthesized

	// Other is any construct without a dedicated kind. See [Node.Native].
	Other // other

	// Identifier is a name token.
	Identifier // identifier

	// Literal is a literal token.
	Literal // literal

	// Modifier is a declaration modifier token.
	Modifier // modifier

	// Keyword is a reserved word token.
	Keyword // keyword

	// Punctuation is an operator or delimiter token.
	Punctuation // punctuation
)

// IsToken reports whether nodes of this kind are leaves carrying source text.
func (k Kind) IsToken() bool { return k >= Identifier && k <= Punctuation }

// Matchable reports whether matchers may be registered for this kind.
func (k Kind) Matchable() bool { return k > KindInvalid && k < Identifier }
