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

// Package facts defines the semantic questions pattern matchers may ask about syntax nodes.
//
// A [Provider] is implemented once per grammar front end. Matchers never reason
// about types or constants themselves.
package facts

import (
	"errors"
	"go/constant"

	"fillmore-labs.com/fixkit/internal/syntax"
)

// ErrHostContract is returned when a front end cannot answer a query consistently,
// for example for a node that is not part of the analyzed tree.
var ErrHostContract = errors.New("host contract violation")

// Provider answers semantic queries about the nodes of one analyzed tree.
//
// Methods return a non-nil error only for host contract violations.
// Implementations must be safe for concurrent use.
type Provider interface {
	// ConstantValue returns the compile-time value of expr, if any.
	ConstantValue(expr *syntax.Node) (Constant, bool, error)

	// TypeOf returns the static type of an expression, a type expression or a declared name.
	TypeOf(n *syntax.Node) (TypeInfo, error)

	// ClassifyConversion describes the implicit conversion of expr to the given type.
	ClassifyConversion(expr *syntax.Node, to Type) (Conversion, error)

	// SymbolOf returns the entity declared or referenced by n.
	// For invocations this is the invoked function or method.
	SymbolOf(n *syntax.Node) (Symbol, bool, error)

	// WrittenOutside reports whether sym is assigned anywhere outside the subtree rooted at region.
	WrittenOutside(sym Symbol, region *syntax.Node) (bool, error)
}

// ConstKind classifies a [Constant].
type ConstKind uint8

const (
	// ConstNull is the null reference.
	ConstNull ConstKind = iota

	// ConstBool is a boolean constant.
	ConstBool

	// ConstString is a string constant.
	ConstString

	// ConstInt is an integer constant.
	ConstInt

	// ConstFloat is a floating point constant.
	ConstFloat

	// ConstComplex is a complex constant.
	ConstComplex

	// ConstChar is a character constant.
	ConstChar
)

// Constant is a compile-time value. Value is [constant.MakeUnknown] for [ConstNull].
type Constant struct {
	Kind  ConstKind
	Value constant.Value
}

// IsNull reports whether c is the null reference.
func (c Constant) IsNull() bool { return c.Kind == ConstNull }

// StringValue returns the value of a string constant and false for every other kind.
func (c Constant) StringValue() (string, bool) {
	if c.Kind != ConstString || c.Value == nil || c.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(c.Value), true
}

// SpecialType identifies types the matchers treat specially.
type SpecialType uint8

const (
	// SpecialNone is any type without special treatment.
	SpecialNone SpecialType = iota

	// SpecialString is exactly the language's string type.
	SpecialString

	// SpecialObject is the root of the type hierarchy, like C# object or Go's empty interface.
	SpecialObject
)

// Type describes a static type.
type Type struct {
	// Name is the fully qualified name of the type.
	Name string

	// Special marks the string and object types.
	Special SpecialType

	// Reference is set for types whose values are references and can hold null.
	Reference bool

	// Nullable is set for value types accepting null.
	Nullable bool

	// Handle is the front end representation of the type.
	Handle any
}

// TypeInfo is the type of a node before and after implicit conversion at its usage site.
type TypeInfo struct {
	Declared  Type
	Converted Type
}

// Conversion describes an implicit conversion.
type Conversion struct {
	Exists      bool
	UserDefined bool
}

// SymbolKind classifies a [Symbol].
type SymbolKind uint8

const (
	// SymbolOther is any entity not listed below.
	SymbolOther SymbolKind = iota

	// SymbolLocal is a local variable.
	SymbolLocal

	// SymbolFunction is a function or static method.
	SymbolFunction

	// SymbolMethod is a method with a receiver.
	SymbolMethod

	// SymbolNamespace is a package or namespace.
	SymbolNamespace
)

// Symbol is a named declaration.
//
// Identity is structural: two symbols denote the same entity when their IDs are equal,
// regardless of the tree version they were obtained from.
type Symbol struct {
	// ID is unique per declaration site.
	ID string

	// Name is the simple name.
	Name string

	// Qualified is the fully qualified name, like "regexp.MustCompile".
	Qualified string

	Kind SymbolKind

	// Handle is the front end representation of the symbol.
	Handle any
}
