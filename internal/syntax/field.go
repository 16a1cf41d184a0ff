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

// Field names the role a [Node] plays inside its parent.
type Field uint8

//go:generate go tool stringer -type Field -linecomment
const (
	// FieldNone marks children without a distinguished role.
	FieldNone Field = iota // none

	// FieldName is a declared name.
	FieldName // name

	// FieldType is a declared type.
	FieldType // type

	// FieldValue is an initializer.
	FieldValue // value

	// FieldFunction is the callee of an invocation.
	FieldFunction // function

	// FieldArgument is an invocation argument.
	FieldArgument // argument

	// FieldTarget is the qualifier of a member access.
	FieldTarget // target

	// FieldMember is the selected member of a member access.
	FieldMember // member

	// FieldLeft is the left operand of an assignment or binary expression.
	FieldLeft // left

	// FieldRight is the right operand of an assignment or binary expression.
	FieldRight // right

	// FieldOperand is the operand of a unary or parenthesized expression.
	FieldOperand // operand

	// FieldBody is a function body.
	FieldBody // body
)
