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

package csfront

import (
	"go/constant"
	"math"
	"strings"

	"fillmore-labs.com/fixkit/internal/facts"
)

// Names of the predefined types.
const (
	typeBool    = "System.Boolean"
	typeSByte   = "System.SByte"
	typeByte    = "System.Byte"
	typeInt16   = "System.Int16"
	typeUInt16  = "System.UInt16"
	typeInt32   = "System.Int32"
	typeUInt32  = "System.UInt32"
	typeInt64   = "System.Int64"
	typeUInt64  = "System.UInt64"
	typeChar    = "System.Char"
	typeSingle  = "System.Single"
	typeDouble  = "System.Double"
	typeDecimal = "System.Decimal"
	typeString  = "System.String"
	typeObject  = "System.Object"
	typeNull    = "<null>"
)

var keywords = map[string]string{
	"bool":    typeBool,
	"sbyte":   typeSByte,
	"byte":    typeByte,
	"short":   typeInt16,
	"ushort":  typeUInt16,
	"int":     typeInt32,
	"uint":    typeUInt32,
	"long":    typeInt64,
	"ulong":   typeUInt64,
	"char":    typeChar,
	"float":   typeSingle,
	"double":  typeDouble,
	"decimal": typeDecimal,
	"string":  typeString,
	"object":  typeObject,
}

// keyword returns the C# keyword of a predefined type.
func keyword(name string) (string, bool) {
	for k, n := range keywords {
		if n == name {
			return k, true
		}
	}

	return "", false
}

// predefined describes a type by keyword or name, like "int", "Int32" or "System.Int32".
func predefined(name string) facts.Type {
	name = strings.TrimPrefix(name, "global::")
	if n, ok := keywords[name]; ok {
		name = n
	} else if _, ok := keyword("System." + name); ok {
		name = "System." + name
	}

	t := facts.Type{Name: name}

	switch name {
	case typeString:
		t.Special, t.Reference = facts.SpecialString, true

	case typeObject:
		t.Special, t.Reference = facts.SpecialObject, true

	case typeNull:
		t.Reference = true

	default:
		if _, ok := keyword(name); !ok {
			// Unknown types are assumed to be classes.
			t.Reference = true
		}
	}

	return t
}

func nullable(of facts.Type) facts.Type {
	return facts.Type{Name: "System.Nullable<" + of.Name + ">", Nullable: true, Handle: of}
}

// implicitNumeric lists the implicit numeric conversions.
var implicitNumeric = map[string][]string{
	typeSByte:  {typeInt16, typeInt32, typeInt64, typeSingle, typeDouble, typeDecimal},
	typeByte:   {typeInt16, typeUInt16, typeInt32, typeUInt32, typeInt64, typeUInt64, typeSingle, typeDouble, typeDecimal},
	typeInt16:  {typeInt32, typeInt64, typeSingle, typeDouble, typeDecimal},
	typeUInt16: {typeInt32, typeUInt32, typeInt64, typeUInt64, typeSingle, typeDouble, typeDecimal},
	typeInt32:  {typeInt64, typeSingle, typeDouble, typeDecimal},
	typeUInt32: {typeInt64, typeUInt64, typeSingle, typeDouble, typeDecimal},
	typeInt64:  {typeSingle, typeDouble, typeDecimal},
	typeUInt64: {typeSingle, typeDouble, typeDecimal},
	typeChar:   {typeUInt16, typeInt32, typeUInt32, typeInt64, typeUInt64, typeSingle, typeDouble, typeDecimal},
	typeSingle: {typeDouble},
}

type intRange struct{ min, max int64 }

// constantRanges are the targets of implicit constant expression conversions.
var constantRanges = map[string]intRange{
	typeSByte:  {math.MinInt8, math.MaxInt8},
	typeByte:   {0, math.MaxUint8},
	typeInt16:  {math.MinInt16, math.MaxInt16},
	typeUInt16: {0, math.MaxUint16},
	typeUInt32: {0, math.MaxUint32},
	typeUInt64: {0, math.MaxInt64},
}

// convertible reports whether a value of type from, with constant value c if
// known, converts implicitly to type to.
func convertible(from, to facts.Type, c *facts.Constant) bool {
	switch {
	case from.Name == "" || to.Name == "":
		return false

	case from.Name == to.Name:
		return true

	case from.Name == typeNull:
		return to.Reference || to.Nullable

	case to.Special == facts.SpecialObject:
		return true

	case to.Nullable:
		of, _ := to.Handle.(facts.Type)

		return convertible(from, of, c)
	}

	for _, t := range implicitNumeric[from.Name] {
		if t == to.Name {
			return true
		}
	}

	if c == nil || c.Kind != facts.ConstInt {
		return false
	}

	switch from.Name {
	case typeInt32:
		r, ok := constantRanges[to.Name]
		if !ok {
			return false
		}

		v, exact := constant.Int64Val(c.Value)

		return exact && r.min <= v && v <= r.max

	case typeInt64:
		return to.Name == typeUInt64 && constant.Sign(c.Value) >= 0
	}

	return false
}

// numericRank orders the numeric types for binary operator promotion.
var numericRank = map[string]int{
	typeInt32:   1,
	typeUInt32:  2,
	typeInt64:   3,
	typeUInt64:  4,
	typeSingle:  5,
	typeDouble:  6,
	typeDecimal: 7,
}

// promote returns the result type of a binary numeric operation.
func promote(a, b string) string {
	ra, rb := numericRank[a], numericRank[b]
	if ra == 0 {
		ra = 1 // smaller integral types promote to int
	}

	if rb == 0 {
		rb = 1
	}

	for name, rank := range numericRank {
		if rank == max(ra, rb) {
			return name
		}
	}

	return typeInt32
}
