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
	"testing"

	"fillmore-labs.com/fixkit/internal/facts"
)

func TestLiteral(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name, native, text string
		kind               facts.ConstKind
		value              string
		typ                string
	}{
		{"int", "integer_literal", "42", facts.ConstInt, "42", typeInt32},
		{"uint", "integer_literal", "3_000_000_000", facts.ConstInt, "3000000000", typeUInt32},
		{"long", "integer_literal", "1L", facts.ConstInt, "1", typeInt64},
		{"ulong", "integer_literal", "0xFFul", facts.ConstInt, "255", typeUInt64},
		{"binary", "integer_literal", "0b101", facts.ConstInt, "5", typeInt32},
		{"double", "real_literal", "1.5", facts.ConstFloat, "3/2", typeDouble},
		{"float", "real_literal", ".5f", facts.ConstFloat, "1/2", typeSingle},
		{"decimal", "real_literal", "2m", facts.ConstFloat, "2", typeDecimal},
		{"true", "boolean_literal", "true", facts.ConstBool, "true", typeBool},
		{"char", "character_literal", `'\x41'`, facts.ConstChar, "65", typeChar},
		{"string", "string_literal", `"a\tbA"`, facts.ConstString, `"a\tbA"`, typeString},
		{"verbatim", "verbatim_string_literal", `@"a""b\"`, facts.ConstString, `"a\"b\\"`, typeString},
		{"raw", "raw_string_literal", "\"\"\"\n    x\n      y\n    \"\"\"", facts.ConstString, `"x\n  y"`, typeString},
		{"raw single", "raw_string_literal", `"""a"b"""`, facts.ConstString, `"a\"b"`, typeString},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, typ, err := literal(tc.native, tc.text)
			if err != nil {
				t.Fatalf("literal(%q) failed: %v", tc.text, err)
			}

			if c.Kind != tc.kind {
				t.Errorf("Got kind %d, expected %d", c.Kind, tc.kind)
			}

			if got := c.Value.ExactString(); got != tc.value {
				t.Errorf("Got value %s, expected %s", got, tc.value)
			}

			if typ.Name != tc.typ {
				t.Errorf("Got type %s, expected %s", typ.Name, tc.typ)
			}
		})
	}
}

func TestLiteralInvalid(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name, native, text string
	}{
		{"overflow", "integer_literal", "18446744073709551616"},
		{"suffix", "integer_literal", "1uu"},
		{"escape", "string_literal", `"\q"`},
		{"short unicode", "string_literal", `"\u12"`},
		{"two chars", "character_literal", "'ab'"},
		{"raw unterminated", "raw_string_literal", `"""a""`},
		{"interpolated", "interpolated_string_literal", `$"{x}"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := literal(tc.native, tc.text); err == nil {
				t.Errorf("Expected literal(%q) to fail", tc.text)
			}
		})
	}
}

func TestConvertible(t *testing.T) {
	t.Parallel()

	small := facts.Constant{Kind: facts.ConstInt, Value: constant.MakeInt64(200)}
	negative := facts.Constant{Kind: facts.ConstInt, Value: constant.MakeInt64(-1)}

	testCases := [...]struct {
		name     string
		from, to facts.Type
		c        *facts.Constant
		want     bool
	}{
		{"identity", predefined("int"), predefined("Int32"), nil, true},
		{"widening", predefined("int"), predefined("long"), nil, true},
		{"narrowing", predefined("long"), predefined("int"), nil, false},
		{"constant fits", predefined("int"), predefined("byte"), &small, true},
		{"constant overflows", predefined("int"), predefined("sbyte"), &small, false},
		{"negative unsigned", predefined("int"), predefined("uint"), &negative, false},
		{"null to string", predefined(typeNull), predefined("string"), nil, true},
		{"null to value", predefined(typeNull), predefined("int"), nil, false},
		{"null to nullable", predefined(typeNull), nullable(predefined("int")), nil, true},
		{"boxing", predefined("int"), predefined("object"), nil, true},
		{"int to string", predefined("int"), predefined("string"), nil, false},
		{"char to int", predefined("char"), predefined("int"), nil, true},
		{"int to char", predefined("int"), predefined("char"), &small, false},
		{"lifted", predefined("int"), nullable(predefined("long")), nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := convertible(tc.from, tc.to, tc.c); got != tc.want {
				t.Errorf("Got %t, expected %t", got, tc.want)
			}
		})
	}
}

func TestPredefined(t *testing.T) {
	t.Parallel()

	if s := predefined("global::System.String"); s.Special != facts.SpecialString || !s.Reference {
		t.Errorf("Got %+v for string", s)
	}

	if i := predefined("int"); i.Reference || i.Name != typeInt32 {
		t.Errorf("Got %+v for int", i)
	}

	if c := predefined("Customer"); !c.Reference {
		t.Errorf("Expected unknown type to be a reference type: %+v", c)
	}

	if got := promote(typeInt16, typeUInt32); got != typeUInt32 {
		t.Errorf("Got %s, expected %s", got, typeUInt32)
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	const value = "a\"b\\c\n\x01é"

	got := quote(value)
	if want := `"a\"b\\c\n\u0001é"`; got != want {
		t.Errorf("Got %s, expected %s", got, want)
	}

	s, err := unquote(got, '"')
	if err != nil || s != value {
		t.Errorf("Got %q (%v), expected %q", s, err, value)
	}
}
