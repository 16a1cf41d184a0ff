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
	"errors"
	"go/constant"
	"go/token"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"fillmore-labs.com/fixkit/internal/facts"
)

var errLiteral = errors.New("malformed literal")

// literal evaluates a literal token by its tree-sitter node type.
func literal(native, text string) (facts.Constant, facts.Type, error) {
	switch native {
	case "integer_literal":
		return integer(text)

	case "real_literal":
		return realNumber(text)

	case "boolean_literal":
		return facts.Constant{Kind: facts.ConstBool, Value: constant.MakeBool(text == "true")}, predefined("bool"), nil

	case "null_literal":
		return facts.Constant{Kind: facts.ConstNull, Value: constant.MakeUnknown()}, predefined(typeNull), nil

	case "character_literal":
		s, err := unquote(text, '\'')
		if err != nil {
			return facts.Constant{}, facts.Type{}, err
		}

		r, n := utf8.DecodeRuneInString(s)
		if n == 0 || n != len(s) {
			return facts.Constant{}, facts.Type{}, errLiteral
		}

		return facts.Constant{Kind: facts.ConstChar, Value: constant.MakeInt64(int64(r))}, predefined("char"), nil

	case "string_literal":
		s, err := unquote(text, '"')
		if err != nil {
			return facts.Constant{}, facts.Type{}, err
		}

		return stringConstant(s)

	case "verbatim_string_literal":
		body, ok := strings.CutPrefix(text, "@")
		if !ok || len(body) < 2 || body[0] != '"' || body[len(body)-1] != '"' {
			return facts.Constant{}, facts.Type{}, errLiteral
		}

		return stringConstant(strings.ReplaceAll(body[1:len(body)-1], `""`, `"`))

	case "raw_string_literal":
		s, err := raw(text)
		if err != nil {
			return facts.Constant{}, facts.Type{}, err
		}

		return stringConstant(s)

	default:
		return facts.Constant{}, facts.Type{}, errLiteral
	}
}

func stringConstant(s string) (facts.Constant, facts.Type, error) {
	return facts.Constant{Kind: facts.ConstString, Value: constant.MakeString(s)}, predefined("string"), nil
}

func integer(text string) (facts.Constant, facts.Type, error) {
	digits := strings.TrimRight(strings.ReplaceAll(text, "_", ""), "uUlL")
	suffix := strings.ToLower(text[len(strings.TrimRight(text, "uUlL")):])

	var (
		v   uint64
		err error
	)

	switch prefix := strings.ToLower(digits[:min(2, len(digits))]); prefix {
	case "0x":
		v, err = strconv.ParseUint(digits[2:], 16, 64)

	case "0b":
		v, err = strconv.ParseUint(digits[2:], 2, 64)

	default:
		v, err = strconv.ParseUint(digits, 10, 64)
	}

	if err != nil {
		return facts.Constant{}, facts.Type{}, errLiteral
	}

	// The type is the first of the candidates that can represent the value.
	var candidates []string

	switch suffix {
	case "":
		candidates = []string{typeInt32, typeUInt32, typeInt64, typeUInt64}

	case "u":
		candidates = []string{typeUInt32, typeUInt64}

	case "l":
		candidates = []string{typeInt64, typeUInt64}

	case "ul", "lu":
		candidates = []string{typeUInt64}

	default:
		return facts.Constant{}, facts.Type{}, errLiteral
	}

	limits := map[string]uint64{
		typeInt32:  math.MaxInt32,
		typeUInt32: math.MaxUint32,
		typeInt64:  math.MaxInt64,
		typeUInt64: math.MaxUint64,
	}

	for _, c := range candidates {
		if v <= limits[c] {
			return facts.Constant{Kind: facts.ConstInt, Value: constant.MakeUint64(v)}, predefined(c), nil
		}
	}

	return facts.Constant{}, facts.Type{}, errLiteral
}

func realNumber(text string) (facts.Constant, facts.Type, error) {
	digits := strings.ReplaceAll(text, "_", "")
	typ := typeDouble

	switch digits[len(digits)-1] {
	case 'f', 'F':
		typ = typeSingle
		digits = digits[:len(digits)-1]

	case 'd', 'D':
		digits = digits[:len(digits)-1]

	case 'm', 'M':
		typ = typeDecimal
		digits = digits[:len(digits)-1]
	}

	if strings.HasPrefix(digits, ".") {
		digits = "0" + digits
	}

	v := constant.MakeFromLiteral(digits, token.FLOAT, 0)
	if v.Kind() == constant.Unknown {
		return facts.Constant{}, facts.Type{}, errLiteral
	}

	return facts.Constant{Kind: facts.ConstFloat, Value: v}, predefined(typ), nil
}

// unquote decodes a regular string or character literal.
func unquote(text string, quote byte) (string, error) {
	if len(text) < 2 || text[0] != quote || text[len(text)-1] != quote {
		return "", errLiteral
	}

	s := text[1 : len(text)-1]

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])

			continue
		}

		if i++; i >= len(s) {
			return "", errLiteral
		}

		switch c := s[i]; c {
		case '\'', '"', '\\':
			b.WriteByte(c)

		case '0':
			b.WriteByte(0)

		case 'a':
			b.WriteByte('\a')

		case 'b':
			b.WriteByte('\b')

		case 'e':
			b.WriteByte(0x1b)

		case 'f':
			b.WriteByte('\f')

		case 'n':
			b.WriteByte('\n')

		case 'r':
			b.WriteByte('\r')

		case 't':
			b.WriteByte('\t')

		case 'v':
			b.WriteByte('\v')

		case 'u', 'U', 'x':
			n := map[byte]int{'u': 4, 'U': 8, 'x': 4}[c]

			j := i + 1
			for j < len(s) && j <= i+n && isHex(s[j]) {
				j++
			}

			if j == i+1 || (c != 'x' && j != i+n+1) {
				return "", errLiteral
			}

			r, err := strconv.ParseUint(s[i+1:j], 16, 32)
			if err != nil || r > utf8.MaxRune {
				return "", errLiteral
			}

			b.WriteRune(rune(r))

			i = j - 1

		default:
			return "", errLiteral
		}
	}

	return b.String(), nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// raw decodes a raw string literal. Multi-line literals drop the first and the
// last line and remove the indentation of the closing quotes.
func raw(text string) (string, error) {
	n := 0
	for n < len(text) && text[n] == '"' {
		n++
	}

	if n < 3 || len(text) < 2*n || text[len(text)-n:] != text[:n] {
		return "", errLiteral
	}

	body := text[n : len(text)-n]

	first, rest, multi := strings.Cut(body, "\n")
	if !multi {
		return body, nil
	}

	if strings.TrimSpace(first) != "" {
		return "", errLiteral
	}

	i := strings.LastIndexByte(rest, '\n')
	if i < 0 || strings.TrimSpace(rest[i+1:]) != "" {
		return "", errLiteral
	}

	indent := rest[i+1:]
	lines := strings.Split(rest[:i], "\n")

	for k, line := range lines {
		lines[k] = strings.TrimSuffix(strings.TrimPrefix(line, indent), "\r")
	}

	return strings.Join(lines, "\n"), nil
}
