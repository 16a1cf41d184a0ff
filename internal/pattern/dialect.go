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

package pattern

import (
	"fmt"
	"strings"
)

// Dialect is a regular expression syntax.
type Dialect uint8

const (
	// RE2 is the syntax accepted by Go's regexp package.
	RE2 Dialect = iota

	// POSIX is RE2 restricted to POSIX ERE with leftmost-longest matching.
	POSIX

	// DotNet is the syntax of System.Text.RegularExpressions.
	DotNet
)

func (d Dialect) String() string {
	switch d {
	case RE2:
		return "re2"

	case POSIX:
		return "posix"

	case DotNet:
		return "dotnet"

	default:
		return fmt.Sprintf("Dialect(%d)", d)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (d Dialect) MarshalText() ([]byte, error) {
	if d > DotNet {
		return nil, fmt.Errorf("unknown regex dialect %d", d)
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Dialect) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "re2", "go":
		*d = RE2

	case "posix":
		*d = POSIX

	case "dotnet", ".net", "net":
		*d = DotNet

	default:
		return fmt.Errorf("unknown regex dialect %q", string(text))
	}

	return nil
}
