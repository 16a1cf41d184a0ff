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

package lint

import (
	"bytes"
	"strings"
)

// suppressions are the source ranges disabled by "#pragma warning" directives.
type suppressions []suppressed

type suppressed struct {
	id         string // empty for all rules
	start, end int
}

// parseSuppressions scans src for "#pragma warning disable" and "restore"
// directives. A directive without rule IDs applies to all rules. Ranges left
// open extend to the end of the source.
func parseSuppressions(src []byte) suppressions {
	var (
		s      suppressions
		open   = make(map[string]int)
		offset int
	)

	for line := range bytes.Lines(src) {
		start := offset
		offset += len(line)

		text, ok := strings.CutPrefix(strings.TrimSpace(string(line)), "#")
		if !ok {
			continue
		}

		text, ok = strings.CutPrefix(strings.TrimSpace(text), "pragma")
		if !ok {
			continue
		}

		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}

		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(fields) < 2 || fields[0] != "warning" {
			continue
		}

		ids := fields[2:]
		if len(ids) == 0 {
			ids = []string{""}
		}

		switch fields[1] {
		case "disable":
			for _, id := range ids {
				if _, ok := open[id]; !ok {
					open[id] = start
				}
			}

		case "restore":
			for _, id := range ids {
				if from, ok := open[id]; ok {
					s = append(s, suppressed{id: id, start: from, end: start})
					delete(open, id)
				}
			}
		}
	}

	for id, from := range open {
		s = append(s, suppressed{id: id, start: from, end: len(src)})
	}

	return s
}

// covers reports whether diagnostics with the given ID are suppressed at offset.
func (s suppressions) covers(id string, offset int) bool {
	for _, r := range s {
		if (r.id == "" || r.id == id) && r.start <= offset && offset < r.end {
			return true
		}
	}

	return false
}
