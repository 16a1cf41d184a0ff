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

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/lint"
)

var (
	pathColor = color.New(color.Bold)
	idColor   = color.New(color.Faint)

	severityColors = map[diag.Severity]*color.Color{
		diag.Hidden:  color.New(color.FgHiBlack),
		diag.Info:    color.New(color.FgCyan),
		diag.Warning: color.New(color.FgYellow, color.Bold),
		diag.Error:   color.New(color.FgRed, color.Bold),
	}
)

// printFindings writes one line per finding, hidden diagnostics are omitted.
func printFindings(w io.Writer, results []lint.Result) {
	for _, r := range results {
		for _, f := range r.Findings {
			if f.Severity == diag.Hidden {
				continue
			}

			fmt.Fprintf(w, "%s:%d:%d: %s: %s %s\n",
				pathColor.Sprint(r.Path), f.Line, f.Column,
				severityColors[f.Severity].Sprint(f.Severity), f.Message,
				idColor.Sprintf("[%s]", f.ID))
		}
	}
}

// printSummary writes the number of findings per severity.
func printSummary(w io.Writer, results []lint.Result) {
	counts := lint.Counts(results)

	total := counts[diag.Error] + counts[diag.Warning] + counts[diag.Info]
	if total == 0 {
		fmt.Fprintln(w, color.GreenString("No problems found."))

		return
	}

	fmt.Fprintf(w, "%d problems (%s, %s, %s)\n", total,
		severityColors[diag.Error].Sprintf("%d errors", counts[diag.Error]),
		severityColors[diag.Warning].Sprintf("%d warnings", counts[diag.Warning]),
		severityColors[diag.Info].Sprintf("%d suggestions", counts[diag.Info]))
}
