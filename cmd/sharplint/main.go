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

// Sharplint checks C# sources for local variables that can be constants and
// for invalid regular expression patterns, and fixes them.
//
// Usage:
//
//	sharplint check [paths...]
//	sharplint fix [--dry-run] [paths...]
//	sharplint rules [--format text|yaml|json]
//
// Settings are read from flags, SHARPLINT_* environment variables and a
// .sharplint.yaml file in the working directory:
//
//	rules:
//	  MakeConst: warning
//	  Regex: error
//	include-generated: false
//	jobs: 4
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "sharplint:", err)
		}

		os.Exit(1)
	}
}
