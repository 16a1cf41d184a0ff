// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"flag"

	"fillmore-labs.com/fixkit/internal/config"
	"fillmore-labs.com/fixkit/internal/match"
	"fillmore-labs.com/fixkit/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(o *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newBehaviorValue(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBehaviorValue(&o.Behavior, config.SuggestFixes), "suggest", "suggest fixes for diagnostics")
	flags.TextVar(&o.PreferConst, "preferconst", o.PreferConst,
		"level of the check for variables that can be constants (on, off, info, warning, error)")
	flags.TextVar(&o.Regex, "regex", o.Regex,
		"level of the check for invalid regular expression patterns (on, off, info, warning, error)")
	flags.Var(regexTargetsValue{&o.RegexTargets}, "regex-targets",
		"comma separated regular expression functions to check, like regexp.MustCompile@0/re2")
}

// regexTargetsValue is a [flag.Value] for a list of regular expression targets.
type regexTargetsValue struct{ targets *[]match.RegexTarget }

// Set implements [flag.Value].
func (v regexTargetsValue) Set(s string) error {
	targets, err := match.ParseRegexTargets(s)
	if err != nil {
		return err
	}

	*v.targets = targets

	return nil
}

// String implements [flag.Value].
func (v regexTargetsValue) String() string {
	if v.targets == nil {
		return ""
	}

	return match.FormatRegexTargets(*v.targets)
}
