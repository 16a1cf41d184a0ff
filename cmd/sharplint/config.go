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
	"strings"

	"github.com/spf13/viper"

	"fillmore-labs.com/fixkit/analyzer/level"
	"fillmore-labs.com/fixkit/internal/lint"
	"fillmore-labs.com/fixkit/internal/match"
)

// loadConfig converts the merged settings into a linter configuration.
func loadConfig(v *viper.Viper) (lint.Config, error) {
	cfg := lint.Config{
		IncludeGenerated: v.GetBool("include-generated"),
		Jobs:             v.GetInt("jobs"),
	}

	if rules := v.GetStringMapString("rules"); len(rules) > 0 {
		cfg.Rules = make(map[string]level.Check, len(rules))

		for name, value := range rules {
			var c level.Check
			if err := c.UnmarshalText([]byte(value)); err != nil {
				return lint.Config{}, fmt.Errorf("rule %s: %w", name, err)
			}

			cfg.Rules[ruleID(name)] = c
		}
	}

	for _, s := range v.GetStringSlice("regex-targets") {
		var t match.RegexTarget
		if err := t.UnmarshalText([]byte(s)); err != nil {
			return lint.Config{}, err
		}

		cfg.RegexTargets = append(cfg.RegexTargets, t)
	}

	return cfg, nil
}

// ruleID maps a rule name to its descriptor ID. Configuration file keys are
// lower cased, so names match regardless of case.
func ruleID(name string) string {
	matchers, _ := match.Default()
	for _, m := range matchers {
		if id := m.Descriptor().ID; strings.EqualFold(id, name) {
			return id
		}
	}

	return name
}
