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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/fixkit/analyzer/level"
	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/match"
)

// rule is the description of one rule as configured.
type rule struct {
	ID          string        `json:"id"          yaml:"id"`
	Title       string        `json:"title"       yaml:"title"`
	Category    string        `json:"category"    yaml:"category"`
	Severity    diag.Severity `json:"severity"    yaml:"severity"`
	Enabled     bool          `json:"enabled"     yaml:"enabled"`
	Fixable     bool          `json:"fixable"     yaml:"fixable"`
	Description string        `json:"description" yaml:"description"`
	HelpURL     string        `json:"helpUrl,omitempty" yaml:"helpUrl,omitempty"`
}

func newRulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules and their configured levels",
		Args:  cobra.NoArgs,
		RunE:  a.runRules,
	}

	cmd.Flags().StringP("format", "f", "text", "output format: text, yaml or json")

	return cmd
}

func (a *app) runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}

	rules := configuredRules(cfg.Rules)
	out := cmd.OutOrStdout()

	switch format {
	case "text":
		return writeRulesText(out, rules)

	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(rules); err != nil {
			return err
		}

		return enc.Close()

	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(rules)

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// configuredRules describes all known rules with the given levels applied.
func configuredRules(levels map[string]level.Check) []rule {
	matchers, fixers := match.Default()

	fixable := make(map[string]bool, len(fixers))
	for _, f := range fixers {
		fixable[f.ID()] = true
	}

	rules := make([]rule, 0, len(matchers))

	for _, m := range matchers {
		d := m.Descriptor()
		c := levels[d.ID]

		rules = append(rules, rule{
			ID:          d.ID,
			Title:       d.Title,
			Category:    d.Category,
			Severity:    c.Severity(d.Severity),
			Enabled:     c.Enabled(),
			Fixable:     fixable[d.ID],
			Description: d.Description,
			HelpURL:     d.HelpURL,
		})
	}

	return rules
}

func writeRulesText(w io.Writer, rules []rule) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tSEVERITY\tENABLED\tFIX\tTITLE")

	for _, r := range rules {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%t\t%s\n", r.ID, r.Severity, r.Enabled, r.Fixable, r.Title)
	}

	return tw.Flush()
}
