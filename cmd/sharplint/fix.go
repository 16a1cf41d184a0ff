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
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/fixkit/internal/lint"
)

func newFixCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply available fixes to C# sources",
		Long: `Fix C# files and the C# files below directories in place.

Fixes overlapping an earlier fix in the same file are skipped, run fix again
to apply them.`,
		RunE: a.runFix,
	}

	cmd.Flags().Bool("dry-run", false, "show the fixes without writing files")

	return cmd
}

func (a *app) runFix(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	results, err := a.analyze(cmd, args, true)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var applied, skipped int

	for _, r := range results {
		if r.Fixed == nil {
			continue
		}

		applied += r.Applied
		skipped += r.Skipped

		fmt.Fprintf(out, "%s %s: %d applied", color.GreenString("fixed"), pathColor.Sprint(r.Path), r.Applied)

		if r.Skipped > 0 {
			fmt.Fprintf(out, ", %s", color.YellowString("%d skipped", r.Skipped))
		}

		fmt.Fprintln(out)
	}

	if dryRun {
		a.logger.Info("Dry run, no files written", slog.Int("applied", applied), slog.Int("skipped", skipped))

		return nil
	}

	if err := lint.WriteFixes(results); err != nil {
		return err
	}

	a.logger.Debug("Fixes written", slog.Int("applied", applied), slog.Int("skipped", skipped))

	return nil
}
