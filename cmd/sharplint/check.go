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
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/lint"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report problems in C# sources",
		Long: `Check C# files and the C# files below directories.

Exits with status 1 when a problem of error severity is found.`,
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	results, err := a.analyze(cmd, args, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printFindings(out, results)
	printSummary(out, results)

	if lint.Counts(results)[diag.Error] > 0 {
		return errFindings
	}

	return nil
}

// analyze builds a linter from the configuration and runs it on the files below args.
func (a *app) analyze(cmd *cobra.Command, args []string, fix bool) ([]lint.Result, error) {
	cfg, err := loadConfig(a.v)
	if err != nil {
		return nil, err
	}

	l, err := lint.New(cfg)
	if err != nil {
		return nil, err
	}

	files, err := lint.Files(paths(args))
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Analyzing",
		slog.Int("files", len(files)),
		slog.Int("jobs", cfg.Jobs),
		slog.Bool("fix", fix),
		slog.Any("rules", cfg.Rules))

	results, err := l.Run(cmd.Context(), files, fix)
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		if r.Generated {
			a.logger.Debug("Skipped generated file", slog.String("path", r.Path))
		}
	}

	return results, nil
}
