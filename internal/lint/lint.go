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

// Package lint checks and fixes C# source files with the fixkit matchers.
package lint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/fixkit/analyzer/level"
	"fillmore-labs.com/fixkit/internal/config"
	"fillmore-labs.com/fixkit/internal/csfront"
	"fillmore-labs.com/fixkit/internal/diag"
	"fillmore-labs.com/fixkit/internal/match"
	"fillmore-labs.com/fixkit/internal/rewrite"
	"fillmore-labs.com/fixkit/internal/run"
	"fillmore-labs.com/fixkit/internal/syntax"
)

// ErrUnknownRule is returned for rule settings naming no known descriptor.
var ErrUnknownRule = fmt.Errorf("%w: unknown rule", diag.ErrConfiguration)

// Config configures a [Linter].
type Config struct {
	// Rules sets the level of checks by descriptor ID. Missing rules are on.
	Rules map[string]level.Check

	// RegexTargets overrides the checked regular expression methods.
	RegexTargets []match.RegexTarget

	// IncludeGenerated also checks generated sources.
	IncludeGenerated bool

	// Jobs limits the number of files analyzed concurrently, GOMAXPROCS when zero.
	Jobs int
}

// Linter analyzes C# files. It is safe for concurrent use.
type Linter struct {
	set   *match.Set
	rules map[string]level.Check
	jobs  int
	gen   bool
}

// New validates cfg and builds a linter.
func New(cfg Config) (*Linter, error) {
	rules := make(map[string]level.Check, len(cfg.Rules))

	for id, c := range cfg.Rules {
		switch id {
		case match.MakeConstID, match.RegexID:
			rules[id] = c

		default:
			return nil, fmt.Errorf("%w %q", ErrUnknownRule, id)
		}
	}

	opts := run.DefaultOptions()
	opts.PreferConst = rules[match.MakeConstID]
	opts.Regex = rules[match.RegexID]
	opts.RegexTargets = cfg.RegexTargets

	opts.Behavior.Set(config.IncludeGenerated, cfg.IncludeGenerated)

	set, err := opts.NewSet()
	if err != nil {
		return nil, err
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	return &Linter{set: set, rules: rules, jobs: jobs, gen: opts.Behavior.Enabled(config.IncludeGenerated)}, nil
}

// Registry returns the descriptors of the enabled rules.
func (l *Linter) Registry() *diag.Registry { return l.set.Registry() }

// Finding is a diagnostic with its source position.
type Finding struct {
	diag.Diagnostic

	// Line and Column are one based, the column counts bytes.
	Line, Column int

	// Fixable reports whether a fix is available.
	Fixable bool
}

// Result is the outcome of analyzing one file.
type Result struct {
	Path     string
	Findings []Finding

	// Fixed is the rewritten source, nil when no fix was applied.
	Fixed []byte

	// Applied and Skipped count the fixes applied and the ones dropped because they overlapped.
	Applied, Skipped int

	// Generated is set for generated files that were not analyzed.
	Generated bool
}

// Run analyzes the files concurrently. The results are in the order of paths.
func (l *Linter) Run(ctx context.Context, paths []string, fix bool) ([]Result, error) {
	if !csfront.Available() {
		return nil, csfront.ErrNoCGO
	}

	ctx, task := trace.NewTask(ctx, "sharplint")
	defer task.End()

	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(l.jobs, len(paths))))

	for i, path := range paths {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			r, err := l.File(gctx, path, src, fix)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// File analyzes one source unit and, when fix is set, applies all non-overlapping fixes.
func (l *Linter) File(ctx context.Context, path string, src []byte, fix bool) (Result, error) {
	result := Result{Path: path}

	if !l.gen && Generated(path, src) {
		result.Generated = true

		return result, nil
	}

	var (
		tree *syntax.Tree
		err  error
	)

	trace.WithRegion(ctx, "parse", func() {
		tree, err = csfront.Parse(ctx, src)
	})

	if err != nil {
		return result, err
	}

	p := l.set.NewPass(tree, csfront.NewProvider(tree), csfront.Grammar{}, path)

	diagnostics, err := l.set.Run(ctx, p)
	if err != nil {
		return result, err
	}

	suppressed := parseSuppressions(src)

	var edits []rewrite.TextEdit

	for _, d := range diagnostics {
		if suppressed.covers(d.ID, d.Location.Span.Start) {
			continue
		}

		d = d.WithSeverity(l.rules[d.ID].Severity(d.Severity))
		line, column := position(src, d.Location.Span.Start)

		f := Finding{Diagnostic: d, Line: line, Column: column, Fixable: l.set.Fixable(d.ID)}
		result.Findings = append(result.Findings, f)

		if !fix || !f.Fixable {
			continue
		}

		actions, err := l.set.Fixes(p, d)
		if err != nil {
			return result, err
		}

		for _, a := range actions[:min(1, len(actions))] {
			e, err := a.TextEdit()
			if err != nil {
				return result, err
			}

			edits = append(edits, e)
		}
	}

	if len(edits) > 0 {
		applied := selectEdits(edits)
		result.Applied, result.Skipped = len(applied), len(edits)-len(applied)
		result.Fixed = []byte(rewrite.ApplyText(string(src), applied))
	}

	return result, nil
}

// WriteFixes writes the fixed sources back to their files.
func WriteFixes(results []Result) error {
	var errs []error

	for _, r := range results {
		if r.Fixed == nil {
			continue
		}

		info, err := os.Stat(r.Path)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		if err := os.WriteFile(r.Path, r.Fixed, info.Mode().Perm()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Counts tallies the findings of results by severity.
func Counts(results []Result) map[diag.Severity]int {
	counts := make(map[diag.Severity]int)

	for _, r := range results {
		for _, f := range r.Findings {
			counts[f.Severity]++
		}
	}

	return counts
}

// selectEdits keeps the edits that do not overlap an earlier starting one.
func selectEdits(edits []rewrite.TextEdit) []rewrite.TextEdit {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b rewrite.TextEdit) int { return a.Span.Start - b.Span.Start })

	selected := sorted[:0]
	end := -1

	for _, e := range sorted {
		if e.Span.Start < end {
			continue
		}

		selected = append(selected, e)
		end = e.Span.End()
	}

	return selected
}
