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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/fixkit/internal/astutil"
	"fillmore-labs.com/fixkit/internal/config"
	"fillmore-labs.com/fixkit/internal/gofront"
	"fillmore-labs.com/fixkit/internal/match"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the fixkit analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("fixkit: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	set, err := o.NewSet()
	if err != nil {
		return nil, fmt.Errorf("fixkit: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "fixkit")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			internalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLintFile() {
			continue
		}

		src, err := p.ReadFile(currentFile.Name())
		if err != nil {
			internalError(p, file, "Can't read %s: %v", currentFile.Name(), err)

			continue
		}

		var (
			pass    *match.Pass
			convErr error
		)

		trace.WithRegion(ctx, "convert", func() {
			pass, convErr = newPass(set, in, p, currentFile, f, src)
		})

		switch {
		case errors.Is(convErr, gofront.ErrSourceMismatch):
			// The file was rewritten by a preprocessor like cgo.
			continue

		case convErr != nil:
			internalError(p, file, "Can't convert %s: %v", currentFile.Name(), convErr)

			continue
		}

		diagnostics, err := set.Run(ctx, pass)
		if err != nil {
			internalError(p, file, "Analysis of %s failed: %v", currentFile.Name(), err)
		}

		r := reporter{
			Pass:        p,
			currentFile: currentFile,
			set:         set,
			pass:        pass,
			fixes:       o.Behavior.Enabled(config.SuggestFixes),
		}

		r.report(diagnostics)
	}

	return nil, nil
}

func newPass(set *match.Set, in *inspector.Inspector, p *analysis.Pass,
	currentFile astutil.CurrentFile, f inspector.Cursor, src []byte,
) (*match.Pass, error) {
	tree, origins, err := gofront.Convert(currentFile.Handle(), f, src)
	if err != nil {
		return nil, err
	}

	provider := gofront.NewProvider(in, p.TypesInfo, tree, origins)

	return set.NewPass(tree, provider, gofront.Grammar{}, currentFile.Name()), nil
}
