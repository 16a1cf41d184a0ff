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

package gclplugin

import (
	"errors"
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	fixkit "fillmore-labs.com/fixkit/analyzer"
)

// Name is the linter name in the golangci-lint configuration.
const Name = "fixkit"

// ErrNoChecks is returned for settings that turn off every check.
var ErrNoChecks = errors.New("all checks are disabled")

func init() { register.Plugin(Name, New) }

// New decodes the linter settings and builds the analyzer once.
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, fmt.Errorf("%s settings: %w", Name, err)
	}

	if settings.disablesAll() {
		return nil, fmt.Errorf("%s settings: %w", Name, ErrNoChecks)
	}

	// golangci-lint filters generated files itself.
	opts := append(settings.Options(), fixkit.WithGenerated(true))

	return plugin{analyzer: fixkit.New(opts...)}, nil
}

type plugin struct{ analyzer *analysis.Analyzer }

// GetLoadMode implements [register.LinterPlugin]. Both checks need type information.
func (plugin) GetLoadMode() string { return register.LoadModeTypesInfo }

// BuildAnalyzers implements [register.LinterPlugin].
func (p plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{p.analyzer}, nil
}
