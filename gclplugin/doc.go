// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

/*
Package gclplugin registers the [fixkit] analyzer as a golangci-lint module plugin.

Build a custom golangci-lint binary with a `.custom-gcl.yaml` like

	version: v2.7.0
	plugins:
	  - module: fillmore-labs.com/fixkit
	    import: fillmore-labs.com/fixkit/gclplugin
	    version: v0.0.1

and `golangci-lint custom`, then enable the linter in `.golangci.yaml`:

	version: "2"
	linters:
	  enable:
	    - fixkit
	  settings:
	    custom:
	      fixkit:
	        type: module
	        settings:
	          prefer-const: warning   # on, off, info, warning or error
	          regex: error
	          regex-targets:          # replaces the default regexp functions
	            - regexp.MustCompile
	            - example.com/re.Compile@1/posix
	          suggest-fixes: true

Settings that turn off both checks are rejected with [ErrNoChecks]. Generated
files are filtered by golangci-lint, so the analyzer checks every file it is given.

[fixkit]: https://pkg.go.dev/fillmore-labs.com/fixkit/analyzer
*/
package gclplugin
