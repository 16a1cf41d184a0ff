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

package lint

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Generated reports whether a C# source file is generated code, by its file
// name or an <auto-generated> marker in the leading comments.
func Generated(path string, src []byte) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, suffix := range [...]string{".g.cs", ".g.i.cs", ".designer.cs", ".generated.cs"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	for line := range bytes.Lines(src) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if !bytes.HasPrefix(line, []byte("//")) && !bytes.HasPrefix(line, []byte("/*")) && !bytes.HasPrefix(line, []byte("*")) {
			return false
		}

		if bytes.Contains(bytes.ToLower(line), []byte("<auto-generated")) {
			return true
		}
	}

	return false
}

// Files expands directories to the C# source files below them. Build output
// and hidden directories are skipped. Explicitly named files are kept.
func Files(paths []string) ([]string, error) {
	var files []string

	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(filepath.Clean(root))

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if strings.EqualFold(filepath.Ext(path), ".cs") {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func skipDir(name string) bool {
	switch name {
	case "bin", "obj", "node_modules":
		return true

	default:
		return strings.HasPrefix(name, ".")
	}
}

// position converts a byte offset into a one based line and column.
func position(src []byte, offset int) (line, column int) {
	offset = min(max(offset, 0), len(src))
	before := src[:offset]

	line = bytes.Count(before, []byte("\n")) + 1
	column = offset - (bytes.LastIndexByte(before, '\n') + 1) + 1

	return line, column
}
