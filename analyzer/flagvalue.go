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
	"strconv"
	"strings"

	"fillmore-labs.com/fixkit/internal/config"
)

// behaviorValue is a boolean [flag.Value] toggling one flag of a [config.Behavior].
type behaviorValue struct {
	behavior *config.Behavior
	flag     config.BehaviorFlags
}

func newBehaviorValue(b *config.Behavior, flag config.BehaviorFlags) behaviorValue {
	return behaviorValue{behavior: b, flag: flag}
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	enabled, err := parseBool(s)
	if err != nil {
		return err
	}

	v.behavior.Set(v.flag, enabled)

	return nil
}

// String implements [flag.Value]. The flag package calls it on the zero value.
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v behaviorValue) Get() any { return v.enabled() }

// IsBoolFlag allows the flag without a value.
func (behaviorValue) IsBoolFlag() bool { return true }

func (v behaviorValue) enabled() bool {
	return v.behavior != nil && v.behavior.Enabled(v.flag)
}

// parseBool accepts the values of [strconv.ParseBool] plus "on", "off" and "full".
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "full":
		return true, nil

	case "off":
		return false, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, &strconv.NumError{Func: "parseBool", Num: s, Err: strconv.ErrSyntax}
	}

	return b, nil
}
