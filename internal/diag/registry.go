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

package diag

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrConfiguration is the root of all errors detected while setting up analyzers.
	ErrConfiguration = errors.New("configuration error")

	// ErrDuplicateDescriptor is returned when two descriptors share an ID.
	ErrDuplicateDescriptor = fmt.Errorf("%w: duplicate descriptor", ErrConfiguration)

	// ErrInvalidDescriptor is returned for descriptors without ID.
	ErrInvalidDescriptor = fmt.Errorf("%w: invalid descriptor", ErrConfiguration)

	// ErrUnknownDescriptor is returned when creating a diagnostic for an unregistered descriptor.
	ErrUnknownDescriptor = errors.New("unknown descriptor")
)

// Registry holds the registered descriptors. It is immutable once created
// and safe for concurrent use.
type Registry struct {
	descriptors map[string]*Descriptor
}

// NewRegistry registers all descriptors at once.
func NewRegistry(descriptors ...*Descriptor) (*Registry, error) {
	r := &Registry{descriptors: make(map[string]*Descriptor, len(descriptors))}

	for _, d := range descriptors {
		if d == nil || d.ID == "" || strings.ContainsAny(d.ID, " \t\n,") {
			return nil, ErrInvalidDescriptor
		}

		if _, ok := r.descriptors[d.ID]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateDescriptor, d.ID)
		}

		r.descriptors[d.ID] = d
	}

	return r, nil
}

// Descriptors returns all registered descriptors ordered by ID.
func (r *Registry) Descriptors() []*Descriptor {
	ds := make([]*Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		ds = append(ds, d)
	}

	slices.SortFunc(ds, func(a, b *Descriptor) int { return strings.Compare(a.ID, b.ID) })

	return ds
}

// Lookup returns the descriptor with the given ID.
func (r *Registry) Lookup(id string) (*Descriptor, bool) {
	d, ok := r.descriptors[id]

	return d, ok
}

// Create renders a diagnostic for d at loc.
func (r *Registry) Create(d *Descriptor, loc Location, args ...any) (Diagnostic, error) {
	if reg, ok := r.descriptors[d.ID]; !ok || reg != d {
		return Diagnostic{}, fmt.Errorf("%w %q", ErrUnknownDescriptor, d.ID)
	}

	return Diagnostic{
		ID:       d.ID,
		Category: d.Category,
		Severity: d.Severity,
		Location: loc,
		Message:  fmt.Sprintf(d.MessageFormat, args...),
	}, nil
}
