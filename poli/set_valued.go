// Copyright 2025 Dolthub, Inc.
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

package poli

import (
	"github.com/dolthub/polifunc/utils/set"
)

// SetValued is the capability of polifunctions whose output at a point is a
// finite set of elements.
type SetValued[E any, T comparable] interface {
	Evaluable[E, T]

	// ValueSet returns the set of values at input.
	ValueSet(input E) (*set.Set[T], error)

	// ContainsValue reports whether value is among the outputs at input.
	ContainsValue(input E, value T) (bool, error)

	// Cardinality returns the number of outputs at input.
	Cardinality(input E) (int, error)
}

// SetMapping produces the output set for a single domain element.
type SetMapping[E any, T comparable] func(input E) (*set.Set[T], error)

// MappedSet is a set-valued polifunction backed by a caller-supplied mapping
// function and explicit domain and codomain.
type MappedSet[E any, T comparable] struct {
	mapping  SetMapping[E, T]
	domain   Domain[E]
	codomain Codomain[T]
}

func NewMappedSet[E any, T comparable](mapping SetMapping[E, T], domain Domain[E], codomain Codomain[T]) *MappedSet[E, T] {
	return &MappedSet[E, T]{mapping: mapping, domain: domain, codomain: codomain}
}

func (p *MappedSet[E, T]) Evaluate(input E) (Value[T], error) {
	vals, err := p.ValueSet(input)
	if err != nil {
		return nil, err
	}
	return SetOf[T]{Set: vals}, nil
}

func (p *MappedSet[E, T]) InDomain(input E) bool {
	return p.domain.Contains(input)
}

func (p *MappedSet[E, T]) ValueSet(input E) (*set.Set[T], error) {
	if !p.InDomain(input) {
		return nil, ErrDomain.New()
	}
	// mapping errors pass through unchanged
	return p.mapping(input)
}

func (p *MappedSet[E, T]) ContainsValue(input E, value T) (bool, error) {
	vals, err := p.ValueSet(input)
	if err != nil {
		return false, err
	}
	return vals.Contains(value), nil
}

func (p *MappedSet[E, T]) Cardinality(input E) (int, error) {
	vals, err := p.ValueSet(input)
	if err != nil {
		return 0, err
	}
	return vals.Size(), nil
}
