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

// IntervalValued is the capability of polifunctions whose output at a point
// is a bounded interval. Width requires subtraction on the codomain element,
// so the capability is limited to Number elements.
type IntervalValued[E any, T Number] interface {
	Evaluable[E, T]

	// ValueInterval returns the interval of values at input.
	ValueInterval(input E) (Interval[T], error)

	// ContainsValue reports whether value lies in the output interval at
	// input, honoring bound inclusivity.
	ContainsValue(input E, value T) (bool, error)

	// Width returns Upper - Lower of the output interval at input, unclamped.
	Width(input E) (T, error)
}

// IntervalMapping produces the output interval for a single domain element.
type IntervalMapping[E any, T Number] func(input E) (Interval[T], error)

// MappedInterval is an interval-valued polifunction backed by a
// caller-supplied mapping function and explicit domain and codomain.
type MappedInterval[E any, T Number] struct {
	mapping  IntervalMapping[E, T]
	domain   Domain[E]
	codomain Codomain[T]
}

func NewMappedInterval[E any, T Number](mapping IntervalMapping[E, T], domain Domain[E], codomain Codomain[T]) *MappedInterval[E, T] {
	return &MappedInterval[E, T]{mapping: mapping, domain: domain, codomain: codomain}
}

func (p *MappedInterval[E, T]) Evaluate(input E) (Value[T], error) {
	iv, err := p.ValueInterval(input)
	if err != nil {
		return nil, err
	}
	return Span[T]{Interval: iv}, nil
}

func (p *MappedInterval[E, T]) InDomain(input E) bool {
	return p.domain.Contains(input)
}

func (p *MappedInterval[E, T]) ValueInterval(input E) (Interval[T], error) {
	if !p.InDomain(input) {
		return Interval[T]{}, ErrDomain.New()
	}
	// mapping errors pass through unchanged
	return p.mapping(input)
}

func (p *MappedInterval[E, T]) ContainsValue(input E, value T) (bool, error) {
	iv, err := p.ValueInterval(input)
	if err != nil {
		return false, err
	}
	return iv.Contains(value), nil
}

func (p *MappedInterval[E, T]) Width(input E) (T, error) {
	iv, err := p.ValueInterval(input)
	if err != nil {
		var zero T
		return zero, err
	}
	return Width(iv), nil
}
