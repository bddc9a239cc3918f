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

// SetSpan views a set-valued polifunction as interval-valued by taking the
// closed interval [min, max] over the output set. An empty output set has no
// extrema and reports ErrComputation, as does a set holding an element with
// no ordering relation to the others (NaN).
type SetSpan[E any, T Number] struct {
	p SetValued[E, T]
}

// ToInterval converts a set-valued polifunction into an interval-valued one.
func ToInterval[E any, T Number](p SetValued[E, T]) *SetSpan[E, T] {
	return &SetSpan[E, T]{p: p}
}

func (c *SetSpan[E, T]) Evaluate(input E) (Value[T], error) {
	iv, err := c.ValueInterval(input)
	if err != nil {
		return nil, err
	}
	return Span[T]{Interval: iv}, nil
}

func (c *SetSpan[E, T]) InDomain(input E) bool {
	return c.p.InDomain(input)
}

func (c *SetSpan[E, T]) ValueInterval(input E) (Interval[T], error) {
	vals, err := c.p.ValueSet(input)
	if err != nil {
		return Interval[T]{}, err
	}
	if vals.Size() == 0 {
		return Interval[T]{}, ErrComputation.New()
	}

	var lo, hi T
	first := true
	unordered := false
	vals.Iter(func(v T) bool {
		if first {
			lo, hi = v, v
			first = false
			return false
		}
		if cmp, ok := PartialCompare(v, lo); !ok {
			unordered = true
			return true
		} else if cmp < 0 {
			lo = v
		}
		if cmp, ok := PartialCompare(v, hi); !ok {
			unordered = true
			return true
		} else if cmp > 0 {
			hi = v
		}
		return false
	})
	if unordered {
		return Interval[T]{}, ErrComputation.New()
	}

	return Closed(lo, hi), nil
}

func (c *SetSpan[E, T]) ContainsValue(input E, value T) (bool, error) {
	iv, err := c.ValueInterval(input)
	if err != nil {
		return false, err
	}
	return iv.Contains(value), nil
}

func (c *SetSpan[E, T]) Width(input E) (T, error) {
	iv, err := c.ValueInterval(input)
	if err != nil {
		var zero T
		return zero, err
	}
	return Width(iv), nil
}
