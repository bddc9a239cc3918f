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

// Hull is the interval-valued polifunction whose output at a point is the
// smallest interval containing both constituents' output intervals. Its
// domain is the union of the constituent domains; when exactly one branch
// rejects an input with ErrDomain, the other branch's interval is returned
// as-is. Any non-domain branch error aborts the hull and propagates.
type Hull[E any, T Number] struct {
	p1 IntervalValued[E, T]
	p2 IntervalValued[E, T]
}

// NewHull returns the convex hull of p1 and p2. Both constituents must share
// the same domain and codomain element types.
func NewHull[E any, T Number](p1, p2 IntervalValued[E, T]) *Hull[E, T] {
	return &Hull[E, T]{p1: p1, p2: p2}
}

func (h *Hull[E, T]) Evaluate(input E) (Value[T], error) {
	iv, err := h.ValueInterval(input)
	if err != nil {
		return nil, err
	}
	return Span[T]{Interval: iv}, nil
}

func (h *Hull[E, T]) InDomain(input E) bool {
	return h.p1.InDomain(input) || h.p2.InDomain(input)
}

func (h *Hull[E, T]) ValueInterval(input E) (Interval[T], error) {
	if !h.InDomain(input) {
		return Interval[T]{}, ErrDomain.New()
	}

	first, err := h.p1.ValueInterval(input)
	if err != nil {
		if ErrDomain.Is(err) {
			return h.p2.ValueInterval(input)
		}
		return Interval[T]{}, err
	}

	second, err := h.p2.ValueInterval(input)
	if err != nil {
		if ErrDomain.Is(err) {
			return first, nil
		}
		return Interval[T]{}, err
	}

	// Lower bound: the smaller of the two lower bounds wins. On a tie the
	// bound is inclusive when either side is; inclusivity is never lost by
	// comparison. Incomparable bounds (NaN) cannot form a hull.
	lower, lowerInc := first.Lower, first.LowerInclusive
	switch c, ok := PartialCompare(first.Lower, second.Lower); {
	case !ok:
		return Interval[T]{}, ErrComputation.New()
	case c > 0:
		lower, lowerInc = second.Lower, second.LowerInclusive
	case c == 0:
		lowerInc = first.LowerInclusive || second.LowerInclusive
	}

	upper, upperInc := first.Upper, first.UpperInclusive
	switch c, ok := PartialCompare(first.Upper, second.Upper); {
	case !ok:
		return Interval[T]{}, ErrComputation.New()
	case c < 0:
		upper, upperInc = second.Upper, second.UpperInclusive
	case c == 0:
		upperInc = first.UpperInclusive || second.UpperInclusive
	}

	return Interval[T]{
		Lower:          lower,
		Upper:          upper,
		LowerInclusive: lowerInc,
		UpperInclusive: upperInc,
	}, nil
}

func (h *Hull[E, T]) ContainsValue(input E, value T) (bool, error) {
	iv, err := h.ValueInterval(input)
	if err != nil {
		return false, err
	}
	return iv.Contains(value), nil
}

func (h *Hull[E, T]) Width(input E) (T, error) {
	iv, err := h.ValueInterval(input)
	if err != nil {
		var zero T
		return zero, err
	}
	return Width(iv), nil
}
