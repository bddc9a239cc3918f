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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval is a contiguous span of values with independently inclusive or
// exclusive bounds. Construction does not validate Lower <= Upper; callers
// own that invariant, and derived intervals (hull, set conversion) guarantee
// it by construction. Equal bounds denote a single point when both sides are
// inclusive and an empty interval otherwise.
type Interval[T constraints.Ordered] struct {
	Lower          T
	Upper          T
	LowerInclusive bool
	UpperInclusive bool
}

// Closed returns [lower, upper].
func Closed[T constraints.Ordered](lower, upper T) Interval[T] {
	return Interval[T]{Lower: lower, Upper: upper, LowerInclusive: true, UpperInclusive: true}
}

// Open returns (lower, upper).
func Open[T constraints.Ordered](lower, upper T) Interval[T] {
	return Interval[T]{Lower: lower, Upper: upper}
}

// OpenClosed returns (lower, upper].
func OpenClosed[T constraints.Ordered](lower, upper T) Interval[T] {
	return Interval[T]{Lower: lower, Upper: upper, UpperInclusive: true}
}

// ClosedOpen returns [lower, upper).
func ClosedOpen[T constraints.Ordered](lower, upper T) Interval[T] {
	return Interval[T]{Lower: lower, Upper: upper, LowerInclusive: true}
}

// Point returns the degenerate interval [v, v].
func Point[T constraints.Ordered](v T) Interval[T] {
	return Closed(v, v)
}

// Contains reports whether v lies within the interval. The lower bound is
// satisfied when v > Lower, or v == Lower and the bound is inclusive; the
// upper bound is symmetric. A value with no ordering relation to a bound
// (NaN) fails that bound's check.
func (iv Interval[T]) Contains(v T) bool {
	lowerOK := false
	if c, ok := PartialCompare(v, iv.Lower); ok {
		lowerOK = c > 0 || (c == 0 && iv.LowerInclusive)
	}

	upperOK := false
	if c, ok := PartialCompare(v, iv.Upper); ok {
		upperOK = c < 0 || (c == 0 && iv.UpperInclusive)
	}

	return lowerOK && upperOK
}

// IsPoint reports whether the interval denotes exactly one value.
func (iv Interval[T]) IsPoint() bool {
	c, ok := PartialCompare(iv.Lower, iv.Upper)
	return ok && c == 0 && iv.LowerInclusive && iv.UpperInclusive
}

// IsEmpty reports whether the interval admits no value at all: equal bounds
// with at least one exclusive side.
func (iv Interval[T]) IsEmpty() bool {
	c, ok := PartialCompare(iv.Lower, iv.Upper)
	return ok && c == 0 && !(iv.LowerInclusive && iv.UpperInclusive)
}

func (iv Interval[T]) String() string {
	lb, ub := "(", ")"
	if iv.LowerInclusive {
		lb = "["
	}
	if iv.UpperInclusive {
		ub = "]"
	}
	return fmt.Sprintf("%s%v, %v%s", lb, iv.Lower, iv.Upper, ub)
}

// Width returns Upper - Lower. The result is not clamped: a malformed
// interval with Upper < Lower yields a negative width.
func Width[T Number](iv Interval[T]) T {
	return iv.Upper - iv.Lower
}
