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
	"golang.org/x/exp/constraints"
)

// Number is the constraint for codomain elements that support subtraction,
// required by interval widths.
type Number interface {
	constraints.Integer | constraints.Float
}

// Addable is the constraint for codomain elements that support the + operator,
// required by the sum combinator.
type Addable interface {
	constraints.Integer | constraints.Float | ~string
}

// PartialCompare orders a against b, returning -1, 0 or 1. ok is false when
// the two operands have no ordering relation, which for floating point means
// at least one of them is NaN. Callers must not substitute a default ordering
// for the unordered case.
func PartialCompare[T constraints.Ordered](a, b T) (cmp int, ok bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}
