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

// Evaluable is the minimal contract every polifunction satisfies: evaluate at
// a point and test domain membership. E is the domain element type, T the
// codomain element type.
//
// Every implementation in this package checks InDomain before invoking any
// stored mapping function and fails with ErrDomain when the check fails.
// Mapping functions may be unsafe or undefined outside their declared domain,
// so the ordering is a correctness requirement, not an optimization.
//
// Polifunctions are immutable after construction. Evaluating one instance
// concurrently from multiple goroutines is safe.
type Evaluable[E, T any] interface {
	// Evaluate returns the possible outputs at input as a tagged Value.
	Evaluate(input E) (Value[T], error)

	// InDomain reports whether input belongs to the polifunction's domain.
	InDomain(input E) bool
}
