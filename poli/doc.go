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

// Package poli is an algebra for multi-valued functions ("polifunctions"):
// mappings from a domain element to one of several output shapes, such as a
// single value, a finite set, or a continuous interval.
//
// Leaf polifunctions wrap caller-supplied mapping functions (NewMappedSet,
// NewMappedInterval) or ordinary single-valued functions (Lift, LiftToSet,
// Constant). Combinators build new polifunctions out of existing ones:
// NewUnion and NewHull widen the domain and merge outputs, NewSum narrows the
// domain and adds pointwise, Compose chains two polifunctions, ToInterval
// views a set-valued polifunction through its extrema, and Invert is a
// reserved placeholder. Every combinator satisfies the Evaluable contract
// itself, so combinators nest freely.
//
// All polifunctions are immutable after construction, and evaluation has no
// side effects, so a single instance may be evaluated concurrently from any
// number of goroutines.
package poli
