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

	"github.com/dolthub/polifunc/utils/set"
)

// ValueKind discriminates the output shapes a polifunction can produce.
type ValueKind uint8

const (
	SingleKind ValueKind = iota
	SetKind
	IntervalKind
	DistributionKind
	FuzzySetKind
)

func (k ValueKind) String() string {
	switch k {
	case SingleKind:
		return "Single"
	case SetKind:
		return "Set"
	case IntervalKind:
		return "Interval"
	case DistributionKind:
		return "Distribution"
	case FuzzySetKind:
		return "FuzzySet"
	}
	return "UnknownKind"
}

// Value is the result of evaluating a polifunction. Exactly one concrete
// shape is produced per evaluation: Single, SetOf, Span, Distribution or
// FuzzySet, discriminated by Kind.
type Value[T any] interface {
	Kind() ValueKind
}

// Single wraps exactly one output element.
type Single[T any] struct {
	V T
}

func (Single[T]) Kind() ValueKind {
	return SingleKind
}

// SetOf wraps a finite set of output elements.
type SetOf[T comparable] struct {
	Set *set.Set[T]
}

func (SetOf[T]) Kind() ValueKind {
	return SetKind
}

// Span wraps a continuous interval of output elements.
type Span[T constraints.Ordered] struct {
	Interval Interval[T]
}

func (Span[T]) Kind() ValueKind {
	return IntervalKind
}

// Distribution is a reserved output shape for probability distributions. It
// carries no payload and no operation in this package accepts it; combinators
// that meet one report an unsupported-operation error rather than coercing.
type Distribution[T any] struct{}

func (Distribution[T]) Kind() ValueKind {
	return DistributionKind
}

// FuzzySet is a reserved output shape for fuzzy sets with membership degrees.
// Like Distribution it carries no payload and supports no operations.
type FuzzySet[T any] struct{}

func (FuzzySet[T]) Kind() ValueKind {
	return FuzzySetKind
}
