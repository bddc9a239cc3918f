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

// Union is the set-valued polifunction whose output at a point is the union
// of two constituents' outputs. Its domain is the union of the constituent
// domains, so an input may be in-domain overall while one branch rejects it.
//
// A branch failing with ErrDomain contributes nothing; any other branch error
// is fatal and propagates unchanged. The union itself reports ErrDomain only
// when both branches did.
type Union[E any, T comparable] struct {
	p1 SetValued[E, T]
	p2 SetValued[E, T]
}

// NewUnion returns p1 ∪ p2. Both constituents must share the same domain and
// codomain element types.
func NewUnion[E any, T comparable](p1, p2 SetValued[E, T]) *Union[E, T] {
	return &Union[E, T]{p1: p1, p2: p2}
}

func (u *Union[E, T]) Evaluate(input E) (Value[T], error) {
	vals, err := u.ValueSet(input)
	if err != nil {
		return nil, err
	}
	return SetOf[T]{Set: vals}, nil
}

func (u *Union[E, T]) InDomain(input E) bool {
	return u.p1.InDomain(input) || u.p2.InDomain(input)
}

func (u *Union[E, T]) ValueSet(input E) (*set.Set[T], error) {
	if !u.InDomain(input) {
		return nil, ErrDomain.New()
	}

	vals := set.NewSet[T]()
	misses := 0

	first, err := u.p1.ValueSet(input)
	if err != nil {
		if !ErrDomain.Is(err) {
			return nil, err
		}
		misses++
	} else {
		vals = vals.Union(first)
	}

	second, err := u.p2.ValueSet(input)
	if err != nil {
		if !ErrDomain.Is(err) {
			return nil, err
		}
		misses++
	} else {
		vals = vals.Union(second)
	}

	if misses == 2 {
		return nil, ErrDomain.New()
	}
	return vals, nil
}

func (u *Union[E, T]) ContainsValue(input E, value T) (bool, error) {
	if !u.InDomain(input) {
		return false, ErrDomain.New()
	}

	found, err := u.p1.ContainsValue(input, value)
	if err != nil && !ErrDomain.Is(err) {
		return false, err
	}
	if err == nil && found {
		return true, nil
	}

	// branch 2 answers directly, errors included
	return u.p2.ContainsValue(input, value)
}

func (u *Union[E, T]) Cardinality(input E) (int, error) {
	vals, err := u.ValueSet(input)
	if err != nil {
		return 0, err
	}
	return vals.Size(), nil
}
