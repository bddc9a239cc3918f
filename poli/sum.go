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

// Sum is the pointwise sum of two polifunctions over the same domain and an
// addable codomain element. Unlike Union and Hull, an input must be in BOTH
// constituent domains, so the sum's domain is narrower than either branch.
//
// Only the Single + Single shape combination is supported; any other pairing
// of output shapes reports ErrOther.
type Sum[E any, T Addable] struct {
	p1 Evaluable[E, T]
	p2 Evaluable[E, T]
}

func NewSum[E any, T Addable](p1, p2 Evaluable[E, T]) *Sum[E, T] {
	return &Sum[E, T]{p1: p1, p2: p2}
}

func (s *Sum[E, T]) Evaluate(input E) (Value[T], error) {
	if !s.InDomain(input) {
		return nil, ErrDomain.New()
	}

	v1, err := s.p1.Evaluate(input)
	if err != nil {
		return nil, err
	}
	v2, err := s.p2.Evaluate(input)
	if err != nil {
		return nil, err
	}

	s1, ok1 := v1.(Single[T])
	s2, ok2 := v2.(Single[T])
	if !ok1 || !ok2 {
		return nil, ErrOther.New(msgComplexOperation)
	}
	return Single[T]{V: s1.V + s2.V}, nil
}

func (s *Sum[E, T]) InDomain(input E) bool {
	return s.p1.InDomain(input) && s.p2.InDomain(input)
}
