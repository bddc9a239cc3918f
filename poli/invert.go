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

// Inverted swaps a polifunction's domain and codomain at the type level. True
// inversion is not derivable from a forward evaluator alone, so this is a
// deliberate non-functional placeholder: Evaluate always fails and InDomain
// is always false. It must not be "completed" by guessing an inverse.
type Inverted[E, T any] struct {
	original Evaluable[E, T]
}

// Invert returns the inversion placeholder for p, an Evaluable[T, E].
func Invert[E, T any](p Evaluable[E, T]) *Inverted[E, T] {
	return &Inverted[E, T]{original: p}
}

func (p *Inverted[E, T]) Evaluate(input T) (Value[E], error) {
	return nil, ErrOther.New(msgNotImplemented)
}

func (p *Inverted[E, T]) InDomain(input T) bool {
	return false
}
