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

// Composed is the functional composition outer ∘ inner: inner maps E to U,
// conv carries U into outer's domain element type M, and outer maps M to T.
//
// The composition's domain is inner's domain alone. Whether inner's output
// actually lands in outer's domain is checked lazily by outer's own Evaluate,
// and an ErrDomain raised there surfaces as the composition's error.
type Composed[E, U, M, T any] struct {
	outer Evaluable[M, T]
	inner Evaluable[E, U]
	conv  func(U) M
}

// Compose returns outer ∘ inner with conv bridging inner's codomain element
// type to outer's domain element type.
func Compose[E, U, M, T any](outer Evaluable[M, T], inner Evaluable[E, U], conv func(U) M) *Composed[E, U, M, T] {
	return &Composed[E, U, M, T]{outer: outer, inner: inner, conv: conv}
}

func (c *Composed[E, U, M, T]) Evaluate(input E) (Value[T], error) {
	mid, err := c.inner.Evaluate(input)
	if err != nil {
		return nil, err
	}

	// Only a Single intermediate result can feed outer. A set or interval
	// output would require evaluating outer over every member, which is not
	// implemented.
	single, ok := mid.(Single[U])
	if !ok {
		return nil, ErrOther.New(msgComplexOperation)
	}

	return c.outer.Evaluate(c.conv(single.V))
}

func (c *Composed[E, U, M, T]) InDomain(input E) bool {
	return c.inner.InDomain(input)
}
