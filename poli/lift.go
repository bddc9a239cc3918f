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

// Lifted is an ordinary single-valued function wrapped as a polifunction.
// Evaluation yields a Single and never any other shape.
type Lifted[E, T any] struct {
	fn       func(E) (T, error)
	domain   Domain[E]
	codomain Codomain[T]
}

// Lift wraps fn as a base polifunction over the given domain and codomain.
// fn is only ever invoked with inputs that passed the domain check.
func Lift[E, T any](fn func(E) (T, error), domain Domain[E], codomain Codomain[T]) *Lifted[E, T] {
	return &Lifted[E, T]{fn: fn, domain: domain, codomain: codomain}
}

// Constant returns the polifunction yielding value for every in-domain input.
func Constant[E, T any](value T, domain Domain[E], codomain Codomain[T]) *Lifted[E, T] {
	return Lift(func(E) (T, error) { return value, nil }, domain, codomain)
}

func (p *Lifted[E, T]) Evaluate(input E) (Value[T], error) {
	if !p.InDomain(input) {
		return nil, ErrDomain.New()
	}

	v, err := p.fn(input)
	if err != nil {
		return nil, err
	}
	return Single[T]{V: v}, nil
}

func (p *Lifted[E, T]) InDomain(input E) bool {
	return p.domain.Contains(input)
}

// LiftedSet is an ordinary single-valued function wrapped as a set-valued
// polifunction. The output set always holds exactly one element, so
// Cardinality is 1 for every in-domain input.
type LiftedSet[E any, T comparable] struct {
	fn       func(E) (T, error)
	domain   Domain[E]
	codomain Codomain[T]
}

// LiftToSet wraps fn as a set-valued polifunction whose output at each point
// is the one-element set of fn's result.
func LiftToSet[E any, T comparable](fn func(E) (T, error), domain Domain[E], codomain Codomain[T]) *LiftedSet[E, T] {
	return &LiftedSet[E, T]{fn: fn, domain: domain, codomain: codomain}
}

func (p *LiftedSet[E, T]) Evaluate(input E) (Value[T], error) {
	vals, err := p.ValueSet(input)
	if err != nil {
		return nil, err
	}
	return SetOf[T]{Set: vals}, nil
}

func (p *LiftedSet[E, T]) InDomain(input E) bool {
	return p.domain.Contains(input)
}

func (p *LiftedSet[E, T]) ValueSet(input E) (*set.Set[T], error) {
	if !p.InDomain(input) {
		return nil, ErrDomain.New()
	}

	v, err := p.fn(input)
	if err != nil {
		return nil, err
	}
	return set.NewSet(v), nil
}

func (p *LiftedSet[E, T]) ContainsValue(input E, value T) (bool, error) {
	vals, err := p.ValueSet(input)
	if err != nil {
		return false, err
	}
	return vals.Contains(value), nil
}

func (p *LiftedSet[E, T]) Cardinality(input E) (int, error) {
	vals, err := p.ValueSet(input)
	if err != nil {
		return 0, err
	}
	return vals.Size(), nil
}
