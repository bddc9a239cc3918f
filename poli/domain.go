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

// Domain is the membership predicate a polifunction accepts inputs over.
// Contains must be pure: no mutation, no dependency on call history.
type Domain[E any] interface {
	Contains(elem E) bool
}

// Codomain is the membership predicate over a polifunction's output elements.
type Codomain[T any] interface {
	Contains(elem T) bool
}

// DomainFunc adapts an ordinary predicate into a Domain or Codomain.
type DomainFunc[E any] func(E) bool

func (f DomainFunc[E]) Contains(elem E) bool {
	return f(elem)
}

// All returns the universal domain over E.
func All[E any]() DomainFunc[E] {
	return func(E) bool { return true }
}

// MemberDomain is a finite domain backed by an explicit member set.
type MemberDomain[E comparable] struct {
	members *set.Set[E]
}

// Finite returns a domain containing exactly the given members.
func Finite[E comparable](members ...E) MemberDomain[E] {
	return MemberDomain[E]{members: set.NewSet(members...)}
}

func (d MemberDomain[E]) Contains(elem E) bool {
	return d.members.Contains(elem)
}
