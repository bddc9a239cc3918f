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

package set

// Set is an unordered collection of unique items.
type Set[T comparable] struct {
	items map[T]struct{}
}

func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}

	for _, item := range items {
		s.items[item] = struct{}{}
	}

	return s
}

func (s *Set[T]) Add(items ...T) {
	for _, item := range items {
		s.items[item] = struct{}{}
	}
}

func (s *Set[T]) Contains(item T) bool {
	_, present := s.items[item]
	return present
}

func (s *Set[T]) ContainsAll(items []T) bool {
	for _, item := range items {
		if _, present := s.items[item]; !present {
			return false
		}
	}

	return true
}

func (s *Set[T]) Size() int {
	return len(s.items)
}

// Union returns a new set holding every item present in s or in other.
// Neither input is modified.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	result := &Set[T]{items: make(map[T]struct{}, len(s.items)+other.Size())}

	for item := range s.items {
		result.items[item] = struct{}{}
	}
	if other != nil {
		for item := range other.items {
			result.items[item] = struct{}{}
		}
	}

	return result
}

// Iter calls cb for each item in the set, in unspecified order, until cb
// returns true.
func (s *Set[T]) Iter(cb func(item T) (stop bool)) {
	for item := range s.items {
		if cb(item) {
			break
		}
	}
}

func (s *Set[T]) Equals(other *Set[T]) bool {
	if other == nil || len(s.items) != other.Size() {
		return false
	}

	for item := range s.items {
		if _, present := other.items[item]; !present {
			return false
		}
	}

	return true
}

func (s *Set[T]) AsSlice() []T {
	items := make([]T, 0, len(s.items))

	for item := range s.items {
		items = append(items, item)
	}

	return items
}
