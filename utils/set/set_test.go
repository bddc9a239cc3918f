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

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	s := NewSet("a", "b", "c")

	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("d"))
	assert.True(t, s.ContainsAll([]string{"a", "b"}))
	assert.False(t, s.ContainsAll([]string{"a", "d"}))
	assert.True(t, s.ContainsAll(nil))
}

func TestAddAndSize(t *testing.T) {
	s := NewSet[int]()
	require.Equal(t, 0, s.Size())

	s.Add(1, 2, 2, 3)
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains(2))
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name     string
		first    []int
		second   []int
		expected []int
	}{
		{
			name:     "disjoint",
			first:    []int{1, 2},
			second:   []int{3},
			expected: []int{1, 2, 3},
		},
		{
			name:     "overlapping",
			first:    []int{1, 2},
			second:   []int{2, 3},
			expected: []int{1, 2, 3},
		},
		{
			name:     "empty other",
			first:    []int{1},
			second:   []int{},
			expected: []int{1},
		},
		{
			name:     "both empty",
			first:    []int{},
			second:   []int{},
			expected: []int{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			first := NewSet(test.first...)
			second := NewSet(test.second...)
			union := first.Union(second)

			assert.True(t, union.Equals(NewSet(test.expected...)))

			// inputs must be untouched
			assert.Equal(t, len(test.first), first.Size())
			assert.Equal(t, len(test.second), second.Size())
		})
	}
}

func TestEquals(t *testing.T) {
	assert.True(t, NewSet(1, 2).Equals(NewSet(2, 1)))
	assert.False(t, NewSet(1, 2).Equals(NewSet(1)))
	assert.False(t, NewSet(1).Equals(NewSet(2)))
	assert.False(t, NewSet(1).Equals(nil))
	assert.True(t, NewSet[int]().Equals(NewSet[int]()))
}

func TestIterStops(t *testing.T) {
	s := NewSet(1, 2, 3, 4)

	seen := 0
	s.Iter(func(int) bool {
		seen++
		return seen == 2
	})

	assert.Equal(t, 2, seen)
}

func TestAsSlice(t *testing.T) {
	items := NewSet(3, 1, 2).AsSlice()
	sort.Ints(items)
	assert.Equal(t, []int{1, 2, 3}, items)
}
