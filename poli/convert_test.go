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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/polifunc/utils/set"
)

func TestToInterval(t *testing.T) {
	p := ToInterval[int, int](NewMappedSet(fixedSet[int](3, 7, 1), Finite(1), All[int]()))

	iv, err := p.ValueInterval(1)
	require.NoError(t, err)
	assert.Equal(t, Closed(1, 7), iv)

	v, err := p.Evaluate(1)
	require.NoError(t, err)
	require.Equal(t, IntervalKind, v.Kind())
	assert.Equal(t, Closed(1, 7), v.(Span[int]).Interval)
}

func TestToIntervalEmptySet(t *testing.T) {
	p := ToInterval[int, int](NewMappedSet(func(int) (*set.Set[int], error) {
		return set.NewSet[int](), nil
	}, Finite(1), All[int]()))

	// no extrema to take
	_, err := p.ValueInterval(1)
	assert.True(t, ErrComputation.Is(err))
}

func TestToIntervalSingleton(t *testing.T) {
	p := ToInterval[int, int](NewMappedSet(fixedSet[int](4), Finite(1), All[int]()))

	iv, err := p.ValueInterval(1)
	require.NoError(t, err)
	assert.Equal(t, Point(4), iv)
	assert.True(t, iv.IsPoint())
}

func TestToIntervalDomainAndErrors(t *testing.T) {
	p := ToInterval[int, int](NewMappedSet(fixedSet[int](1, 2), Finite(1), All[int]()))

	assert.True(t, p.InDomain(1))
	assert.False(t, p.InDomain(2))

	_, err := p.ValueInterval(2)
	assert.True(t, ErrDomain.Is(err))

	failing := ToInterval[int, int](NewMappedSet(func(int) (*set.Set[int], error) {
		return nil, ErrConvergence.New()
	}, Finite(1), All[int]()))

	_, err = failing.ValueInterval(1)
	assert.True(t, ErrConvergence.Is(err))
}

func TestToIntervalIncomparableMember(t *testing.T) {
	p := ToInterval[int, float64](NewMappedSet(fixedSet[int](1.0, math.NaN(), 3.0), Finite(1), All[float64]()))

	_, err := p.ValueInterval(1)
	assert.True(t, ErrComputation.Is(err))
}

func TestToIntervalDerivedOperations(t *testing.T) {
	p := ToInterval[int, int](NewMappedSet(fixedSet[int](10, 2, 6), Finite(1), All[int]()))

	found, err := p.ContainsValue(1, 5)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = p.ContainsValue(1, 11)
	require.NoError(t, err)
	assert.False(t, found)

	w, err := p.Width(1)
	require.NoError(t, err)
	assert.Equal(t, 8, w)
}
