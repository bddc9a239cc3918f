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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/polifunc/utils/set"
)

func TestLiftDomainCheckedFirst(t *testing.T) {
	calls := 0
	p := Lift(func(x int) (int, error) {
		calls++
		return x * 2, nil
	}, Finite(1, 2), All[int]())

	_, err := p.Evaluate(3)
	assert.True(t, ErrDomain.Is(err))
	assert.Equal(t, 0, calls)

	v, err := p.Evaluate(2)
	require.NoError(t, err)
	require.Equal(t, SingleKind, v.Kind())
	assert.Equal(t, 4, v.(Single[int]).V)
	assert.Equal(t, 1, calls)
}

func TestLiftFunctionErrorsPassThrough(t *testing.T) {
	p := Lift(func(int) (int, error) {
		return 0, ErrComputation.New()
	}, All[int](), All[int]())

	_, err := p.Evaluate(1)
	assert.True(t, ErrComputation.Is(err))
}

func TestConstant(t *testing.T) {
	p := Constant("fixed", All[int](), All[string]())

	for _, input := range []int{-5, 0, 42} {
		v, err := p.Evaluate(input)
		require.NoError(t, err)
		assert.Equal(t, "fixed", v.(Single[string]).V)
	}
}

func TestConstantRespectsDomain(t *testing.T) {
	p := Constant(7, Finite("a"), All[int]())

	_, err := p.Evaluate("b")
	assert.True(t, ErrDomain.Is(err))
}

func TestLiftToSet(t *testing.T) {
	p := LiftToSet(func(x int) (int, error) { return x * x, nil }, Finite(3), All[int]())

	vals, err := p.ValueSet(3)
	require.NoError(t, err)
	assert.True(t, vals.Equals(set.NewSet(9)))

	v, err := p.Evaluate(3)
	require.NoError(t, err)
	assert.Equal(t, SetKind, v.Kind())

	// a lifted ordinary function is single-valued by construction
	n, err := p.Cardinality(3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	found, err := p.ContainsValue(3, 9)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = p.ContainsValue(3, 8)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = p.ValueSet(4)
	assert.True(t, ErrDomain.Is(err))
}

func TestLiftDecimalElements(t *testing.T) {
	// measurement scaling over exact decimals: struct element types flow
	// through the unconstrained combinators untouched
	scale := decimal.RequireFromString("2.54")
	p := Lift(func(d decimal.Decimal) (decimal.Decimal, error) {
		return d.Mul(scale), nil
	}, All[decimal.Decimal](), All[decimal.Decimal]())

	v, err := p.Evaluate(decimal.RequireFromString("3"))
	require.NoError(t, err)
	assert.True(t, v.(Single[decimal.Decimal]).V.Equal(decimal.RequireFromString("7.62")))
}
