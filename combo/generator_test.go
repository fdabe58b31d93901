// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package combo

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drumgen/core"
)

func collect(g Generator) []Combination {
	var r []Combination
	for c, ok := g.Next(); ok; c, ok = g.Next() {
		r = append(r, c)
	}
	return r
}

// less compares two combinations lexicographically.
func less(a, b Combination) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestPermutationsNoZeros(t *testing.T) {
	g, err := NewPermutations(2, 2, 3, 0)
	require.Nil(t, err)
	out := collect(g)
	assert.Equal(t, []Combination{{1, 1}, {1, 2}, {1, 3}}, out)
	for _, c := range out {
		assert.NotContains(t, c, uint64(0))
	}
}

func TestPermutationsOrder(t *testing.T) {
	g, err := NewPermutations(2, 3, 0, 3)
	require.Nil(t, err)
	out := collect(g)

	// multisets of size 3 over 4 values: C(6, 3)
	assert.Len(t, out, 20)
	assert.Equal(t, Combination{0, 0, 0}, out[0])
	assert.Equal(t, Combination{3, 3, 3}, out[len(out)-1])
	for i, c := range out {
		for j := 1; j < len(c); j++ {
			assert.LessOrEqual(t, c[j-1], c[j])
		}
		if i > 0 {
			assert.True(t, less(out[i-1], c), "%v before %v", out[i-1], c)
		}
	}
}

func TestPermutationsExhausted(t *testing.T) {
	testCases := []struct {
		nNotes, nInstr, n, maxZeros int
		out                         []Combination
	}{
		{1, 2, 100, 0, []Combination{{1, 1}}},
		{1, 2, 100, 1, []Combination{{0, 1}, {1, 1}}},
		{1, 2, 0, 2, []Combination{{0, 0}, {0, 1}, {1, 1}}},
		{2, 1, 10, 0, []Combination{{1}, {2}, {3}}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			g, err := NewPermutations(tc.nNotes, tc.nInstr, tc.n, tc.maxZeros)
			require.Nil(t, err)
			assert.Equal(t, tc.out, collect(g))

			// the generator is single pass
			_, ok := g.Next()
			assert.False(t, ok)
		})
	}
}

func TestPermutationsStats(t *testing.T) {
	g, err := NewPermutations(2, 2, 0, 0)
	require.Nil(t, err)
	out := collect(g)
	s := g.Stats()
	assert.Equal(t, 10, s.Count(Drawn))
	assert.Equal(t, len(out), s.Count(Accepted))
	assert.Equal(t, 10-len(out), s.Count(Rejected))
	assert.Contains(t, s.String(), "Accepted: 6")
}

func TestRandomDraws(t *testing.T) {
	g, err := NewRandom(2, 2, 100, 2, rand.New(rand.NewSource(7)))
	require.Nil(t, err)
	out := collect(g)
	assert.Len(t, out, 100)
	for _, c := range out {
		assert.LessOrEqual(t, c.Zeros(), 2)
		for _, v := range c {
			assert.Less(t, v, uint64(4))
		}
	}
}

func TestRandomDropsRejected(t *testing.T) {
	g, err := NewRandom(2, 4, 100, 0, rand.New(rand.NewSource(1)))
	require.Nil(t, err)
	out := collect(g)
	assert.LessOrEqual(t, len(out), 100)
	for _, c := range out {
		assert.Zero(t, c.Zeros())
	}
	s := g.Stats()
	assert.Equal(t, 100, s.Count(Drawn))
	assert.Equal(t, 100, s.Count(Accepted)+s.Count(Rejected))
	assert.Equal(t, len(out), s.Count(Accepted))
}

func TestRandomDeterministic(t *testing.T) {
	run := func() []Combination {
		g, err := New(Params{Source: Random, NNotes: 4, NInstr: 4, NCombinations: 50, MaxZeros: 1, Seed: 42})
		require.Nil(t, err)
		return collect(g)
	}
	assert.Equal(t, run(), run())
}

func TestNewInvalid(t *testing.T) {
	testCases := []Params{
		{NNotes: 0, NInstr: 2},
		{NNotes: MaxNotes + 1, NInstr: 2},
		{NNotes: 4, NInstr: 0},
		{NNotes: 4, NInstr: 2, MaxZeros: -1},
		{Source: Random, NNotes: 4, NInstr: 2, NCombinations: -1},
		{Source: Source(7), NNotes: 4, NInstr: 2},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%+v", tc), func(t *testing.T) {
			_, err := New(tc)
			assert.True(t, errors.Is(err, core.ErrInvalidConfiguration), "got %v", err)
		})
	}
}

func TestParseSource(t *testing.T) {
	testCases := []struct {
		in  string
		out Source
		err bool
	}{
		{"permutation", Permutation, false},
		{"Exhaustive", Permutation, false},
		{"RANDOM", Random, false},
		{"shuffle", Permutation, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			s, err := ParseSource(tc.in)
			if tc.err {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.out, s)
		})
	}
	assert.Equal(t, "Random", Random.String())
	assert.Equal(t, "Source(9)", Source(9).String())
}

func TestZeroCombinations(t *testing.T) {
	r, err := New(Params{Source: Random, NNotes: 2, NInstr: 2, MaxZeros: 2, Seed: 3})
	require.Nil(t, err)
	assert.Empty(t, collect(r))
	assert.Equal(t, 0, r.Stats().Count(Drawn))

	p, err := New(Params{Source: Permutation, NNotes: 2, NInstr: 2, MaxZeros: 2})
	require.Nil(t, err)
	// multisets of size 2 over 4 values
	assert.Len(t, collect(p), 10)
}
