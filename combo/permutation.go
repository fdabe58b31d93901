// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package combo

import (
	"drumgen/logger"
)

// Permutations enumerates multisets of pattern values drawn with repetition,
// in non-decreasing lexicographic order.
type Permutations struct {
	max      uint64 // largest pattern value
	limit    int
	maxZeros int

	cur     Combination
	started bool
	done    bool
	stats   *Stats
}

// NewPermutations returns an exhaustive generator over all multisets of size
// nInstr of values in [0, 2^nNotes). It stops after n accepted combinations
// or when the space is exhausted; n <= 0 means no limit.
func NewPermutations(nNotes, nInstr, n, maxZeros int) (*Permutations, error) {
	p := Params{NNotes: nNotes, NInstr: nInstr, NCombinations: n, MaxZeros: maxZeros}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Permutations{
		max:      1<<uint(nNotes) - 1,
		limit:    n,
		maxZeros: maxZeros,
		cur:      make(Combination, nInstr),
		stats:    NewStats(),
	}, nil
}

// advance moves cur to the next multiset and returns false when there is none.
func (g *Permutations) advance() bool {
	if !g.started {
		g.started = true
		return true
	}
	i := len(g.cur) - 1
	for i >= 0 && g.cur[i] == g.max {
		i--
	}
	if i < 0 {
		return false
	}
	v := g.cur[i] + 1
	for j := i; j < len(g.cur); j++ {
		g.cur[j] = v
	}
	return true
}

// Next implements Generator.
func (g *Permutations) Next() (Combination, bool) {
	if g.done {
		return nil, false
	}
	if g.limit > 0 && g.stats.Count(Accepted) >= g.limit {
		g.done = true
		return nil, false
	}
	for g.advance() {
		g.stats.Inc(Drawn)
		if g.cur.Zeros() > g.maxZeros {
			g.stats.Inc(Rejected)
			continue
		}
		g.stats.Inc(Accepted)
		c := make(Combination, len(g.cur))
		copy(c, g.cur)
		return c, true
	}
	logger.Debugf("permutations exhausted after %d accepted", g.stats.Count(Accepted))
	g.done = true
	return nil, false
}

// Stats implements Generator.
func (g *Permutations) Stats() *Stats {
	return g.stats
}
