// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package combo

import (
	"math/rand"
)

// RandomDraws samples combinations uniformly. Every call to Next consumes
// draws until one is accepted; rejected draws are not retried, so fewer than
// the requested number of combinations may be yielded.
type RandomDraws struct {
	rng      *rand.Rand
	mask     uint64
	nInstr   int
	draws    int
	maxZeros int
	stats    *Stats
}

// NewRandom returns a generator performing exactly n draws of nInstr values
// in [0, 2^nNotes) from rng.
func NewRandom(nNotes, nInstr, n, maxZeros int, rng *rand.Rand) (*RandomDraws, error) {
	p := Params{Source: Random, NNotes: nNotes, NInstr: nInstr, NCombinations: n, MaxZeros: maxZeros}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &RandomDraws{
		rng:      rng,
		mask:     1<<uint(nNotes) - 1,
		nInstr:   nInstr,
		draws:    n,
		maxZeros: maxZeros,
		stats:    NewStats(),
	}, nil
}

// Next implements Generator.
func (g *RandomDraws) Next() (Combination, bool) {
	for g.stats.Count(Drawn) < g.draws {
		c := make(Combination, g.nInstr)
		for i := range c {
			c[i] = g.rng.Uint64() & g.mask
		}
		g.stats.Inc(Drawn)
		if c.Zeros() > g.maxZeros {
			g.stats.Inc(Rejected)
			continue
		}
		g.stats.Inc(Accepted)
		return c, true
	}
	return nil, false
}

// Stats implements Generator.
func (g *RandomDraws) Stats() *Stats {
	return g.stats
}
