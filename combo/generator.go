// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package combo contains the combination generators of drumgen. A generator
// yields one pattern value per instrument, filtered by the number of silent
// instruments, either by exhaustive enumeration or by random sampling.
package combo

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"drumgen/core"
	"drumgen/logger"
)

// MaxNotes is the largest supported number of slots per pattern.
const MaxNotes = 32

//go:generate go run golang.org/x/tools/cmd/stringer -type=Source

// Source selects how combinations are produced.
type Source int

const (
	// Permutation enumerates every multiset of patterns in order
	Permutation Source = iota
	// Random draws patterns uniformly
	Random
)

// ParseSource parses a source name. "exhaustive" is an alias of permutation.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "permutation", "permutations", "exhaustive":
		return Permutation, nil
	case "random":
		return Random, nil
	default:
		return Permutation, fmt.Errorf("%w: unknown combination source %q", core.ErrInvalidConfiguration, s)
	}
}

// Combination assigns one pattern value to each instrument.
type Combination []uint64

// Zeros returns the number of silent instruments.
func (c Combination) Zeros() int {
	var n int
	for _, v := range c {
		if v == 0 {
			n++
		}
	}
	return n
}

// Generator is a single-pass sequence of combinations.
type Generator interface {
	// Next returns the next accepted combination. The second value is false
	// once the generator is exhausted.
	Next() (Combination, bool)
	// Stats returns the counters of the generator.
	Stats() *Stats
}

// Params configures a generator.
type Params struct {
	Source        Source
	NNotes        int   // slots per pattern, values are in [0, 2^NNotes)
	NInstr        int   // values per combination
	NCombinations int   // target count; <= 0 is no limit for permutations but no draws for random
	MaxZeros      int   // combinations with more zero values are dropped
	Seed          int64 // random seed, 0 picks one from the clock
}

func (p Params) validate() error {
	switch {
	case p.NNotes < 1 || p.NNotes > MaxNotes:
		return fmt.Errorf("%w: number of notes %d not in [1, %d]", core.ErrInvalidConfiguration, p.NNotes, MaxNotes)
	case p.NInstr < 1:
		return fmt.Errorf("%w: need at least one instrument", core.ErrInvalidConfiguration)
	case p.MaxZeros < 0:
		return fmt.Errorf("%w: max zeros must not be negative", core.ErrInvalidConfiguration)
	case p.Source == Random && p.NCombinations < 0:
		return fmt.Errorf("%w: random source needs a non-negative number of combinations", core.ErrInvalidConfiguration)
	}
	return nil
}

// New returns the generator selected by p.Source.
func New(p Params) (Generator, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	switch p.Source {
	case Permutation:
		g, err := NewPermutations(p.NNotes, p.NInstr, p.NCombinations, p.MaxZeros)
		if err != nil {
			return nil, err
		}
		return g, nil
	case Random:
		seed := p.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Debugf("random seed %d", seed)
		g, err := NewRandom(p.NNotes, p.NInstr, p.NCombinations, p.MaxZeros, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unknown combination source %v", core.ErrInvalidConfiguration, p.Source)
	}
}
