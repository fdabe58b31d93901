// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package combo

import (
	"fmt"
	"time"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Type

// Type represents the counter type, eg, Accepted or Rejected.
type Type int

const (
	// Drawn counts every candidate combination
	Drawn Type = iota
	// Accepted counts yielded combinations
	Accepted
	// Rejected counts candidates with too many zeros
	Rejected
)

// Stats keeps track of the generator counters.
type Stats struct {
	counts map[Type]int
	start  time.Time
}

// NewStats returns a new Stats object
func NewStats() *Stats {
	return &Stats{
		counts: make(map[Type]int),
		start:  time.Now(),
	}
}

// Inc increments the count of type t
func (s *Stats) Inc(t Type) {
	s.counts[t]++
}

// Count returns the count of type t
func (s *Stats) Count(t Type) int {
	return s.counts[t]
}

// String is the string representation of the stats object.
func (s *Stats) String() string {
	var str string
	for _, t := range []Type{Drawn, Accepted, Rejected} {
		str += fmt.Sprintf("%8v: %d\n", t, s.counts[t])
	}
	elapsed := time.Since(s.start)
	str += fmt.Sprintf("\nTotal time: %v (%v)\n", elapsed.Seconds(), elapsed)
	return str
}
