// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxWidth is the largest number of slots a Bitseq can hold.
const MaxWidth = 64

// Bitseq is a fixed-width rhythmic pattern. Each bit is one note slot; slot 0
// is the most significant bit, ie, the leftmost digit of the binary string.
type Bitseq struct {
	value uint64
	bits  int
}

func checkWidth(width int) error {
	if width <= 0 || width > MaxWidth {
		return fmt.Errorf("%w: width %d not in [1, %d]", ErrInvalidConfiguration, width, MaxWidth)
	}
	return nil
}

func fits(x uint64, width int) bool {
	return width >= MaxWidth || x>>uint(width) == 0
}

// NewBitseq returns a Bitseq of the given width holding x.
func NewBitseq(x uint64, width int) (Bitseq, error) {
	if err := checkWidth(width); err != nil {
		return Bitseq{}, err
	}
	if !fits(x, width) {
		return Bitseq{}, fmt.Errorf("%w: %d needs more than %d bits", ErrValueOutOfRange, x, width)
	}
	return Bitseq{value: x, bits: width}, nil
}

// FromBinString parses a string of '0's and '1's. The width of the result
// is the length of the string.
func FromBinString(str string) (Bitseq, error) {
	if err := checkWidth(len(str)); err != nil {
		return Bitseq{}, fmt.Errorf("cannot parse bitseq %q: %w", str, err)
	}
	if strings.Trim(str, "01") != "" {
		return Bitseq{}, fmt.Errorf("cannot parse bitseq %q: not a binary string", str)
	}
	v, err := strconv.ParseUint(str, 2, MaxWidth)
	if err != nil {
		return Bitseq{}, err
	}
	return Bitseq{value: v, bits: len(str)}, nil
}

// IntToBinStr converts x into its binary representation left-padded with
// '0's to exactly width characters. Values needing more than width digits
// are rejected with ErrValueOutOfRange instead of being widened.
func IntToBinStr(x uint64, width int) (string, error) {
	s, err := NewBitseq(x, width)
	if err != nil {
		return "", err
	}
	return s.ToBinString(), nil
}

// Length returns the number of slots.
func (s Bitseq) Length() int {
	return s.bits
}

// ToBinString returns the zero-padded binary string representation.
func (s Bitseq) ToBinString() string {
	if s.bits == 0 {
		return ""
	}
	str := strconv.FormatUint(s.value, 2)
	if pad := s.bits - len(str); pad > 0 {
		str = strings.Repeat("0", pad) + str
	}
	return str
}

func (s Bitseq) String() string {
	return fmt.Sprintf("0b%s", s.ToBinString())
}

// IsZero returns true if no slot is hit.
func (s Bitseq) IsZero() bool {
	return s.value == 0
}

// Ones returns the number of hit slots.
func (s Bitseq) Ones() int {
	return bits.OnesCount64(s.value)
}

// Hit reports whether slot i is hit.
func (s Bitseq) Hit(i int) bool {
	if i < 0 || i >= s.bits {
		return false
	}
	return s.value&(1<<uint(s.bits-i-1)) != 0
}

// Indices returns the hit slots in ascending order.
func (s Bitseq) Indices() []int {
	var r []int
	for i := 0; i < s.bits; i++ {
		if s.Hit(i) {
			r = append(r, i)
		}
	}
	return r
}
