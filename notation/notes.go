// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package notation renders rhythmic bit patterns as LilyPond drummode text:
// tokens for rests, single notes and chords, voice declarations and drum
// staff blocks.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"drumgen/core"
)

// Rest is the token of a slot that no instrument hits.
const Rest = "r"

// BitVoice is the bit string of one instrument.
type BitVoice struct {
	Label string
	Bits  string
}

// withDuration appends the duration to the first token. All other tokens
// inherit it in drummode.
func withDuration(notes []string, duration int) []string {
	if len(notes) > 0 {
		notes[0] += strconv.Itoa(duration)
	}
	return notes
}

// BitsToNotes renders a single bit string: '0' is a rest, anything else
// the label.
func BitsToNotes(bits, label string, duration int) []string {
	notes := make([]string, 0, len(bits))
	for _, b := range bits {
		if b == '0' {
			notes = append(notes, Rest)
		} else {
			notes = append(notes, label)
		}
	}
	return withDuration(notes, duration)
}

// BitVoicesToNotes combines several equal-length bit strings into one token
// sequence. Instruments hit in the same slot form a chord whose labels keep
// the order of voices.
func BitVoicesToNotes(voices []BitVoice, duration int) ([]string, error) {
	if len(voices) == 0 {
		return nil, fmt.Errorf("%w: voice group is empty", core.ErrInvalidConfiguration)
	}
	n := len(voices[0].Bits)
	for _, v := range voices[1:] {
		if len(v.Bits) != n {
			return nil, fmt.Errorf("%w: bit string of %s has length %d, expected %d",
				core.ErrInvalidConfiguration, v.Label, len(v.Bits), n)
		}
	}

	notes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var hit []string
		for _, v := range voices {
			if v.Bits[i] == '1' {
				hit = append(hit, v.Label)
			}
		}
		switch len(hit) {
		case 0:
			notes = append(notes, Rest)
		case 1:
			notes = append(notes, hit[0])
		default:
			notes = append(notes, "<"+strings.Join(hit, " ")+">")
		}
	}
	return withDuration(notes, duration), nil
}
