// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package drummer

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"drumgen/notation"
)

const (
	// ticks per quarter note
	resolution = 960
	// General MIDI percussion channel (10, 0-based)
	drumChannel = 9
	velocity    = 100
)

// MIDI collects fragments into a single-track Standard MIDI File. Each
// fragment is played as written in its voices: the unfolded bar, repeated.
type MIDI struct {
	o       *Orchestrator
	bpm     float64
	track   smf.Track
	pending uint32 // ticks since the last event
	bars    int
}

// NewMIDI returns an empty file for fragments of o at the given tempo.
func NewMIDI(o *Orchestrator, bpm float64) *MIDI {
	m := &MIDI{o: o, bpm: bpm}
	cfg := o.Config()
	m.track.Add(0, smf.MetaMeter(uint8(cfg.NNotes), uint8(cfg.NoteValue)))
	m.track.Add(0, smf.MetaTempo(bpm))
	return m
}

func (m *MIDI) slotTicks() uint32 {
	return 4 * resolution / uint32(m.o.Config().NoteValue)
}

// Add appends fragment f.
func (m *MIDI) Add(f Fragment) {
	var (
		cfg   = m.o.Config()
		slot  = m.slotTicks()
		gate  = slot / 2
		times = cfg.Unfold * notation.RepeatTimes
	)
	for r := 0; r < times; r++ {
		for i := 0; i < cfg.NNotes; i++ {
			var keys []uint8
			for idx, p := range f.Patterns {
				if p.Hit(i) {
					keys = append(keys, m.o.instr[idx].Key)
				}
			}
			if len(keys) == 0 {
				m.pending += slot
				continue
			}
			for j, k := range keys {
				if j == 0 {
					m.track.Add(m.pending, midi.NoteOn(drumChannel, k, velocity))
					continue
				}
				m.track.Add(0, midi.NoteOn(drumChannel, k, velocity))
			}
			for j, k := range keys {
				if j == 0 {
					m.track.Add(gate, midi.NoteOff(drumChannel, k))
					continue
				}
				m.track.Add(0, midi.NoteOff(drumChannel, k))
			}
			m.pending = slot - gate
		}
		m.bars++
	}
}

// Bars returns the number of bars added so far.
func (m *MIDI) Bars() int {
	return m.bars
}

// WriteTo writes the file to w. Further calls to Add are not allowed.
func (m *MIDI) WriteTo(w io.Writer) (int64, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(resolution)
	m.track.Close(m.pending)
	if err := s.Add(m.track); err != nil {
		return 0, fmt.Errorf("could not add track: %v", err)
	}
	return s.WriteTo(w)
}
