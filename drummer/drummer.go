// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package drummer drives the generation of drum exercises. It splits the
// instruments into an upper and a lower voice, pulls combinations from a
// generator and renders each one as a LilyPond fragment, a step grid or MIDI.
package drummer

import (
	"fmt"
	"strings"

	"drumgen/combo"
	"drumgen/core"
	"drumgen/logger"
	"drumgen/notation"
)

// Group is one of the two voices of the staff.
type Group struct {
	Name        string // voice layout, "One" (stems up) or "Two" (stems down)
	Varname     string // name of the LilyPond variable holding the voice
	Instruments []int  // indices into the instrument list
}

// Fragment is the rendering of one combination.
type Fragment struct {
	Index       int // 0-based position in the run
	Combination combo.Combination
	Patterns    []core.Bitseq // one per instrument, in declaration order
	Voices      []string      // voice declarations, one per group
	Staff       string
}

// Lines returns the voice declarations followed by the staff block.
func (f Fragment) Lines() []string {
	return append(append([]string(nil), f.Voices...), f.Staff)
}

func (f Fragment) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Orchestrator renders combinations for a validated configuration.
type Orchestrator struct {
	cfg    Config
	instr  []core.Instrument
	groups []Group
}

// New validates cfg and returns an orchestrator for it.
func New(cfg Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	instr, err := core.LookupInstruments(cfg.Instruments)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		cfg:    cfg,
		instr:  instr,
		groups: splitGroups(len(instr)),
	}, nil
}

func splitGroups(n int) []Group {
	up := Group{Name: "One", Varname: "up"}
	down := Group{Name: "Two", Varname: "down"}
	for i := 0; i < n; i++ {
		if i < n/2 {
			up.Instruments = append(up.Instruments, i)
		} else {
			down.Instruments = append(down.Instruments, i)
		}
	}
	return []Group{up, down}
}

// Config returns the configuration of o.
func (o *Orchestrator) Config() Config {
	return o.cfg
}

// Groups returns the voice groups in staff order.
func (o *Orchestrator) Groups() []Group {
	return o.groups
}

// Instruments returns the resolved instruments in declaration order.
func (o *Orchestrator) Instruments() []core.Instrument {
	return o.instr
}

// Generator returns a fresh combination generator for the configuration.
func (o *Orchestrator) Generator() (combo.Generator, error) {
	return combo.New(combo.Params{
		Source:        o.cfg.Source,
		NNotes:        o.cfg.NNotes,
		NInstr:        len(o.instr),
		NCombinations: o.cfg.NCombinations,
		MaxZeros:      o.cfg.MaxZeros,
		Seed:          o.cfg.Seed,
	})
}

func (o *Orchestrator) staffVoices() []notation.StaffVoice {
	var sv []notation.StaffVoice
	for _, g := range o.groups {
		sv = append(sv, notation.StaffVoice{Group: g.Name, Varname: g.Varname})
	}
	return sv
}

// Fragment renders combination c as the index-th fragment of a run.
func (o *Orchestrator) Fragment(index int, c combo.Combination) (Fragment, error) {
	if len(c) != len(o.instr) {
		return Fragment{}, fmt.Errorf("%w: combination has %d values for %d instruments",
			core.ErrInvalidConfiguration, len(c), len(o.instr))
	}
	f := Fragment{
		Index:       index,
		Combination: c,
		Patterns:    make([]core.Bitseq, len(c)),
	}
	for i, v := range c {
		bs, err := core.NewBitseq(v, o.cfg.NNotes)
		if err != nil {
			return Fragment{}, err
		}
		f.Patterns[i] = bs
	}

	for _, g := range o.groups {
		var bv []notation.BitVoice
		for _, idx := range g.Instruments {
			bv = append(bv, notation.BitVoice{
				Label: o.instr[idx].Name,
				Bits:  f.Patterns[idx].ToBinString(),
			})
		}
		notes, err := notation.BitVoicesToNotes(bv, o.cfg.NoteValue)
		if err != nil {
			return Fragment{}, fmt.Errorf("voice %s: %w", g.Name, err)
		}
		f.Voices = append(f.Voices, notation.DrumVoice(g.Varname, unfold(notes, o.cfg.Unfold)))
	}
	f.Staff = notation.DrumStaff(o.staffVoices(), []string{notation.Mark(index + 1)})
	return f, nil
}

// unfold writes the bar n times, the duration suffix included.
func unfold(notes []string, n int) []string {
	r := make([]string, 0, len(notes)*n)
	for i := 0; i < n; i++ {
		r = append(r, notes...)
	}
	return r
}

// Run renders every combination of a fresh generator and passes the
// fragments to emit in order. It stops at the first error.
func (o *Orchestrator) Run(emit func(Fragment) error) error {
	g, err := o.Generator()
	if err != nil {
		return err
	}
	logger.Infof("generating %v combinations of %v", o.cfg.Source, o.cfg.Instruments)
	if o.cfg.Source == combo.Random && o.cfg.NCombinations == 0 {
		logger.Warn("random source with 0 combinations draws nothing")
	}
	i := 0
	for c, ok := g.Next(); ok; c, ok = g.Next() {
		f, err := o.Fragment(i, c)
		if err != nil {
			return err
		}
		logger.Debugf("fragment %d: %v", i+1, f.Patterns)
		if err := emit(f); err != nil {
			return err
		}
		i++
	}
	logger.Info("== STATS =====================================")
	logger.Info(g.Stats())
	return nil
}
