// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// Instrument is a percussion instrument known by its LilyPond drummode name.
type Instrument struct {
	Name string // short drummode name, eg, "sn"
	Long string // long drummode name, eg, "snare"
	Key  uint8  // General MIDI percussion key
}

func (i Instrument) String() string {
	return i.Name
}

var instruments = []Instrument{
	{"bda", "acousticbassdrum", 35},
	{"bd", "bassdrum", 36},
	{"ss", "sidestick", 37},
	{"sna", "acousticsnare", 38},
	{"sn", "snare", 38},
	{"hc", "handclap", 39},
	{"sne", "electricsnare", 40},
	{"tomfl", "lowfloortom", 41},
	{"hh", "hihat", 42},
	{"hhc", "closedhihat", 42},
	{"tomfh", "highfloortom", 43},
	{"hhp", "pedalhihat", 44},
	{"toml", "lowtom", 45},
	{"hho", "openhihat", 46},
	{"tomml", "lowmidtom", 47},
	{"tommh", "highmidtom", 48},
	{"cymc", "crashcymbal", 49},
	{"tomh", "hightom", 50},
	{"cymr", "ridecymbal", 51},
	{"cymch", "chinesecymbal", 52},
	{"rb", "ridebell", 53},
	{"tamb", "tambourine", 54},
	{"cyms", "splashcymbal", 55},
	{"cb", "cowbell", 56},
	{"cymcb", "crashcymbalb", 57},
	{"vibs", "vibraslap", 58},
	{"cymrb", "ridecymbalb", 59},
	{"boh", "hibongo", 60},
	{"bol", "lobongo", 61},
	{"cghm", "mutehiconga", 62},
	{"cgho", "openhiconga", 63},
	{"cgl", "loconga", 64},
	{"timh", "hitimbale", 65},
	{"timl", "lotimbale", 66},
	{"cab", "cabasa", 69},
	{"mar", "maracas", 70},
	{"cl", "claves", 75},
}

// LookupInstrument finds an instrument by its short or long drummode name.
func LookupInstrument(name string) (Instrument, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, in := range instruments {
		if in.Name == n || in.Long == n {
			return in, nil
		}
	}
	return Instrument{}, fmt.Errorf("%w: unknown instrument %q", ErrInvalidConfiguration, name)
}

// LookupInstruments resolves a list of names keeping their order.
func LookupInstruments(names []string) ([]Instrument, error) {
	r := make([]Instrument, 0, len(names))
	for _, n := range names {
		in, err := LookupInstrument(n)
		if err != nil {
			return nil, err
		}
		r = append(r, in)
	}
	return r, nil
}

// Instruments returns all known instruments ordered by MIDI key.
func Instruments() []Instrument {
	r := make([]Instrument, len(instruments))
	copy(r, instruments)
	return r
}
