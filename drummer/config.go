// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package drummer

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/jinzhu/copier"

	"drumgen/combo"
	"drumgen/core"
	"drumgen/tools"
)

// Config holds every parameter of a generation run.
type Config struct {
	Instruments   []string     // drummode names; first half goes up, second half down
	NNotes        int          // slots per bar
	NoteValue     int          // duration denominator of a slot, eg, 8 for eighths
	Source        combo.Source // exhaustive or random combinations
	NCombinations int          // number of fragments; 0 enumerates all permutations
	MaxZeros      int          // maximum number of silent instruments per fragment
	Seed          int64        // random seed, 0 picks one from the clock
	Unfold        int          // times the bar is written out inside a voice
}

// DefaultConfig returns the configuration of the classic four-piece
// hihat/snare/bassdrum/pedal exercise in 4/4.
func DefaultConfig() Config {
	return Config{
		Instruments: []string{"hh", "sn", "bd", "hhp"},
		NNotes:      4,
		NoteValue:   4,
		Source:      combo.Permutation,
		MaxZeros:    4,
		Seed:        1,
		Unfold:      4,
	}
}

// Validate checks the configuration, all errors wrap core.ErrInvalidConfiguration.
func (c Config) Validate() error {
	n := len(c.Instruments)
	switch {
	case n == 0:
		return fmt.Errorf("%w: no instruments", core.ErrInvalidConfiguration)
	case n%2 != 0:
		return fmt.Errorf("%w: odd number of instruments (%d) cannot be split into two voices",
			core.ErrInvalidConfiguration, n)
	case c.NNotes < 1 || c.NNotes > combo.MaxNotes:
		return fmt.Errorf("%w: number of notes %d not in [1, %d]", core.ErrInvalidConfiguration, c.NNotes, combo.MaxNotes)
	case !validNoteValue(c.NoteValue):
		return fmt.Errorf("%w: note value %d is not a power of two in [1, %d]",
			core.ErrInvalidConfiguration, c.NoteValue, maxNoteValue)
	case c.MaxZeros < 0:
		return fmt.Errorf("%w: max zeros must not be negative", core.ErrInvalidConfiguration)
	case c.Unfold < 1:
		return fmt.Errorf("%w: unfold must be at least 1", core.ErrInvalidConfiguration)
	case c.Source == combo.Random && c.NCombinations < 0:
		return fmt.Errorf("%w: random source needs a non-negative number of combinations",
			core.ErrInvalidConfiguration)
	}
	seen := make(map[string]bool)
	for _, name := range c.Instruments {
		in, err := core.LookupInstrument(name)
		if err != nil {
			return err
		}
		if seen[in.Name] {
			return fmt.Errorf("%w: duplicate instrument %q", core.ErrInvalidConfiguration, name)
		}
		seen[in.Name] = true
	}
	return nil
}

const maxNoteValue = 128

func validNoteValue(v int) bool {
	return v >= 1 && v <= maxNoteValue && v&(v-1) == 0
}

// FileConfig is the YAML representation of Config. Unset keys keep the value
// of the configuration the file is applied to.
type FileConfig struct {
	Instruments   []string `yaml:"instruments"`
	NNotes        *int     `yaml:"notes"`
	NoteValue     *int     `yaml:"note_value"`
	SourceName    *string  `yaml:"source"`
	NCombinations *int     `yaml:"combinations"`
	MaxZeros      *int     `yaml:"max_zeros"`
	Seed          *int64   `yaml:"seed"`
	Unfold        *int     `yaml:"unfold"`
}

// Apply overlays the keys set in fc onto base.
func (fc FileConfig) Apply(base Config) (Config, error) {
	cfg := base
	cfg.Instruments = append([]string(nil), base.Instruments...)
	if err := copier.CopyWithOption(&cfg, &fc, copier.Option{IgnoreEmpty: true}); err != nil {
		return base, fmt.Errorf("could not apply config: %v", err)
	}
	if fc.SourceName != nil {
		s, err := combo.ParseSource(*fc.SourceName)
		if err != nil {
			return base, err
		}
		cfg.Source = s
	}
	return cfg, nil
}

// ParseConfig decodes YAML data and applies it to base. Unknown keys are
// rejected.
func ParseConfig(data []byte, base Config) (Config, error) {
	var fc FileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.DisallowUnknownField()); err != nil {
		return base, fmt.Errorf("%w: %v", core.ErrInvalidConfiguration, err)
	}
	return fc.Apply(base)
}

// LoadConfig reads the YAML file fn and applies it to base.
func LoadConfig(fn string, base Config) (Config, error) {
	if err := tools.FileExists(fn); err != nil {
		return base, fmt.Errorf("%w: %v", core.ErrInvalidConfiguration, err)
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		return base, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", fn, err)
	}
	return cfg, nil
}
