// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"drumgen/combo"
	"drumgen/core"
	"drumgen/drummer"
	"drumgen/logger"
	"drumgen/tools"
)

func registerEnv() {
	d := drummer.DefaultConfig()
	tools.RegEnv("DRUMGEN_LOG", "ERROR", "Default log level")
	tools.RegEnv("DRUMGEN_CONFIG", "", "Default YAML configuration file")
	tools.RegEnv("DRUMGEN_INSTRUMENTS", strings.Join(d.Instruments, ","),
		"Default instruments, the first half forms the upper voice")
	tools.RegEnv("DRUMGEN_NOTES", strconv.Itoa(d.NNotes), "Default number of notes per bar")
	tools.RegEnv("DRUMGEN_NOTE_VALUE", strconv.Itoa(d.NoteValue), "Default note value, eg, 8 for eighths")
	tools.RegEnv("DRUMGEN_SOURCE", strings.ToLower(d.Source.String()), "Default combination source (permutation|random)")
}

// envInt returns the registered integer variable. If it does not parse, def
// is returned together with the error.
func envInt(name string, def int) (int, error) {
	v, err := strconv.Atoi(tools.GetEnv(name))
	if err != nil {
		return def, fmt.Errorf("%w: %s: %v", core.ErrInvalidConfiguration, name, err)
	}
	return v, nil
}

type genOptions struct {
	instruments  []string
	notes        int
	noteValue    int
	source       string
	combinations int
	maxZeros     int
	seed         int64
	unfold       int

	// envErr holds malformed environment defaults, reported when the
	// configuration is resolved.
	envErr error
}

func addGenFlags(flags *pflag.FlagSet, o *genOptions) {
	d := drummer.DefaultConfig()
	notes, errNotes := envInt("DRUMGEN_NOTES", d.NNotes)
	noteValue, errNoteValue := envInt("DRUMGEN_NOTE_VALUE", d.NoteValue)
	o.envErr = errors.Join(errNotes, errNoteValue)

	flags.StringSliceVarP(&o.instruments, "instruments", "i", tools.GetEnvList("DRUMGEN_INSTRUMENTS"),
		"instruments in drummode names, even count")
	flags.IntVarP(&o.notes, "notes", "n", notes, "notes per bar")
	flags.IntVar(&o.noteValue, "note-value", noteValue, "duration of one note, eg, 8 for eighths")
	flags.StringVarP(&o.source, "source", "s", tools.GetEnv("DRUMGEN_SOURCE"), "combination source (permutation|random)")
	flags.IntVarP(&o.combinations, "combinations", "k", d.NCombinations, "number of combinations (0 enumerates all permutations)")
	flags.IntVar(&o.maxZeros, "max-zeros", d.MaxZeros, "maximum number of silent instruments")
	flags.Int64Var(&o.seed, "seed", d.Seed, "random seed (0 picks one from the clock)")
	flags.IntVar(&o.unfold, "unfold", d.Unfold, "times a bar is written out per voice")
}

// config returns the configuration given by the flag values alone.
func (o *genOptions) config() (drummer.Config, error) {
	src, err := combo.ParseSource(o.source)
	if err != nil {
		return drummer.Config{}, err
	}
	return drummer.Config{
		Instruments:   append([]string(nil), o.instruments...),
		NNotes:        o.notes,
		NoteValue:     o.noteValue,
		Source:        src,
		NCombinations: o.combinations,
		MaxZeros:      o.maxZeros,
		Seed:          o.seed,
		Unfold:        o.unfold,
	}, nil
}

// applyChanged overwrites cfg with the flags set on the command line.
func (o *genOptions) applyChanged(flags *pflag.FlagSet, cfg *drummer.Config) error {
	set := func(name string, f func()) {
		if flags.Changed(name) {
			f()
		}
	}
	set("instruments", func() { cfg.Instruments = append([]string(nil), o.instruments...) })
	set("notes", func() { cfg.NNotes = o.notes })
	set("note-value", func() { cfg.NoteValue = o.noteValue })
	set("combinations", func() { cfg.NCombinations = o.combinations })
	set("max-zeros", func() { cfg.MaxZeros = o.maxZeros })
	set("seed", func() { cfg.Seed = o.seed })
	set("unfold", func() { cfg.Unfold = o.unfold })
	if flags.Changed("source") {
		src, err := combo.ParseSource(o.source)
		if err != nil {
			return err
		}
		cfg.Source = src
	}
	return nil
}

// resolveConfig merges, in increasing priority, the defaults, environment
// variables, the configuration file fn and the flags set on the command line.
func resolveConfig(flags *pflag.FlagSet, o *genOptions, fn string) (drummer.Config, error) {
	if o.envErr != nil {
		return drummer.Config{}, verror(configError, o.envErr)
	}
	cfg, err := o.config()
	if err != nil {
		return cfg, verror(configError, err)
	}
	if fn != "" {
		if cfg, err = drummer.LoadConfig(fn, cfg); err != nil {
			return cfg, verror(configError, err)
		}
		if err := o.applyChanged(flags, &cfg); err != nil {
			return cfg, verror(configError, err)
		}
	}
	logger.Debugf("config: %+v", cfg)
	return cfg, nil
}

func newOrchestrator(flags *pflag.FlagSet) (*drummer.Orchestrator, error) {
	cfg, err := resolveConfig(flags, &genFlags, rootFlags.config)
	if err != nil {
		return nil, err
	}
	o, err := drummer.New(cfg)
	if err != nil {
		return nil, verror(configError, err)
	}
	return o, nil
}
