// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"drumgen/drummer"
	"drumgen/logger"
	"drumgen/tools"
)

var midiFlags = struct {
	bpm float64
}{}

func init() {
	var midiCmd = cobra.Command{
		Use:   "midi [flags]",
		Short: "Writes all combinations as a Standard MIDI File",
		Args:  cobra.NoArgs,
		RunE:  midiRun,

		DisableFlagsInUseLine: true,
	}
	midiCmd.Flags().Float64Var(&midiFlags.bpm, "bpm", 100, "tempo in quarter notes per minute")
	rootCmd.AddCommand(&midiCmd)
}

func midiRun(cmd *cobra.Command, _ []string) error {
	o, err := newOrchestrator(cmd.Flags())
	if err != nil {
		return err
	}
	if midiFlags.bpm <= 0 {
		return verror(configError, fmt.Errorf("invalid tempo %v", midiFlags.bpm))
	}
	m, err := BuildMIDI(o, midiFlags.bpm)
	if err != nil {
		return err
	}
	logger.Infof("writing %d bars", m.Bars())
	if err := tools.Dump(m, rootFlags.outputFn); err != nil {
		return verror(internalError, err)
	}
	return nil
}

// BuildMIDI collects every fragment of o into one MIDI file.
func BuildMIDI(o *drummer.Orchestrator, bpm float64) (*drummer.MIDI, error) {
	m := drummer.NewMIDI(o, bpm)
	if err := o.Run(func(f drummer.Fragment) error {
		m.Add(f)
		return nil
	}); err != nil {
		return nil, err
	}
	return m, nil
}
