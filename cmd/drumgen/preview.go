// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"drumgen/drummer"
	"drumgen/logger"
	"drumgen/tools"
)

var previewFlags = struct {
	color string
}{}

func init() {
	var previewCmd = cobra.Command{
		Use:   "preview [flags]",
		Short: "Prints a step grid per combination",
		Args:  cobra.NoArgs,
		RunE:  previewRun,

		DisableFlagsInUseLine: true,
	}
	previewCmd.Flags().StringVar(&previewFlags.color, "color", "auto", "color hits (auto|always|never)")
	rootCmd.AddCommand(&previewCmd)
}

// useColor decides on coloring for output w. In auto mode only terminals
// get colors.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(interface{ Fd() uintptr })
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, verror(configError, fmt.Errorf("unknown color mode %q", mode))
	}
}

func previewRun(cmd *cobra.Command, _ []string) error {
	o, err := newOrchestrator(cmd.Flags())
	if err != nil {
		return err
	}
	out, err := tools.OpenOutput(rootFlags.outputFn)
	if err != nil {
		return verror(internalError, err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	colored, err := useColor(previewFlags.color, out)
	if err != nil {
		return err
	}
	return Preview(out, o, colored)
}

// Preview writes a step grid of every fragment of o to w.
func Preview(w io.Writer, o *drummer.Orchestrator, colored bool) error {
	p := drummer.NewPreview(o, colored)
	return o.Run(func(f drummer.Fragment) error {
		if _, err := fmt.Fprintln(w, p.Render(f)); err != nil {
			return verror(internalError, err)
		}
		return nil
	})
}
