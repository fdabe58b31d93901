// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"drumgen/drummer"
	"drumgen/logger"
	"drumgen/tools"
)

func init() {
	var generateCmd = cobra.Command{
		Use:   "generate [flags]",
		Short: "Prints a LilyPond fragment per combination",
		Args:  cobra.NoArgs,
		RunE:  generateRun,

		DisableFlagsInUseLine: true,
	}
	rootCmd.AddCommand(&generateCmd)
}

func generateRun(cmd *cobra.Command, _ []string) error {
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
	return Generate(out, o)
}

// Generate writes the fragments of o to w, one block per combination.
func Generate(w io.Writer, o *drummer.Orchestrator) error {
	return o.Run(func(f drummer.Fragment) error {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return verror(internalError, err)
		}
		return nil
	})
}
