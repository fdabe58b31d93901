// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the drumgen program. It generates LilyPond drum exercises
// from bit-pattern combinations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drumgen/core"
	"drumgen/logger"
	"drumgen/tools"
)

var rootCmd = cobra.Command{
	Use:           "drumgen",
	Short:         "Generates drum notation exercises",
	Long:          "",
	SilenceUsage:  true,
	SilenceErrors: true,

	TraverseChildren: true,
	RunE:             generateRun,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(logger.ParseLevel(rootFlags.log))
		if rootFlags.debug {
			logger.SetLevel(logger.DEBUG)
		}
		if rootFlags.quiet {
			logger.SetOutput(nil)
		}
	},
}

var rootFlags struct {
	log      string
	debug    bool
	quiet    bool
	config   string
	outputFn string
}

var genFlags genOptions

func init() {
	registerEnv()

	helpMessage :=
		`drumgen -- enumerate drum patterns and print them as LilyPond fragments

Without a command, drumgen runs "generate".`

	helpMessage += "\n\nInstruments (short and long drummode name, MIDI key):"
	for _, in := range core.Instruments() {
		helpMessage += fmt.Sprintf("\n  %-6s %-18s %d", in.Name, in.Long, in.Key)
	}

	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", tools.GetEnv("DRUMGEN_LOG"), "log level (ERROR|WARN|INFO|DEBUG)")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "do not produce log output")
	flags.StringVarP(&rootFlags.config, "config", "c", tools.GetEnv("DRUMGEN_CONFIG"), "YAML configuration file")
	flags.StringVarP(&rootFlags.outputFn, "output", "o", "", "output file (default stdout)")
	addGenFlags(flags, &genFlags)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var (
			code = getErrorCode(err)
			msg  = getErrorMessage(err)
		)
		if msg != "" {
			logger.Error(msg)
		}
		os.Exit(code)
	}
}
