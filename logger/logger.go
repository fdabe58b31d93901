// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger implements a simple leveled logger. Log output goes to
// stderr by default so that generated notation on stdout stays clean.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Level represents the amount of detail in which the log is output.
type Level int

const (
	// ERROR only log errors
	ERROR Level = iota
	// WARN only log warnings and errors
	WARN
	// INFO log information, warnings and errors
	INFO
	// DEBUG log as much as possible
	DEBUG
)

var levelNames = map[string]Level{
	"ERROR": ERROR,
	"WARN":  WARN,
	"INFO":  INFO,
	"DEBUG": DEBUG,
}

// ParseLevel returns the level named by s. Unknown names map to ERROR.
func ParseLevel(s string) Level {
	if l, ok := levelNames[strings.ToUpper(s)]; ok {
		return l
	}
	return ERROR
}

var (
	out   *bufio.Writer
	level Level
)

func init() {
	out = bufio.NewWriter(os.Stderr)
}

// SetOutput sets the writer to which the log is sent.
// If w is nil, no output is shown.
func SetOutput(w io.Writer) {
	if w == nil {
		out = nil
		return
	}
	out = bufio.NewWriter(w)
}

// SetLevel reconfigures the level of the logger.
func SetLevel(l Level) {
	level = l
}

// GetLevel returns the current level.
func GetLevel() Level {
	return level
}

// Error works as fmt.Println.
func Error(args ...any) {
	if level < ERROR {
		return
	}
	logln("error:", args...)
}

// Errorf works as fmt.Printf, but it adds a newline at the end of the format string.
func Errorf(format string, args ...any) {
	if level < ERROR {
		return
	}
	logf("error: "+format, args...)
}

// Warn works as fmt.Println when level is at least WARN.
func Warn(args ...any) {
	if level < WARN {
		return
	}
	logln("warn:", args...)
}

// Warnf works as fmt.Printf when level is at least WARN. It adds a newline at the end of the format string.
func Warnf(format string, args ...any) {
	if level < WARN {
		return
	}
	logf("warn: "+format, args...)
}

// Info works as fmt.Println when level is at least INFO.
func Info(args ...any) {
	if level < INFO {
		return
	}
	logln("", args...)
}

// Infof works as fmt.Printf when level is at least INFO. It adds a newline at the end of the format string.
func Infof(format string, args ...any) {
	if level < INFO {
		return
	}
	logf(format, args...)
}

// Debug works as fmt.Println when level is DEBUG.
func Debug(args ...any) {
	if level < DEBUG {
		return
	}
	logln("debug:", args...)
}

// Debugf works as fmt.Printf when level is DEBUG. It adds a newline at the end of the format string.
func Debugf(format string, args ...any) {
	if level < DEBUG {
		return
	}
	logf("debug: "+format, args...)
}

func logln(prefix string, args ...any) {
	if out == nil {
		return
	}
	if prefix != "" {
		args = append([]any{prefix}, args...)
	}
	// errors writing the log are not reported anywhere else
	_, _ = fmt.Fprintln(out, args...)
	_ = out.Flush()
}

func logf(format string, args ...any) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, format, args...)
	if !strings.HasSuffix(format, "\n") {
		_, _ = fmt.Fprintln(out)
	}
	_ = out.Flush()
}
