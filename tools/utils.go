// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"fmt"
	"io"
	"os"

	"drumgen/logger"
)

const fileMode = 0600

// stdout keeps the descriptor of os.Stdout visible but never closes it.
type stdout struct {
	*os.File
}

func (stdout) Close() error { return nil }

// OpenOutput returns a writer for fn. An empty fn or "-" selects stdout,
// which is never closed by the returned Close. The writer has an Fd method
// in both cases.
func OpenOutput(fn string) (io.WriteCloser, error) {
	if fn == "" || fn == "-" {
		return stdout{os.Stdout}, nil
	}
	logger.Debugf("Open output file '%s'", fn)
	f, err := os.OpenFile(fn, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return nil, fmt.Errorf("could not create '%v': %v", fn, err)
	}
	return f, nil
}

// Dump writes the output of wt to fn.
func Dump(wt io.WriterTo, fn string) error {
	out, err := OpenOutput(fn)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	_, err = wt.WriteTo(out)
	return err
}

// FileExists returns nil if a file exists otherwise an error
func FileExists(fn string) error {
	if _, err := os.Stat(fn); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", fn)
	}
	return nil
}
