// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in  string
		out Level
	}{
		{"ERROR", ERROR},
		{"warn", WARN},
		{"Info", INFO},
		{"DEBUG", DEBUG},
		{"bogus", ERROR},
		{"", ERROR},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.out, ParseLevel(tc.in))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	defer SetLevel(GetLevel())

	SetLevel(WARN)
	Debug("hidden")
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	Error("shown", 3)

	assert.Equal(t, "warn: shown 2\nerror: shown 3\n", buf.String())
}

func TestQuiet(t *testing.T) {
	SetOutput(nil)
	defer SetLevel(GetLevel())
	SetLevel(DEBUG)
	assert.NotPanics(t, func() {
		Debugf("nothing %v", "here")
		Error("nothing")
	})
}
