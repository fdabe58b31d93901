// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvDefault(t *testing.T) {
	RegEnv("DRUMGEN_TEST_DEFAULT", "hh,sn", "test variable")
	assert.Equal(t, "hh,sn", GetEnv("DRUMGEN_TEST_DEFAULT"))
	assert.Equal(t, []string{"hh", "sn"}, GetEnvList("DRUMGEN_TEST_DEFAULT"))
}

func TestGetEnvOverride(t *testing.T) {
	RegEnv("DRUMGEN_TEST_OVERRIDE", "4", "test variable")
	t.Setenv("DRUMGEN_TEST_OVERRIDE", "8")
	assert.Equal(t, "8", GetEnv("DRUMGEN_TEST_OVERRIDE"))
}

func TestGetEnvUnregistered(t *testing.T) {
	t.Setenv("DRUMGEN_TEST_UNREGISTERED", "x")
	assert.Equal(t, "", GetEnv("DRUMGEN_TEST_UNREGISTERED"))
}

func TestGetEnvvarsSorted(t *testing.T) {
	RegEnv("DRUMGEN_TEST_B", "", "")
	RegEnv("DRUMGEN_TEST_A", "", "")
	var names []string
	for _, ev := range GetEnvvars() {
		names = append(names, ev.Name)
	}
	assert.IsIncreasing(t, names)
}
