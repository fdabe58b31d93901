// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"drumgen/core"
)

func TestGetErrorCode(t *testing.T) {
	testCases := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{errors.New("boom"), 1},
		{verror(internalError, errors.New("boom")), 1},
		{verror(configError, errors.New("bad flag")), 2},
		{fmt.Errorf("wrapped: %w", core.ErrInvalidConfiguration), 2},
		{core.ErrValueOutOfRange, 2},
		{verror(internalError, verror(configError, errors.New("kept"))), 2},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.code, getErrorCode(tc.err))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, "", getErrorMessage(nil))
	err := verror(configError, fmt.Errorf("voice One: %w", core.ErrInvalidConfiguration))
	assert.Equal(t, "voice One: invalid configuration", getErrorMessage(err))
	assert.True(t, errors.Is(err, core.ErrInvalidConfiguration))
}
