// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import "errors"

var (
	// ErrInvalidConfiguration is wrapped by every error caused by bad
	// parameters, such as an empty voice group or an odd instrument count.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrValueOutOfRange is wrapped by errors of values that do not fit
	// into the requested bit width.
	ErrValueOutOfRange = errors.New("value out of range")
)
