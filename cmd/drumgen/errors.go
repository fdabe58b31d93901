// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"drumgen/core"
)

type errorType int

const (
	configError   errorType = 2
	internalError errorType = 1
	noError       errorType = 0
)

type vError struct {
	typ errorType
	err error
}

func (e *vError) Error() string {
	return e.err.Error()
}

func (e *vError) Unwrap() error {
	return e.err
}

func (e *vError) Code() int {
	return int(e.typ)
}

// verror wraps err with an exit code. Errors already carrying a code keep it.
func verror(typ errorType, err error) error {
	var ve *vError
	if errors.As(err, &ve) {
		return err
	}
	return &vError{
		typ: typ,
		err: err,
	}
}

func getErrorCode(err error) int {
	if err == nil {
		return int(noError)
	}
	var ve *vError
	switch {
	case errors.As(err, &ve):
		return ve.Code()
	case errors.Is(err, core.ErrInvalidConfiguration), errors.Is(err, core.ErrValueOutOfRange):
		return int(configError)
	default:
		return int(internalError)
	}
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
