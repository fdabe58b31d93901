// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupInstrument(t *testing.T) {
	hh, err := LookupInstrument("hh")
	assert.Nil(t, err)
	assert.Equal(t, uint8(42), hh.Key)

	sn, err := LookupInstrument("snare")
	assert.Nil(t, err)
	assert.Equal(t, "sn", sn.Name)

	_, err = LookupInstrument("kazoo")
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestLookupInstrumentsOrder(t *testing.T) {
	ins, err := LookupInstruments([]string{"hh", "sn", "bd", "hhp"})
	assert.Nil(t, err)
	var names []string
	for _, in := range ins {
		names = append(names, in.String())
	}
	assert.Equal(t, []string{"hh", "sn", "bd", "hhp"}, names)
}

func TestInstrumentsSortedByKey(t *testing.T) {
	var keys []uint8
	for _, in := range Instruments() {
		keys = append(keys, in.Key)
	}
	assert.IsNonDecreasing(t, keys)
}
