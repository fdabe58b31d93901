// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package drummer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"

	"drumgen/combo"
)

func TestMIDI(t *testing.T) {
	o := newOrchestrator(t, func(c *Config) { c.Unfold = 1 })
	f, err := o.Fragment(0, combo.Combination{8, 5, 15, 0})
	require.Nil(t, err)

	m := NewMIDI(o, 100)
	m.Add(f)
	assert.Equal(t, 2, m.Bars())

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.Nil(t, err)

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.Nil(t, err)
	require.Len(t, s.Tracks, 1)

	var (
		ons, offs              int
		channel, key, velocity uint8
		keys                   = make(map[uint8]int)
	)
	for _, ev := range s.Tracks[0] {
		switch {
		case ev.Message.GetNoteOn(&channel, &key, &velocity):
			ons++
			keys[key]++
			assert.Equal(t, uint8(drumChannel), channel)
		case ev.Message.GetNoteOff(&channel, &key, &velocity):
			offs++
		}
	}
	// 7 hits per bar, the bar is repeated once
	assert.Equal(t, 14, ons)
	assert.Equal(t, ons, offs)
	assert.Equal(t, map[uint8]int{42: 2, 38: 4, 36: 8}, keys)
}

func TestMIDISilentFragment(t *testing.T) {
	o := newOrchestrator(t, nil)
	f, err := o.Fragment(0, combo.Combination{0, 0, 0, 0})
	require.Nil(t, err)

	m := NewMIDI(o, 120)
	m.Add(f)
	m.Add(f)
	assert.Equal(t, 16, m.Bars())

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.Nil(t, err)
	_, err = smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.Nil(t, err)
}
