// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrumVoice(t *testing.T) {
	assert.Equal(t,
		`up = \repeat volta 2 \drummode { <hh sn>4 hh r sn }`,
		DrumVoice("up", []string{"<hh sn>4", "hh", "r", "sn"}))
}

func TestDrumStaff(t *testing.T) {
	voices := []StaffVoice{{"One", "up"}, {"Two", "down"}}
	out := DrumStaff(voices, []string{Mark(1)})
	expected := `\new DrumStaff <<
  \mark "1."
  \new DrumVoice { \voiceOne \up }
  \new DrumVoice { \voiceTwo \down }
>>`
	assert.Equal(t, expected, out)
}

func TestDrumStaffShape(t *testing.T) {
	testCases := []struct {
		voices     []StaffVoice
		directives []string
	}{
		{nil, nil},
		{[]StaffVoice{{"One", "up"}}, nil},
		{nil, []string{Mark(3), `\tempo 4 = 90`}},
		{[]StaffVoice{{"One", "up"}, {"Two", "down"}}, []string{Mark(12)}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			out := DrumStaff(tc.voices, tc.directives)
			lines := strings.Split(out, "\n")
			assert.True(t, strings.HasPrefix(out, `\new DrumStaff <<`))
			assert.True(t, strings.HasSuffix(out, ">>"))
			assert.Len(t, lines, len(tc.voices)+len(tc.directives)+2)
		})
	}
}

func TestMark(t *testing.T) {
	assert.Equal(t, `\mark "42."`, Mark(42))
}
