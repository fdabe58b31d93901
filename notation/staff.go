// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"strings"
)

// RepeatTimes is how often a voice is played back.
const RepeatTimes = 2

const (
	staffOpen  = `\new DrumStaff <<`
	staffClose = `>>`
	indent     = "  "
)

// StaffVoice references a rendered voice variable from a staff. Group selects
// the voice layout, eg, "One" for stems up.
type StaffVoice struct {
	Group   string
	Varname string
}

// DrumVoice renders a voice declaration repeated RepeatTimes.
func DrumVoice(varname string, notes []string) string {
	return fmt.Sprintf(`%s = \repeat volta %d \drummode { %s }`,
		varname, RepeatTimes, strings.Join(notes, " "))
}

// DrumStaff renders a staff with the directives first and one line per voice.
func DrumStaff(voices []StaffVoice, directives []string) string {
	parts := make([]string, 0, len(voices)+len(directives)+2)
	parts = append(parts, staffOpen)
	for _, d := range directives {
		parts = append(parts, indent+d)
	}
	for _, v := range voices {
		parts = append(parts, fmt.Sprintf(`%s\new DrumVoice { \voice%s \%s }`, indent, v.Group, v.Varname))
	}
	parts = append(parts, staffClose)
	return strings.Join(parts, "\n")
}

// Mark returns a rehearsal mark directive labelled "<index>.".
func Mark(index int) string {
	return fmt.Sprintf(`\mark "%d."`, index)
}
