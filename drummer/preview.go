// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package drummer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	hitStep  = "x"
	restStep = "-"
	beat     = 4 // slots between grid separators
)

// Preview renders fragments as text step grids, one row per instrument.
type Preview struct {
	o      *Orchestrator
	colors []*color.Color // one per group
	width  int
}

// NewPreview returns a preview for fragments of o. Hits of the upper voice
// are cyan and hits of the lower voice yellow when colored is set.
func NewPreview(o *Orchestrator, colored bool) *Preview {
	p := &Preview{
		o: o,
		colors: []*color.Color{
			color.New(color.FgCyan, color.Bold),
			color.New(color.FgYellow, color.Bold),
		},
	}
	for _, c := range p.colors {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for _, in := range o.Instruments() {
		if len(in.Name) > p.width {
			p.width = len(in.Name)
		}
	}
	return p
}

// Render returns the grid of fragment f.
func (p *Preview) Render(f Fragment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %v\n", f.Index+1, f.Combination)
	for gi, g := range p.o.Groups() {
		hit := p.colors[gi%len(p.colors)].SprintFunc()
		for _, idx := range g.Instruments {
			fmt.Fprintf(&b, "%-*s ", p.width, p.o.instr[idx].Name)
			pat := f.Patterns[idx]
			for i := 0; i < pat.Length(); i++ {
				if i%beat == 0 {
					b.WriteString("|")
				}
				if pat.Hit(i) {
					b.WriteString(hit(hitStep))
				} else {
					b.WriteString(restStep)
				}
			}
			b.WriteString("|\n")
		}
	}
	return b.String()
}
