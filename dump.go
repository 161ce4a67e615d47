// This file is part of EuroPC.
//
// EuroPC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EuroPC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EuroPC.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/europc/hardware/jim"
	"github.com/jetsetilly/europc/hardware/video"
)

type dumpStyles struct {
	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	data   lipgloss.Style
	video  lipgloss.Style
	box    lipgloss.Style
}

func newDumpStyles(plain bool) dumpStyles {
	if plain {
		return dumpStyles{
			title:  lipgloss.NewStyle(),
			header: lipgloss.NewStyle(),
			label:  lipgloss.NewStyle(),
			data:   lipgloss.NewStyle(),
			video:  lipgloss.NewStyle(),
			box:    lipgloss.NewStyle(),
		}
	}
	return dumpStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		header: lipgloss.NewStyle().Faint(true),
		label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		data:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		video:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// the adapters that are given the video code by the chip
func adaptersForCode(code uint8) string {
	var s []string
	for _, n := range video.AdapterList {
		a, _ := video.ParseAdapter(n)
		if jim.VideoCode(a) == code {
			s = append(s, a.String())
		}
	}
	if len(s) == 0 {
		return "unknown"
	}
	return strings.Join(s, ", ")
}

// renderNVRAM returns the contents of a JIM nvram file as a table.
func renderNVRAM(pth string, config [jim.BlockSize]uint8, rtc [jim.BlockSize]uint8, plain bool) string {
	st := newDumpStyles(plain)

	row := func(label string, block [jim.BlockSize]uint8) string {
		var s strings.Builder
		s.WriteString(st.label.Render(fmt.Sprintf("%-7s", label)))
		for _, v := range block {
			s.WriteString(" ")
			s.WriteString(st.data.Render(fmt.Sprintf("%02x", v)))
		}
		return s.String()
	}

	var hdr strings.Builder
	hdr.WriteString(strings.Repeat(" ", 7))
	for i := range jim.BlockSize {
		hdr.WriteString(fmt.Sprintf("  %x", i))
	}

	// the chip writes the same code to both the video byte and the checksum
	// byte. the video byte is the one that matters
	code := rtc[0x0b]
	vid := st.video.Render(fmt.Sprintf("video %02x (%s)", code, adaptersForCode(code)))

	table := lipgloss.JoinVertical(lipgloss.Left,
		st.header.Render(hdr.String()),
		row("config", config),
		row("rtc", rtc),
		"",
		vid,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(pth),
		st.box.Render(table),
	)
}
