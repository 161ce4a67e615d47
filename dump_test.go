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
	"strings"
	"testing"

	"github.com/jetsetilly/europc/hardware/jim"
	"github.com/jetsetilly/europc/test"
)

func TestAdaptersForCode(t *testing.T) {
	test.ExpectEquality(t, adaptersForCode(0x12), "CGA, COLORPLUS")
	test.ExpectEquality(t, adaptersForCode(0x03), "MDA, HERCULES, INCOLOR")
	test.ExpectEquality(t, adaptersForCode(0x10), "EGA, VGA, OTHER")
	test.ExpectEquality(t, adaptersForCode(0x00), "unknown")
}

func TestRenderNVRAM(t *testing.T) {
	var config, rtc [jim.BlockSize]uint8
	config[5] = 0x42
	rtc[0x0b] = 0x03
	rtc[0x0d] = 0x03

	s := renderNVRAM("europc_jim.nvr", config, rtc, true)
	lines := strings.Split(s, "\n")
	test.DemandEquality(t, len(lines), 6)

	test.ExpectEquality(t, strings.TrimRight(lines[0], " "), "europc_jim.nvr")
	test.ExpectEquality(t, strings.TrimRight(lines[1], " "), "         0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f")
	test.ExpectEquality(t, strings.TrimRight(lines[2], " "), "config  00 00 00 00 00 42 00 00 00 00 00 00 00 00 00 00")
	test.ExpectEquality(t, strings.TrimRight(lines[3], " "), "rtc     00 00 00 00 00 00 00 00 00 00 00 03 00 03 00 00")
	test.ExpectEquality(t, strings.TrimSpace(lines[5]), "video 03 (MDA, HERCULES, INCOLOR)")
}
