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

package jim

import "fmt"

// Phase of the clock/calendar latch protocol.
type Phase int

// List of valid Phase values.
const (
	PhaseIndex Phase = iota
	PhaseHigh
	PhaseLow
)

func (p Phase) String() string {
	switch p {
	case PhaseIndex:
		return "index"
	case PhaseHigh:
		return "high"
	case PhaseLow:
		return "low"
	}
	return "unknown"
}

// Latch is the access latch in front of the clock/calendar block.
type Latch struct {
	// the clock/calendar byte selected by the most recent index write
	Index uint8

	Phase Phase
}

func (l Latch) String() string {
	return fmt.Sprintf("index=%#x phase=%s", l.Index, l.Phase)
}

func (l *Latch) write(rtc *[BlockSize]uint8, data uint8) {
	switch l.Phase {
	case PhaseIndex:
		l.Index = data & 0x0f
		l.Phase = PhaseHigh
	case PhaseHigh:
		rtc[l.Index] = (rtc[l.Index] & 0x0f) | (data << 4)
		l.Phase = PhaseLow
	case PhaseLow:
		rtc[l.Index] = (rtc[l.Index] & 0xf0) | (data & 0x0f)
		l.Phase = PhaseIndex
	}
}

func (l *Latch) read(rtc *[BlockSize]uint8) uint8 {
	switch l.Phase {
	case PhaseHigh:
		l.Phase = PhaseLow
		return rtc[l.Index] >> 4
	case PhaseLow:
		l.Phase = PhaseIndex
		return rtc[l.Index] & 0x0f
	}
	return 0
}
