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

package ports_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/europc/hardware/ports"
	"github.com/jetsetilly/europc/logger"
	"github.com/jetsetilly/europc/test"
)

// scratch is a handler that remembers every write
type scratch struct {
	data map[uint16]uint8
}

func newScratch() *scratch {
	return &scratch{data: make(map[uint16]uint8)}
}

func (s *scratch) Read(address uint16) uint8 {
	return s.data[address]
}

func (s *scratch) Write(address uint16, data uint8) {
	s.data[address] = data
}

func TestDispatch(t *testing.T) {
	bus := ports.NewBus(logger.Allow)

	a := newScratch()
	b := newScratch()
	test.DemandSuccess(t, bus.Attach("a", 0x250, 0x10, a))
	test.DemandSuccess(t, bus.Attach("b", 0x3d0, 0x10, b))

	bus.Write(0x250, 0x11)
	bus.Write(0x25f, 0x22)
	bus.Write(0x3d4, 0x33)

	test.ExpectEquality(t, a.data[0x250], 0x11)
	test.ExpectEquality(t, a.data[0x25f], 0x22)
	test.ExpectEquality(t, b.data[0x3d4], 0x33)
	test.ExpectEquality(t, len(a.data), 2)
	test.ExpectEquality(t, len(b.data), 1)

	test.ExpectEquality(t, bus.Read(0x25f), 0x22)
	test.ExpectEquality(t, bus.Read(0x3d4), 0x33)

	// either side of a window is unmapped
	test.ExpectEquality(t, bus.Read(0x24f), ports.OpenBus)
	test.ExpectEquality(t, bus.Read(0x260), ports.OpenBus)

	// writes to unmapped ports go nowhere
	bus.Write(0x260, 0x44)
	test.ExpectEquality(t, len(a.data), 2)
}

func TestOverlap(t *testing.T) {
	bus := ports.NewBus(logger.Allow)

	test.DemandSuccess(t, bus.Attach("a", 0x250, 0x10, newScratch()))

	err := bus.Attach("b", 0x25f, 1, newScratch())
	test.ExpectSuccess(t, errors.Is(err, ports.ErrOverlap))

	err = bus.Attach("c", 0x240, 0x11, newScratch())
	test.ExpectSuccess(t, errors.Is(err, ports.ErrOverlap))

	// adjacent windows are fine
	test.ExpectSuccess(t, bus.Attach("d", 0x240, 0x10, newScratch()))
	test.ExpectSuccess(t, bus.Attach("e", 0x260, 0x10, newScratch()))

	test.ExpectEquality(t, bus.String(), "0240-024f d\n0250-025f a\n0260-026f e")
}

func TestInvalidWindow(t *testing.T) {
	bus := ports.NewBus(logger.Allow)

	err := bus.Attach("a", 0x250, 0, newScratch())
	test.ExpectSuccess(t, errors.Is(err, ports.ErrWindow))

	err = bus.Attach("b", 0xfff8, 0x10, newScratch())
	test.ExpectSuccess(t, errors.Is(err, ports.ErrWindow))

	err = bus.Attach("c", 0x250, 0x10, nil)
	test.ExpectSuccess(t, errors.Is(err, ports.ErrWindow))

	// the very top of the address space is a valid window
	test.ExpectSuccess(t, bus.Attach("d", 0xfff0, 0x10, newScratch()))
	_, ok := bus.Mapped(0xffff)
	test.ExpectSuccess(t, ok)
}

func TestDetach(t *testing.T) {
	bus := ports.NewBus(logger.Allow)
	test.ExpectEquality(t, bus.String(), "no ports attached")

	test.DemandSuccess(t, bus.Attach("a", 0x250, 0x10, newScratch()))

	label, ok := bus.Mapped(0x25a)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, label, "a")

	test.ExpectSuccess(t, bus.Detach("a"))
	test.ExpectFailure(t, bus.Detach("a"))

	_, ok = bus.Mapped(0x25a)
	test.ExpectFailure(t, ok)

	// window can be reattached once detached
	test.ExpectSuccess(t, bus.Attach("a", 0x250, 0x10, newScratch()))
}
