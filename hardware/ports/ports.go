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

// Package ports implements the I/O port address space of the machine. Chips
// attach a handler to a window of consecutive ports and the bus dispatches
// byte wide IN and OUT operations to whichever handler owns the address.
//
// Handlers always receive the full port address, not an offset into their
// window. Chips decode the address themselves, which is how the real
// hardware sees it.
package ports

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/europc/logger"
)

// Handler is implemented by chips that can be attached to the port bus.
type Handler interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// OpenBus is the value returned by a read from a port that has no handler.
const OpenBus = uint8(0xff)

// Size of the port address space.
const Size = 0x10000

// Sentinel errors returned by Attach().
var (
	ErrOverlap = errors.New("ports: window overlaps existing window")
	ErrWindow  = errors.New("ports: invalid window")
)

// Context is the interface required by the Bus for logging.
type Context interface {
	logger.Permission
}

type window struct {
	label   string
	base    uint16
	count   int
	handler Handler
}

// the last address in the window
func (w window) last() uint16 {
	return w.base + uint16(w.count-1)
}

func (w window) String() string {
	return fmt.Sprintf("%04x-%04x %s", w.base, w.last(), w.label)
}

// Bus is the I/O port address space.
type Bus struct {
	ctx Context

	// windows are kept sorted by base address
	windows []window
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(ctx Context) *Bus {
	return &Bus{
		ctx: ctx,
	}
}

func (bus *Bus) String() string {
	if len(bus.windows) == 0 {
		return "no ports attached"
	}
	var s strings.Builder
	for _, w := range bus.windows {
		s.WriteString(w.String())
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Attach the handler to count ports starting at base. The window must not
// overlap a window that is already attached.
func (bus *Bus) Attach(label string, base uint16, count int, h Handler) error {
	if h == nil {
		return fmt.Errorf("%w: no handler for %s", ErrWindow, label)
	}
	if count <= 0 || int(base)+count > Size {
		return fmt.Errorf("%w: %s at %#04x with count %d", ErrWindow, label, base, count)
	}

	nw := window{
		label:   label,
		base:    base,
		count:   count,
		handler: h,
	}

	for _, w := range bus.windows {
		if nw.base <= w.last() && w.base <= nw.last() {
			return fmt.Errorf("%w: %s and %s", ErrOverlap, nw, w)
		}
	}

	bus.windows = append(bus.windows, nw)
	sort.Slice(bus.windows, func(i, j int) bool {
		return bus.windows[i].base < bus.windows[j].base
	})

	logger.Logf(bus.ctx, "ports", "attached %s", nw)

	return nil
}

// Detach removes the window with the label. Returns false if there is no
// such window.
func (bus *Bus) Detach(label string) bool {
	for i, w := range bus.windows {
		if w.label == label {
			bus.windows = append(bus.windows[:i], bus.windows[i+1:]...)
			logger.Logf(bus.ctx, "ports", "detached %s", w)
			return true
		}
	}
	return false
}

// find the window containing the address. returns nil if no window is found
func (bus *Bus) find(address uint16) *window {
	i := sort.Search(len(bus.windows), func(i int) bool {
		return bus.windows[i].last() >= address
	})
	if i < len(bus.windows) && bus.windows[i].base <= address {
		return &bus.windows[i]
	}
	return nil
}

// Mapped returns the label of the window containing the address and true.
// If no window contains the address then false is returned.
func (bus *Bus) Mapped(address uint16) (string, bool) {
	w := bus.find(address)
	if w == nil {
		return "", false
	}
	return w.label, true
}

// Read performs an IN from the port.
func (bus *Bus) Read(address uint16) uint8 {
	w := bus.find(address)
	if w == nil {
		logger.Logf(bus.ctx, "ports", "read from unmapped port %#04x", address)
		return OpenBus
	}
	return w.handler.Read(address)
}

// Write performs an OUT to the port.
func (bus *Bus) Write(address uint16, data uint8) {
	w := bus.find(address)
	if w == nil {
		logger.Logf(bus.ctx, "ports", "write of %#02x to unmapped port %#04x", data, address)
		return
	}
	w.handler.Write(address, data)
}
