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

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/europc/hardware/ports"
	"github.com/jetsetilly/europc/hardware/video"
	"github.com/jetsetilly/europc/logger"
)

// The port window occupied by the chip.
const (
	Base      = uint16(0x250)
	Count     = 0x10
	LatchPort = uint16(0x25a)
)

// BlockSize is the size of both the configuration block and the
// clock/calendar block.
const BlockSize = 16

// NVRAMFile is the name of the file the chip is saved to.
const NVRAMFile = "europc_jim.nvr"

// the label used when attaching to the port bus
const label = "jim"

// indexes into the clock/calendar block
const (
	// both bytes are given the video adapter code. the second is supposed to
	// be a checksum but the value is the same as the video byte
	rtcVideo    = 0x0b
	rtcChecksum = 0x0d
)

// values given to the clock/calendar block when there is no NVRAM file
var rtcDefaults = map[int]uint8{
	0x0f: 0x01,
	0x03: 0x01,
	0x04: 0x01,
	0x05: 0x88,
}

// video adapter codes
const (
	videoColour     = 0x12
	videoMonochrome = 0x03
	videoOther      = 0x10
)

// VideoCode returns the value the chip stores in the clock/calendar block for
// the video adapter.
func VideoCode(adapter video.Adapter) uint8 {
	switch {
	case adapter.IsColour():
		return videoColour
	case adapter.IsMonochrome():
		return videoMonochrome
	}
	return videoOther
}

// Store is the persistence layer used by the chip.
type Store interface {
	Load(name string, blocks ...[]uint8) error
	Save(name string, blocks ...[]uint8) error
}

// Registrar is the port bus the chip attaches itself to.
type Registrar interface {
	Attach(label string, base uint16, count int, h ports.Handler) error
	Detach(label string) bool
}

// Context is the interface required by the JIM for logging.
type Context interface {
	logger.Permission
}

// JIM is the NVRAM and real-time clock chip. It implements the ports.Handler
// interface.
type JIM struct {
	ctx     Context
	store   Store
	adapter video.Adapter

	Config [BlockSize]uint8
	RTC    [BlockSize]uint8
	Latch  Latch

	// the contents of the NVRAM file as last loaded or saved. nil if the file
	// has never been loaded or saved
	disk []uint8
}

// Create is the preferred method of initialisation for the JIM type. The
// NVRAM file is loaded from the store if possible. The chip is not attached
// to a port bus until Attach() is called.
func Create(ctx Context, store Store, adapter video.Adapter) *JIM {
	if store == nil {
		panic("jim: a store is required")
	}

	j := &JIM{
		ctx:     ctx,
		store:   store,
		adapter: adapter,
	}

	clear(j.RTC[:])

	err := j.store.Load(NVRAMFile, j.Config[:], j.RTC[:])
	if err != nil {
		logger.Logf(j.ctx, "jim", "could not load nvram: %v", err)
		for i, v := range rtcDefaults {
			j.RTC[i] = v
		}
	} else {
		logger.Logf(j.ctx, "jim", "nvram loaded from %s", NVRAMFile)
		j.disk = j.snapshot()
	}

	code := VideoCode(adapter)
	j.RTC[rtcVideo] = code
	j.RTC[rtcChecksum] = code

	return j
}

// Detach the chip from the port bus. Ports in the chip's window will be open
// bus afterwards.
func (j *JIM) Detach(bus Registrar) {
	if !bus.Detach(label) {
		logger.Log(j.ctx, "jim", "not attached to port bus")
	}
}

// Attach the chip's read and write handlers to the port bus.
func (j *JIM) Attach(bus Registrar) error {
	if err := bus.Attach(label, Base, Count, j); err != nil {
		return fmt.Errorf("jim: %w", err)
	}
	return nil
}

// Adapter returns the video adapter the chip was created with.
func (j *JIM) Adapter() video.Adapter {
	return j.adapter
}

// the blocks as they would be on disk
func (j *JIM) snapshot() []uint8 {
	return slices.Concat(j.Config[:], j.RTC[:])
}

// Save both blocks to the store. If the store fails the error is logged and
// otherwise ignored.
func (j *JIM) Save() {
	err := j.store.Save(NVRAMFile, j.Config[:], j.RTC[:])
	if err != nil {
		logger.Logf(j.ctx, "jim", "could not save nvram: %v", err)
		return
	}
	j.disk = j.snapshot()
	logger.Logf(j.ctx, "jim", "nvram saved to %s", NVRAMFile)
}

// IsSaved returns true if the blocks are the same as the NVRAM file, as last
// loaded or saved.
func (j *JIM) IsSaved() bool {
	return j.disk != nil && slices.Equal(j.disk, j.snapshot())
}

// Write implements the ports.Handler interface.
func (j *JIM) Write(address uint16, data uint8) {
	if isConfigWrite(address) {
		j.Config[address&configIndex] = data
	}
	if decode(address) == accessLatch {
		j.Latch.write(&j.RTC, data)
	}
}

// Read implements the ports.Handler interface.
func (j *JIM) Read(address uint16) uint8 {
	switch decode(address) {
	case accessConfig:
		return j.Config[address&configIndex]
	case accessLatch:
		return j.Latch.read(&j.RTC)
	}
	return 0
}

// Reset returns the latch to the index phase. The data blocks are unchanged.
func (j *JIM) Reset() {
	j.Latch = Latch{}
}

// Peek returns the clock/calendar byte at the index without going through
// the latch. The index is masked to the size of the block.
func (j *JIM) Peek(idx int) uint8 {
	return j.RTC[idx&(BlockSize-1)]
}

// Poke sets the clock/calendar byte at the index without going through the
// latch. The index is masked to the size of the block.
func (j *JIM) Poke(idx int, data uint8) {
	j.RTC[idx&(BlockSize-1)] = data
}

func (j *JIM) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("config: % 02x\n", j.Config[:]))
	s.WriteString(fmt.Sprintf("rtc:    % 02x\n", j.RTC[:]))
	s.WriteString(fmt.Sprintf("latch:  %s", j.Latch))
	return s.String()
}

// PortMap returns a description of each port in the chip's window.
func PortMap() string {
	var s strings.Builder
	for a := Base; a < Base+Count; a++ {
		s.WriteString(fmt.Sprintf("%04x %s\n", a, decode(a)))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
