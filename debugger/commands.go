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

package debugger

import (
	"fmt"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/europc/debugger/terminal"
	"github.com/jetsetilly/europc/hardware/jim"
	"github.com/jetsetilly/europc/logger"
)

// list of monitor commands
const (
	cmdIn     = "IN"
	cmdOut    = "OUT"
	cmdRTC    = "RTC"
	cmdJIM    = "JIM"
	cmdPorts  = "PORTS"
	cmdMap    = "MAP"
	cmdSave   = "SAVE"
	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

// the number of log entries shown by LOG with no argument
const defaultLogTail = 10

// Command parses and runs a single line of input. An empty line is not an
// error.
func (dbg *Debugger) Command(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	tokens[0] = strings.ToUpper(tokens[0])
	dbg.printLine(terminal.StyleEcho, "%s", strings.Join(tokens, " "))

	cmd := tokens[0]
	args := tokens[1:]

	switch cmd {
	case cmdIn:
		if len(args) != 1 {
			return fmt.Errorf("%s requires an address", cmd)
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		data := dbg.machine.In(address)
		dbg.printLine(terminal.StyleFeedback, "%04x -> %02x", address, data)

	case cmdOut:
		if len(args) != 2 {
			return fmt.Errorf("%s requires an address and a value", cmd)
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		data, err := parseData(args[1])
		if err != nil {
			return err
		}
		dbg.machine.Out(address, data)
		dbg.printLine(terminal.StyleFeedback, "%04x <- %02x", address, data)

	case cmdRTC:
		return dbg.rtc(args)

	case cmdJIM:
		dbg.printLines(terminal.StyleMachineInfo, dbg.machine.JIM.String())
		if dbg.machine.JIM.IsSaved() {
			dbg.printLine(terminal.StyleMachineInfo, "nvram:  saved")
		} else {
			dbg.printLine(terminal.StyleMachineInfo, "nvram:  not saved")
		}

	case cmdPorts:
		dbg.printLines(terminal.StyleMachineInfo, dbg.machine.Ports.String())

	case cmdMap:
		dbg.printLines(terminal.StyleMachineInfo, jim.PortMap())

	case cmdSave:
		dbg.machine.SaveNVRAM()
		if !dbg.machine.JIM.IsSaved() {
			return fmt.Errorf("nvram could not be saved")
		}
		dbg.printLine(terminal.StyleFeedback, "nvram saved")

	case cmdLog:
		n := defaultLogTail
		if len(args) > 0 {
			var err error
			n, err = parseCount(args[0])
			if err != nil {
				return err
			}
		}
		var s strings.Builder
		logger.Tail(&s, n)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		} else {
			dbg.printLines(terminal.StyleLog, s.String())
		}

	case cmdMemviz:
		if len(args) != 1 {
			return fmt.Errorf("%s requires a filename", cmd)
		}
		return dbg.memviz(args[0])

	case cmdHelp:
		if len(args) > 0 {
			return dbg.help(strings.ToUpper(args[0]))
		}
		return dbg.help("")

	case cmdQuit:
		dbg.running = false

	default:
		return fmt.Errorf("unrecognised command (%s)", cmd)
	}

	return nil
}

// RTC with no arguments lists the clock/calendar block. with one argument the
// indexed byte is read through the latch. with two arguments the byte is
// written through the latch
func (dbg *Debugger) rtc(args []string) error {
	if len(args) == 0 {
		var s strings.Builder
		for i := range jim.BlockSize {
			s.WriteString(fmt.Sprintf("%x:%02x ", i, dbg.machine.JIM.Peek(i)))
		}
		dbg.printLine(terminal.StyleMachineInfo, "%s", strings.TrimSpace(s.String()))
		return nil
	}

	if len(args) > 2 {
		return fmt.Errorf("%s takes at most an index and a value", cmdRTC)
	}

	idx, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	var data uint8
	if len(args) == 2 {
		data, err = parseData(args[1])
		if err != nil {
			return err
		}
	}

	// make sure the first write to the latch selects the index
	dbg.machine.JIM.Reset()
	dbg.machine.Out(jim.LatchPort, uint8(idx))

	if len(args) == 1 {
		hi := dbg.machine.In(jim.LatchPort)
		lo := dbg.machine.In(jim.LatchPort)
		dbg.printLine(terminal.StyleFeedback, "rtc %x -> %02x", idx, hi<<4|lo)
		return nil
	}

	dbg.machine.Out(jim.LatchPort, data>>4)
	dbg.machine.Out(jim.LatchPort, data&0x0f)
	dbg.printLine(terminal.StyleFeedback, "rtc %x <- %02x", idx, data)

	return nil
}

// write a graphviz representation of the JIM to the named file
func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.machine.JIM)
	dbg.printLine(terminal.StyleFeedback, "memviz written to %s", filename)

	return nil
}
