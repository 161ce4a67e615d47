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
	"strings"

	"github.com/jetsetilly/europc/debugger/terminal"
)

// commandList is the order commands are listed in by HELP
var commandList = []string{
	cmdIn, cmdOut, cmdRTC, cmdJIM, cmdPorts, cmdMap,
	cmdSave, cmdLog, cmdMemviz, cmdHelp, cmdQuit,
}

var helps = map[string]string{
	cmdIn:     "IN [address]\nRead a byte from the I/O port.",
	cmdOut:    "OUT [address] [value]\nWrite a byte to the I/O port.",
	cmdRTC:    "RTC {index {value}}\nWith no arguments list the clock/calendar block. With an index, read the byte through the latch. With an index and a value, write the byte through the latch.",
	cmdJIM:    "JIM\nShow the configuration block, the clock/calendar block and the latch.",
	cmdPorts:  "PORTS\nList the devices attached to the I/O port bus.",
	cmdMap:    "MAP\nList the ports used by the JIM chip and how they are decoded.",
	cmdSave:   "SAVE\nSave the JIM chip to the NVRAM file.",
	cmdLog:    fmt.Sprintf("LOG {number}\nShow the most recent log entries. The number is decimal and is %d by default.", defaultLogTail),
	cmdMemviz: "MEMVIZ [filename]\nWrite a graphviz dot file of the JIM chip.",
	cmdHelp:   "HELP {command}\nList commands or show help for a command.",
	cmdQuit:   "QUIT\nLeave the monitor.",
}

func (dbg *Debugger) help(cmd string) error {
	if cmd == "" {
		dbg.printLine(terminal.StyleHelp, "%s", strings.Join(commandList, " "))
		dbg.printLine(terminal.StyleHelp, "numbers are hexadecimal")
		return nil
	}

	h, ok := helps[cmd]
	if !ok {
		return fmt.Errorf("no help for %s", cmd)
	}
	dbg.printLines(terminal.StyleHelp, h)

	return nil
}
