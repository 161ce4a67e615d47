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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/europc/debugger/terminal"
	"github.com/jetsetilly/europc/hardware"
	"github.com/jetsetilly/europc/logger"
)

// Debugger is the monitor for the emulated machine.
type Debugger struct {
	machine *hardware.Machine
	term    terminal.Terminal

	// the monitor loop ends when running is false
	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
func NewDebugger(machine *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	if machine == nil {
		return nil, fmt.Errorf("debugger: no machine")
	}
	if term == nil {
		return nil, fmt.Errorf("debugger: no terminal")
	}
	return &Debugger{
		machine: machine,
		term:    term,
	}, nil
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// print every line of a multi-line string in the same style
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{Content: dbg.machine.JIM.Adapter().String()}
	if !dbg.machine.JIM.IsSaved() {
		p.Content = fmt.Sprintf("%s *", p.Content)
	}
	return p
}

// Start the monitor. The function returns when the user quits or when the
// terminal has no more input. The machine is not shutdown.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	logger.Log(logger.Allow, "debugger", "monitor started")

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, terminal.ErrUserInterrupt) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		err = dbg.Command(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}
