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

// Package terminal defines the operations required for the monitor to talk to
// the user. Implementations are found in the plainterm and colorterm
// packages.
package terminal

import (
	"errors"
	"fmt"
)

// Style is used to identify the category of text being sent to the
// TermPrintLine() function of the Output interface. Implementations are free
// to handle the styles however they like.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has been
	// "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information sent in response to a command
	StyleFeedback

	// information about the state of the emulated machine
	StyleMachineInfo

	// logging output
	StyleLog

	// information as a result of an error. errors can be generated by the
	// emulation or the monitor
	StyleError
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Content string
}

func (p Prompt) String() string {
	if p.Content == "" {
		return ">> "
	}
	return fmt.Sprintf("[ %s ] >> ", p.Content)
}

// ErrUserInterrupt is returned by TermRead() when the user interrupts input
// (eg. with CTRL-C).
var ErrUserInterrupt = errors.New("user interrupt")

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line ending. The
	// prompt is written to the output if the implementation thinks it
	// appropriate.
	//
	// Returns io.EOF when there is no more input.
	TermRead(prompt Prompt) (string, error)

	// IsRealTerminal returns true if the input and output are connected to a
	// real terminal.
	IsRealTerminal() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	Input
	Output
}
