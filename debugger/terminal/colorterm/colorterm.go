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

//go:build linux || darwin

package colorterm

import (
	"bufio"
	"io"
	"os"

	"github.com/jetsetilly/europc/debugger/terminal"
	"github.com/jetsetilly/europc/debugger/terminal/colorterm/easyterm"
	"golang.org/x/term"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
// Input is edited in cbreak mode, with a command history.
type ColorTerminal struct {
	easyterm.Terminal

	input  *os.File
	output *os.File
	reader *bufio.Reader
	editor editor
	styles styles
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type. Returns ErrNotTerminal if the standard input or output
// is not a terminal, in which case a plain terminal should be used instead.
func NewColorTerminal() (terminal.Terminal, error) {
	ct, err := newColorTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	return ct, nil
}

func newColorTerminal(input, output *os.File) (*ColorTerminal, error) {
	if !term.IsTerminal(int(input.Fd())) || !term.IsTerminal(int(output.Fd())) {
		return nil, ErrNotTerminal
	}
	return &ColorTerminal{
		input:  input,
		output: output,
		styles: newStyles(),
	}, nil
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(ct.input, ct.output)
	if err != nil {
		return err
	}
	ct.reader = bufio.NewReader(ct.input)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print(easyterm.Return)
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsRealTerminal implements the terminal.Input interface.
func (ct *ColorTerminal) IsRealTerminal() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	s, ok := ct.styles.render(style, s)
	if !ok {
		return
	}
	ct.Print("%s%s\n", easyterm.Return, s)
}

func (ct *ColorTerminal) redraw(prompt string) {
	ct.Print("%s%s%s%s", easyterm.Return, easyterm.ClearLine, prompt, ct.editor.String())
	ct.Print(easyterm.CursorLeft(len(ct.editor.input) - ct.editor.cursor))
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	p := ct.styles.prompt.Render(prompt.String())
	ct.editor.reset()

	for {
		ct.redraw(p)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			ct.Print("\n")
			return "", err
		}

		switch ct.editor.key(r) {
		case editDone:
			ct.Print("\n")
			return ct.editor.commit(), nil
		case editInterrupt:
			ct.Print("\n")
			return "", terminal.ErrUserInterrupt
		case editEOF:
			ct.Print("\n")
			return "", io.EOF
		}
	}
}
