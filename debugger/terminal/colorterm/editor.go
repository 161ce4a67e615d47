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

package colorterm

import (
	"slices"
	"unicode"

	"github.com/jetsetilly/europc/debugger/terminal/colorterm/easyterm"
)

// the result of feeding a key to the editor
type editResult int

const (
	editContinue editResult = iota
	editDone
	editInterrupt
	editEOF
)

// editor is the line editor used by ColorTerminal. it knows nothing about the
// terminal and can be driven one rune at a time.
type editor struct {
	input  []rune
	cursor int

	history []string

	// position in history. equal to len(history) when editing a new line
	hpos int

	// the line being edited before the user started scrolling the history
	pending []rune

	// escape sequence state
	esc int
}

func (ed *editor) reset() {
	ed.input = ed.input[:0]
	ed.cursor = 0
	ed.hpos = len(ed.history)
	ed.pending = nil
	ed.esc = 0
}

func (ed *editor) String() string {
	return string(ed.input)
}

// commit the current line to the history and return it. identical
// consecutive lines are stored once
func (ed *editor) commit() string {
	s := string(ed.input)
	if s != "" && (len(ed.history) == 0 || ed.history[len(ed.history)-1] != s) {
		ed.history = append(ed.history, s)
	}
	return s
}

func (ed *editor) recall(pos int) {
	if ed.hpos == len(ed.history) {
		ed.pending = slices.Clone(ed.input)
	}
	ed.hpos = pos
	if ed.hpos == len(ed.history) {
		ed.input = slices.Clone(ed.pending)
	} else {
		ed.input = []rune(ed.history[ed.hpos])
	}
	ed.cursor = len(ed.input)
}

func (ed *editor) key(r rune) editResult {
	switch ed.esc {
	case 1:
		ed.esc = 0
		if r == easyterm.EscCursor {
			ed.esc = 2
		}
		return editContinue
	case 2:
		ed.esc = 0
		switch r {
		case easyterm.CursorUp:
			if ed.hpos > 0 {
				ed.recall(ed.hpos - 1)
			}
		case easyterm.CursorDown:
			if ed.hpos < len(ed.history) {
				ed.recall(ed.hpos + 1)
			}
		case easyterm.CursorForward:
			if ed.cursor < len(ed.input) {
				ed.cursor++
			}
		case easyterm.CursorBackward:
			if ed.cursor > 0 {
				ed.cursor--
			}
		}
		return editContinue
	}

	switch r {
	case easyterm.KeyEsc:
		ed.esc = 1
	case easyterm.KeyInterrupt:
		return editInterrupt
	case easyterm.KeyEndOfFile:
		if len(ed.input) == 0 {
			return editEOF
		}
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		return editDone
	case easyterm.KeyBackspace, easyterm.KeyDelete:
		if ed.cursor > 0 {
			ed.input = slices.Delete(ed.input, ed.cursor-1, ed.cursor)
			ed.cursor--
			ed.hpos = len(ed.history)
		}
	default:
		if unicode.IsPrint(r) {
			ed.input = slices.Insert(ed.input, ed.cursor, r)
			ed.cursor++
			ed.hpos = len(ed.history)
		}
	}

	return editContinue
}
