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
	"testing"

	"github.com/jetsetilly/europc/debugger/terminal"
	"github.com/jetsetilly/europc/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/europc/test"
)

func feed(ed *editor, s string) editResult {
	var res editResult
	for _, r := range s {
		res = ed.key(r)
	}
	return res
}

func TestEditorTyping(t *testing.T) {
	var ed editor
	ed.reset()

	test.ExpectEquality(t, feed(&ed, "out 25a"), editContinue)
	test.ExpectEquality(t, ed.String(), "out 25a")
	test.ExpectEquality(t, ed.cursor, 7)

	// backspace
	feed(&ed, "\x7f\b")
	test.ExpectEquality(t, ed.String(), "out 2")

	// cursor left twice and insert
	feed(&ed, "\x1b[D\x1b[D")
	test.ExpectEquality(t, ed.cursor, 3)
	feed(&ed, "x")
	test.ExpectEquality(t, ed.String(), "outx 2")

	// cursor right past the end of the line is ignored
	feed(&ed, "\x1b[C\x1b[C\x1b[C\x1b[C")
	test.ExpectEquality(t, ed.cursor, 6)

	// non-printable characters are ignored
	feed(&ed, "\t")
	test.ExpectEquality(t, ed.String(), "outx 2")

	test.ExpectEquality(t, ed.key(easyterm.KeyCarriageReturn), editDone)
	test.ExpectEquality(t, ed.commit(), "outx 2")
}

func TestEditorControl(t *testing.T) {
	var ed editor
	ed.reset()

	test.ExpectEquality(t, ed.key(easyterm.KeyEndOfFile), editEOF)
	feed(&ed, "jim")
	test.ExpectEquality(t, ed.key(easyterm.KeyEndOfFile), editContinue)
	test.ExpectEquality(t, ed.key(easyterm.KeyInterrupt), editInterrupt)
	test.ExpectEquality(t, ed.key(easyterm.KeyLineFeed), editDone)
}

func TestEditorHistory(t *testing.T) {
	var ed editor

	for _, s := range []string{"jim", "ports", "ports", ""} {
		ed.reset()
		feed(&ed, s)
		ed.commit()
	}

	// duplicates and empty lines are not added to the history
	test.ExpectEquality(t, len(ed.history), 2)

	ed.reset()
	feed(&ed, "sa")

	feed(&ed, "\x1b[A")
	test.ExpectEquality(t, ed.String(), "ports")
	feed(&ed, "\x1b[A")
	test.ExpectEquality(t, ed.String(), "jim")

	// can't go past the start of the history
	feed(&ed, "\x1b[A")
	test.ExpectEquality(t, ed.String(), "jim")

	// returning to the end of the history restores the pending line
	feed(&ed, "\x1b[B\x1b[B")
	test.ExpectEquality(t, ed.String(), "sa")
	test.ExpectEquality(t, ed.cursor, 2)

	feed(&ed, "\x1b[B")
	test.ExpectEquality(t, ed.String(), "sa")
}

func TestStyles(t *testing.T) {
	st := newStyles()

	_, ok := st.render(terminal.StyleEcho, "jim")
	test.ExpectEquality(t, ok, false)

	_, ok = st.render(terminal.StyleFeedback, "jim")
	test.ExpectEquality(t, ok, true)
}
