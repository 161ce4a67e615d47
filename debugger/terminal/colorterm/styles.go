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
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/europc/debugger/terminal"
)

type styles struct {
	help     lipgloss.Style
	feedback lipgloss.Style
	machine  lipgloss.Style
	log      lipgloss.Style
	err      lipgloss.Style
	prompt   lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)

func newStyles() styles {
	return styles{
		help:     lipgloss.NewStyle().Faint(true),
		feedback: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		machine:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		log:      lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
	}
}

// render the string in the style. returns false if the style should not be
// printed at all
func (st styles) render(style terminal.Style, s string) (string, bool) {
	switch style {
	case terminal.StyleEcho:
		// the terminal has already echoed the user's input
		return "", false
	case terminal.StyleHelp:
		return st.help.Render(s), true
	case terminal.StyleMachineInfo:
		return st.machine.Render(s), true
	case terminal.StyleLog:
		return st.log.Render(s), true
	case terminal.StyleError:
		return st.err.Render("* " + s), true
	}
	return st.feedback.Render(s), true
}
