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


package prefs

import (
	"slices"
	"strings"
)

// separators used in a prefs string. for example:
//
//	europc.adapter::MDA; europc.saveOnExit::false
const (
	pairSeparator  = ";"
	valueSeparator = "::"
)

// a group of preference values from a single command line. values are
// removed from the group as they are used
type commandLineGroup map[string]string

func parseCommandLineGroup(s string) commandLineGroup {
	grp := make(commandLineGroup)
	for _, pair := range strings.Split(s, pairSeparator) {
		key, value, ok := strings.Cut(pair, valueSeparator)
		if !ok || strings.Contains(value, valueSeparator) {
			continue
		}
		grp[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return grp
}

// the unused values in the group as a prefs string. keys are sorted
func (grp commandLineGroup) String() string {
	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + valueSeparator + grp[k]
	}
	return strings.Join(pairs, pairSeparator+" ")
}

// one group for every call to PushCommandLineStack() that has not been popped
var commandLineStack []commandLineGroup

// PushCommandLineStack parses a prefs string and makes it the current group.
// Pairs that are not of the form key::value are ignored.
func PushCommandLineStack(prefs string) {
	commandLineStack = append(commandLineStack, parseCommandLineGroup(prefs))
}

// PopCommandLineStack forgets the current group. Returns the values in the
// group that were never used, as a prefs string.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	grp := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return grp.String()
}

// GetCommandLinePref returns the value for key from the current group. The
// value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}
	grp := commandLineStack[len(commandLineStack)-1]
	v, ok := grp[key]
	if !ok {
		return false, nil
	}
	delete(grp, key)
	return true, v
}
