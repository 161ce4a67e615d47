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

// Package video describes the class of graphics adapter fitted to the
// machine. The emulation does not draw anything. The adapter class is a
// configuration hint read by other chips when the machine is powered on.
package video

import (
	"fmt"
	"strings"
)

// Adapter identifies the graphics adapter fitted to the machine.
type Adapter int

// List of valid Adapter values.
const (
	Other Adapter = iota
	CGA
	ColorPlus
	MDA
	Hercules
	InColor
	EGA
	VGA
)

// AdapterList is the list of adapter names accepted by ParseAdapter().
var AdapterList = []string{"CGA", "COLORPLUS", "MDA", "HERCULES", "INCOLOR", "EGA", "VGA", "OTHER"}

func (a Adapter) String() string {
	switch a {
	case CGA:
		return "CGA"
	case ColorPlus:
		return "COLORPLUS"
	case MDA:
		return "MDA"
	case Hercules:
		return "HERCULES"
	case InColor:
		return "INCOLOR"
	case EGA:
		return "EGA"
	case VGA:
		return "VGA"
	}
	return "OTHER"
}

// ParseAdapter returns the Adapter for the name. The name is not case
// sensitive and can be any value from AdapterList.
func ParseAdapter(name string) (Adapter, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "CGA":
		return CGA, nil
	case "COLORPLUS":
		return ColorPlus, nil
	case "MDA":
		return MDA, nil
	case "HERCULES":
		return Hercules, nil
	case "INCOLOR":
		return InColor, nil
	case "EGA":
		return EGA, nil
	case "VGA":
		return VGA, nil
	case "OTHER":
		return Other, nil
	}
	return Other, fmt.Errorf("video: unrecognised adapter (%s)", name)
}

// IsColour returns true for the colour CGA family.
func (a Adapter) IsColour() bool {
	return a == CGA || a == ColorPlus
}

// IsMonochrome returns true for the MDA family. The InColor card is
// register compatible with the Hercules card and so is grouped with it.
func (a Adapter) IsMonochrome() bool {
	return a == MDA || a == Hercules || a == InColor
}
