// This file is part of armv6m.
//
// armv6m is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// armv6m is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with armv6m.  If not, see <https://www.gnu.org/licenses/>.

package instruction

import "fmt"

// Condition is the condition code operand of the B instruction. The
// unconditional form of the instruction decodes with the AL condition.
//
// The encodings 0b1110 and 0b1111 of the condition field are not conditions.
// They select the permanently undefined instruction and the SVC instruction
// respectively and never appear in a decoded B.
type Condition uint8

// List of valid Condition values.
const (
	EQ Condition = iota
	NE
	CS
	CC
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
	AL
)

func (c Condition) String() string {
	switch c {
	case EQ:
		return "EQ"
	case NE:
		return "NE"
	case CS:
		return "CS"
	case CC:
		return "CC"
	case MI:
		return "MI"
	case PL:
		return "PL"
	case VS:
		return "VS"
	case VC:
		return "VC"
	case HI:
		return "HI"
	case LS:
		return "LS"
	case GE:
		return "GE"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LE:
		return "LE"
	case AL:
		return "AL"
	}
	return fmt.Sprintf("condition(%d)", uint8(c))
}
