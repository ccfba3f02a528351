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

// Width is the size of an instruction encoding. Thumb instructions are
// either one or two halfwords long.
type Width int

// List of valid Width values.
const (
	Width16 Width = iota
	Width32
)

func (w Width) String() string {
	switch w {
	case Width16:
		return "16bit"
	case Width32:
		return "32bit"
	}
	return "unknown width"
}

// Instruction is the result of decoding one instruction encoding. It is a
// pure value. Two decodes of the same bit pattern always produce equal
// Instruction values.
type Instruction struct {
	Width Width
	Op    Operation
}

// Is16bit returns true if the instruction was decoded from a single halfword.
func (ins Instruction) Is16bit() bool {
	return ins.Width == Width16
}

// Is32bit returns true if the instruction was decoded from two halfwords.
func (ins Instruction) Is32bit() bool {
	return ins.Width == Width32
}
