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

// Package bits extracts and recombines the sub-fields of an instruction
// encoding.
//
// The functions have no failure modes. Call sites are written so that lsb
// and width always lie within the word. Getting that wrong is a programming
// error in the caller, not a condition these functions try to recover from.
package bits

// Field returns the unsigned value of the width-bit field of value starting
// at bit lsb.
func Field(value uint32, lsb int, width int) uint32 {
	return (value >> lsb) & (1<<width - 1)
}

// SignExtend interprets the lowest width bits of value as a two's complement
// number.
func SignExtend(value uint32, width int) int32 {
	shift := 32 - width
	return int32(value<<shift) >> shift
}

// SignedField returns the value of the width-bit field of value starting at
// bit lsb, sign extended from the most significant bit of the field.
func SignedField(value uint32, lsb int, width int) int32 {
	return SignExtend(Field(value, lsb, width), width)
}

// Part is one sub-range of a field that the encoding scatters across the
// instruction word. Only the lowest Width bits of Value are used.
type Part struct {
	Value uint32
	Width int
}

// Signed concatenates the parts, most significant part first, and interprets
// the result as a two's complement number. An implicit low-order zero in the
// encoding is expressed as a trailing Part with a zero Value.
func Signed(parts ...Part) int32 {
	var v uint32
	var w int
	for _, p := range parts {
		v = v<<p.Width | Field(p.Value, 0, p.Width)
		w += p.Width
	}
	return SignExtend(v, w)
}
