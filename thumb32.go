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

package armv6m

import (
	"github.com/jetsetilly/armv6m/bits"
	"github.com/jetsetilly/armv6m/instruction"
)

// decodeThumb32 decodes a 32bit instruction from both halfwords, first
// halfword in the upper sixteen bits.
//
// ARMv6-M populates only a corner of the 32bit encoding space: the branch
// and miscellaneous control group. Everything else, including the large
// encoding groups that ARMv7-M assigns, is undefined on this architecture.
func decodeThumb32(opcode uint32) instruction.Operation {
	// "A5.3 32-bit Thumb instruction encoding" of "ARMv6-M ARM"
	op1 := (opcode & 0x18000000) >> 27
	op := (opcode & 0x00008000) >> 15

	if op1 == 0b10 && op == 0b1 {
		return decodeThumb32BranchMiscControl(opcode)
	}

	return instruction.Undefined{Opcode: opcode}
}

func decodeThumb32BranchMiscControl(opcode uint32) instruction.Operation {
	// "A5.3.1 Branch and miscellaneous control" of "ARMv6-M ARM"
	op1 := (opcode & 0x07f00000) >> 20
	op2 := (opcode & 0x00007000) >> 12

	switch {
	case op2&0b101 == 0b000 && op1&0b1111110 == 0b0111000:
		// "A6.7.41 MSR (register)"
		Rn := instruction.Register((opcode & 0x000f0000) >> 16)
		spec, ok := instruction.DecodeSpecialRegister(uint8(opcode & 0x000000ff))
		if !ok {
			// reserved SYSm value
			return instruction.Undefined{Opcode: opcode}
		}
		return instruction.MSR{Rn: Rn, Spec: spec}

	case op2&0b101 == 0b000 && op1 == 0b0111011:
		return decodeThumb32MiscControl(opcode)

	case op2&0b101 == 0b000 && op1&0b1111110 == 0b0111110:
		// "A6.7.40 MRS"
		Rd := instruction.Register((opcode & 0x00000f00) >> 8)
		spec, ok := instruction.DecodeSpecialRegister(uint8(opcode & 0x000000ff))
		if !ok {
			return instruction.Undefined{Opcode: opcode}
		}
		return instruction.MRS{Rd: Rd, Spec: spec}

	case op2&0b101 == 0b000 && op1 == 0b1111111:
		// "A6.7.69 UDF" T2 encoding. permanently undefined; the sixteen-bit
		// immediate is kept for tooling
		imm := ((opcode & 0x000f0000) >> 4) | (opcode & 0x00000fff)
		return instruction.UDF{Imm: imm}

	case op2&0b101 == 0b101:
		// "A6.7.13 BL". the offset bits are scattered across both halfwords
		// and the I1/I2 bits are recovered from J1/J2 and the sign bit
		s := (opcode & 0x04000000) >> 26
		j1 := (opcode & 0x00002000) >> 13
		j2 := (opcode & 0x00000800) >> 11
		i1 := ^(j1 ^ s) & 0x01
		i2 := ^(j2 ^ s) & 0x01
		imm10 := (opcode & 0x03ff0000) >> 16
		imm11 := opcode & 0x000007ff

		imm := bits.Signed(
			bits.Part{Value: s, Width: 1},
			bits.Part{Value: i1, Width: 1},
			bits.Part{Value: i2, Width: 1},
			bits.Part{Value: imm10, Width: 10},
			bits.Part{Value: imm11, Width: 11},
			bits.Part{Width: 1},
		)
		return instruction.BL{Imm: imm}
	}

	return instruction.Undefined{Opcode: opcode}
}

func decodeThumb32MiscControl(opcode uint32) instruction.Operation {
	// "A5.3.1 Branch and miscellaneous control (miscellaneous control
	// instructions)" of "ARMv6-M ARM"
	op := (opcode & 0x000000f0) >> 4
	option := uint8(opcode & 0x0000000f)

	switch op {
	case 0b0100:
		// "A6.7.21 DSB"
		return instruction.DSB{Option: option}
	case 0b0101:
		// "A6.7.20 DMB"
		return instruction.DMB{Option: option}
	case 0b0110:
		// "A6.7.23 ISB"
		return instruction.ISB{Option: option}
	}

	return instruction.Undefined{Opcode: opcode}
}
