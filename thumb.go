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
	"fmt"

	"github.com/jetsetilly/armv6m/bits"
	"github.com/jetsetilly/armv6m/instruction"
	"github.com/jetsetilly/armv6m/logger"
)

// decodeThumb decodes a complete 16bit instruction. The caller must have
// rejected 32bit instruction prefixes with Is32bit() before calling.
func decodeThumb(opcode uint16) instruction.Operation {
	switch Classify(opcode) {
	case FamilyShiftAddSubMoveCompare:
		return decodeThumbShiftAddSubMoveCompare(opcode)
	case FamilyDataProcessing:
		return decodeThumbDataProcessing(opcode)
	case FamilySpecialDataBranchExchange:
		return decodeThumbSpecialDataBranchExchange(opcode)
	case FamilyLoadFromLiteralPool:
		// "A6.7.26 LDR (literal)" of "ARMv6-M ARM"
		Rt := instruction.Register((opcode & 0x0700) >> 8)
		imm := uint32(opcode&0x00ff) << 2
		return instruction.LDRLiteral{Rt: Rt, Imm: imm}
	case FamilyLoadStoreSingle:
		return decodeThumbLoadStoreSingle(opcode)
	case FamilyPCRelativeAddress:
		// "A6.7.6 ADR" of "ARMv6-M ARM"
		Rd := instruction.Register((opcode & 0x0700) >> 8)
		imm := uint32(opcode&0x00ff) << 2
		return instruction.ADR{Rd: Rd, Imm: imm}
	case FamilySPRelativeAddress:
		// "A6.7.4 ADD (SP plus immediate)" T1 encoding
		Rd := instruction.Register((opcode & 0x0700) >> 8)
		imm := uint32(opcode&0x00ff) << 2
		return instruction.ADDSPImm{Rd: Rd, Imm: imm}
	case FamilyMiscellaneous:
		return decodeThumbMiscellaneous(opcode)
	case FamilyStoreMultiple:
		// "A6.7.55 STM" of "ARMv6-M ARM"
		Rn := instruction.Register((opcode & 0x0700) >> 8)
		return instruction.STM{Rn: Rn, List: instruction.RegisterList(opcode & 0x00ff)}
	case FamilyLoadMultiple:
		// "A6.7.24 LDM" of "ARMv6-M ARM"
		Rn := instruction.Register((opcode & 0x0700) >> 8)
		return instruction.LDM{Rn: Rn, List: instruction.RegisterList(opcode & 0x00ff)}
	case FamilyConditionalBranch:
		return decodeThumbConditionalBranch(opcode)
	case FamilyUnconditionalBranch:
		// "A6.7.10 B" T2 encoding. the offset is a twelve-bit two's
		// complement value with an implicit low-order zero
		imm := bits.Signed(
			bits.Part{Value: uint32(opcode & 0x07ff), Width: 11},
			bits.Part{Width: 1},
		)
		return instruction.B{Cond: instruction.AL, Imm: imm}
	}

	panic(fmt.Sprintf("16bit decode of 32bit instruction prefix (%04x)", opcode))
}

func decodeThumbShiftAddSubMoveCompare(opcode uint16) instruction.Operation {
	// "A5.2.1 Shift (immediate), add, subtract, move, and compare" of "ARMv6-M ARM"
	op := (opcode & 0x3e00) >> 9

	switch {
	case op&0b11100 == 0b00000:
		// "A6.7.34 LSL (immediate)"
		imm := uint32((opcode & 0x07c0) >> 6)
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		if imm == 0 {
			// a zero shift is "A6.7.39 MOV (register)" T2 encoding
			return instruction.MOVReg{Rd: Rd, Rm: Rm, SetFlags: true}
		}
		return instruction.LSLImm{Rd: Rd, Rm: Rm, Imm: imm}
	case op&0b11100 == 0b00100:
		// "A6.7.36 LSR (immediate)"
		imm := uint32((opcode & 0x07c0) >> 6)
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.LSRImm{Rd: Rd, Rm: Rm, Imm: imm}
	case op&0b11100 == 0b01000:
		// "A6.7.8 ASR (immediate)"
		imm := uint32((opcode & 0x07c0) >> 6)
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.ASRImm{Rd: Rd, Rm: Rm, Imm: imm}
	case op == 0b01100:
		// "A6.7.3 ADD (register)" T1 encoding
		Rm := instruction.Register((opcode & 0x01c0) >> 6)
		Rn := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.ADDReg{Rd: Rd, Rn: Rn, Rm: Rm}
	case op == 0b01101:
		// "A6.7.63 SUB (register)"
		Rm := instruction.Register((opcode & 0x01c0) >> 6)
		Rn := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.SUBReg{Rd: Rd, Rn: Rn, Rm: Rm}
	case op == 0b01110:
		// "A6.7.2 ADD (immediate)" T1 encoding
		imm := uint32((opcode & 0x01c0) >> 6)
		Rn := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.ADDImm{Rd: Rd, Rn: Rn, Imm: imm}
	case op == 0b01111:
		// "A6.7.62 SUB (immediate)" T1 encoding
		imm := uint32((opcode & 0x01c0) >> 6)
		Rn := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.SUBImm{Rd: Rd, Rn: Rn, Imm: imm}
	case op&0b11100 == 0b10000:
		// "A6.7.38 MOV (immediate)"
		Rd := instruction.Register((opcode & 0x0700) >> 8)
		return instruction.MOVImm{Rd: Rd, Imm: uint32(opcode & 0x00ff)}
	case op&0b11100 == 0b10100:
		// "A6.7.17 CMP (immediate)"
		Rn := instruction.Register((opcode & 0x0700) >> 8)
		return instruction.CMPImm{Rn: Rn, Imm: uint32(opcode & 0x00ff)}
	case op&0b11100 == 0b11000:
		// "A6.7.2 ADD (immediate)" T2 encoding. the destination is also the
		// first operand
		Rdn := instruction.Register((opcode & 0x0700) >> 8)
		return instruction.ADDImm{Rd: Rdn, Rn: Rdn, Imm: uint32(opcode & 0x00ff)}
	}

	// op&0b11100 == 0b11100
	// "A6.7.62 SUB (immediate)" T2 encoding
	Rdn := instruction.Register((opcode & 0x0700) >> 8)
	return instruction.SUBImm{Rd: Rdn, Rn: Rdn, Imm: uint32(opcode & 0x00ff)}
}

func decodeThumbDataProcessing(opcode uint16) instruction.Operation {
	// "A5.2.2 Data processing" of "ARMv6-M ARM"
	op := (opcode & 0x03c0) >> 6
	Rm := instruction.Register((opcode & 0x0038) >> 3)
	Rdn := instruction.Register(opcode & 0x0007)

	switch op {
	case 0b0000:
		return instruction.ANDReg{Rdn: Rdn, Rm: Rm}
	case 0b0001:
		return instruction.EORReg{Rdn: Rdn, Rm: Rm}
	case 0b0010:
		return instruction.LSLReg{Rdn: Rdn, Rm: Rm}
	case 0b0011:
		return instruction.LSRReg{Rdn: Rdn, Rm: Rm}
	case 0b0100:
		return instruction.ASRReg{Rdn: Rdn, Rm: Rm}
	case 0b0101:
		return instruction.ADCReg{Rd: Rdn, Rn: Rdn, Rm: Rm}
	case 0b0110:
		return instruction.SBCReg{Rdn: Rdn, Rm: Rm}
	case 0b0111:
		return instruction.RORReg{Rdn: Rdn, Rm: Rm}
	case 0b1000:
		return instruction.TSTReg{Rn: Rdn, Rm: Rm}
	case 0b1001:
		// "A6.7.52 RSB (immediate)". the second operand is always zero
		return instruction.RSBImm{Rd: Rdn, Rn: Rm}
	case 0b1010:
		return instruction.CMPReg{Rn: Rdn, Rm: Rm}
	case 0b1011:
		return instruction.CMNReg{Rn: Rdn, Rm: Rm}
	case 0b1100:
		return instruction.ORRReg{Rdn: Rdn, Rm: Rm}
	case 0b1101:
		return instruction.MUL{Rdm: Rdn, Rn: Rm}
	case 0b1110:
		return instruction.BICReg{Rdn: Rdn, Rm: Rm}
	}

	// op == 0b1111
	return instruction.MVNReg{Rd: Rdn, Rm: Rm}
}

func decodeThumbSpecialDataBranchExchange(opcode uint16) instruction.Operation {
	// "A5.2.3 Special data instructions and branch and exchange" of "ARMv6-M ARM"
	op := (opcode & 0x03c0) >> 6

	switch {
	case op&0b1100 == 0b0000:
		// "A6.7.3 ADD (register)" T2 encoding, with the SP forms split out
		// as "A6.7.5 ADD (SP plus register)"
		Rm := instruction.Register((opcode & 0x0078) >> 3)
		Rdn := instruction.Register((opcode & 0x0007) | ((opcode & 0x0080) >> 4))
		if Rm == instruction.SP {
			// T1: the result of SP plus Rdn is written back to Rdn
			return instruction.ADDSPReg{Rd: Rdn, Rm: Rdn}
		}
		if Rdn == instruction.SP {
			// T2: SP plus Rm written to SP
			return instruction.ADDSPReg{Rd: instruction.SP, Rm: Rm}
		}
		return instruction.ADDReg{Rd: Rdn, Rn: Rdn, Rm: Rm}
	case op == 0b0100:
		// unpredictable
		logger.Logf("thumb", "unpredictable special data encoding (%04x)", opcode)
		return instruction.Undefined{Opcode: uint32(opcode)}
	case op&0b1100 == 0b0100:
		// "A6.7.18 CMP (register)" T2 encoding
		Rm := instruction.Register((opcode & 0x0078) >> 3)
		Rn := instruction.Register((opcode & 0x0007) | ((opcode & 0x0080) >> 4))
		return instruction.CMPReg{Rn: Rn, Rm: Rm}
	case op&0b1100 == 0b1000:
		// "A6.7.39 MOV (register)" T1 encoding. flags are not set
		Rm := instruction.Register((opcode & 0x0078) >> 3)
		Rd := instruction.Register((opcode & 0x0007) | ((opcode & 0x0080) >> 4))
		return instruction.MOVReg{Rd: Rd, Rm: Rm, SetFlags: false}
	case op&0b1110 == 0b1100:
		// "A6.7.15 BX"
		Rm := instruction.Register((opcode & 0x0078) >> 3)
		return instruction.BX{Rm: Rm}
	}

	// op&0b1110 == 0b1110
	// "A6.7.14 BLX (register)"
	Rm := instruction.Register((opcode & 0x0078) >> 3)
	return instruction.BLXReg{Rm: Rm}
}

func decodeThumbLoadStoreSingle(opcode uint16) instruction.Operation {
	// "A5.2.4 Load/store single data item" of "ARMv6-M ARM"
	opA := (opcode & 0xf000) >> 12
	opB := (opcode & 0x0e00) >> 9

	switch opA {
	case 0b0101:
		// register offset forms
		Rm := instruction.Register((opcode & 0x01c0) >> 6)
		Rn := instruction.Register((opcode & 0x0038) >> 3)
		Rt := instruction.Register(opcode & 0x0007)

		switch opB {
		case 0b000:
			return instruction.STRReg{Rt: Rt, Rn: Rn, Rm: Rm}
		case 0b001:
			return instruction.STRHReg{Rt: Rt, Rn: Rn, Rm: Rm}
		case 0b010:
			return instruction.STRBReg{Rt: Rt, Rn: Rn, Rm: Rm}
		case 0b011:
			return instruction.LDRSBReg{Rt: Rt, Rn: Rn, Rm: Rm}
		case 0b100:
			return instruction.LDRReg{Rt: Rt, Rn: Rn, Rm: Rm}
		case 0b101:
			return instruction.LDRHReg{Rt: Rt, Rn: Rn, Rm: Rm}
		case 0b110:
			return instruction.LDRBReg{Rt: Rt, Rn: Rn, Rm: Rm}
		}
		return instruction.LDRSHReg{Rt: Rt, Rn: Rn, Rm: Rm}

	case 0b0110:
		// "A6.7.56/A6.7.25 STR/LDR (immediate)" T1 encoding. the five-bit
		// immediate is a word offset
		imm := uint32((opcode&0x07c0)>>6) << 2
		Rn := instruction.Register((opcode & 0x0038) >> 3)
		Rt := instruction.Register(opcode & 0x0007)
		if opB&0b100 == 0b100 {
			return instruction.LDRImm{Rt: Rt, Rn: Rn, Imm: imm}
		}
		return instruction.STRImm{Rt: Rt, Rn: Rn, Imm: imm}

	case 0b0111:
		// "A6.7.58/A6.7.28 STRB/LDRB (immediate)". byte offset
		imm := uint32((opcode & 0x07c0) >> 6)
		Rn := instruction.Register((opcode & 0x0038) >> 3)
		Rt := instruction.Register(opcode & 0x0007)
		if opB&0b100 == 0b100 {
			return instruction.LDRBImm{Rt: Rt, Rn: Rn, Imm: imm}
		}
		return instruction.STRBImm{Rt: Rt, Rn: Rn, Imm: imm}

	case 0b1000:
		// "A6.7.60/A6.7.30 STRH/LDRH (immediate)". halfword offset
		imm := uint32((opcode&0x07c0)>>6) << 1
		Rn := instruction.Register((opcode & 0x0038) >> 3)
		Rt := instruction.Register(opcode & 0x0007)
		if opB&0b100 == 0b100 {
			return instruction.LDRHImm{Rt: Rt, Rn: Rn, Imm: imm}
		}
		return instruction.STRHImm{Rt: Rt, Rn: Rn, Imm: imm}

	case 0b1001:
		// "A6.7.56/A6.7.25 STR/LDR (immediate)" T2 encoding. SP-relative
		// with a word offset
		Rt := instruction.Register((opcode & 0x0700) >> 8)
		imm := uint32(opcode&0x00ff) << 2
		if opB&0b100 == 0b100 {
			return instruction.LDRImm{Rt: Rt, Rn: instruction.SP, Imm: imm}
		}
		return instruction.STRImm{Rt: Rt, Rn: instruction.SP, Imm: imm}
	}

	panic(fmt.Sprintf("load/store decode of halfword outside the load/store family (%04x)", opcode))
}

func decodeThumbMiscellaneous(opcode uint16) instruction.Operation {
	// "A5.2.5 Miscellaneous 16-bit instructions" of "ARMv6-M ARM"
	op := (opcode & 0x0fe0) >> 5

	switch {
	case op&0b1111100 == 0b0000000:
		// "A6.7.4 ADD (SP plus immediate)" T2 encoding
		imm := uint32(opcode&0x007f) << 2
		return instruction.ADDSPImm{Rd: instruction.SP, Imm: imm}
	case op&0b1111100 == 0b0000100:
		// "A6.7.64 SUB (SP minus immediate)"
		imm := uint32(opcode&0x007f) << 2
		return instruction.SUBSPImm{Imm: imm}
	case op&0b1111110 == 0b0010000:
		// "A6.7.67 SXTH"
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.SXTH{Rd: Rd, Rm: Rm}
	case op&0b1111110 == 0b0010010:
		// "A6.7.66 SXTB"
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.SXTB{Rd: Rd, Rm: Rm}
	case op&0b1111110 == 0b0010100:
		// "A6.7.71 UXTH"
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.UXTH{Rd: Rd, Rm: Rm}
	case op&0b1111110 == 0b0010110:
		// "A6.7.70 UXTB"
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.UXTB{Rd: Rd, Rm: Rm}
	case op&0b1110000 == 0b0100000:
		// "A6.7.47 PUSH". the M bit adds LR to the list
		list := instruction.RegisterList(((opcode & 0x0100) << 6) | (opcode & 0x00ff))
		return instruction.PUSH{List: list}
	case op == 0b0110011:
		// "A6.7.19 CPS" of "ARMv6-M ARM"
		return instruction.CPS{Disable: opcode&0x0010 == 0x0010}
	case op&0b1111110 == 0b1010000:
		// "A6.7.48 REV"
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.REV{Rd: Rd, Rm: Rm}
	case op&0b1111110 == 0b1010010:
		// "A6.7.49 REV16"
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.REV16{Rd: Rd, Rm: Rm}
	case op&0b1111110 == 0b1010110:
		// "A6.7.50 REVSH"
		Rm := instruction.Register((opcode & 0x0038) >> 3)
		Rd := instruction.Register(opcode & 0x0007)
		return instruction.REVSH{Rd: Rd, Rm: Rm}
	case op&0b1110000 == 0b1100000:
		// "A6.7.46 POP". the P bit adds PC to the list
		list := instruction.RegisterList(((opcode & 0x0100) << 7) | (opcode & 0x00ff))
		return instruction.POP{List: list}
	case op&0b1111000 == 0b1110000:
		// "A6.7.12 BKPT"
		return instruction.BKPT{Imm: uint32(opcode & 0x00ff)}
	case op&0b1111000 == 0b1111000:
		return decodeThumbHints(opcode)
	}

	return instruction.Undefined{Opcode: uint32(opcode)}
}

func decodeThumbHints(opcode uint16) instruction.Operation {
	// "A5.2.5 Miscellaneous 16-bit instructions (hint instructions)" of "ARMv6-M ARM"
	opA := (opcode & 0x00f0) >> 4
	opB := opcode & 0x000f

	if opB != 0 {
		// unallocated hint
		logger.Logf("thumb", "unallocated hint (%04x)", opcode)
		return instruction.Undefined{Opcode: uint32(opcode)}
	}

	switch opA {
	case 0b0000:
		return instruction.NOP{}
	case 0b0001:
		return instruction.YIELD{}
	case 0b0010:
		return instruction.WFE{}
	case 0b0011:
		return instruction.WFI{}
	case 0b0100:
		return instruction.SEV{}
	}

	logger.Logf("thumb", "unallocated hint (%04x)", opcode)
	return instruction.Undefined{Opcode: uint32(opcode)}
}

func decodeThumbConditionalBranch(opcode uint16) instruction.Operation {
	// "A5.2.6 Conditional branch, and supervisor call" of "ARMv6-M ARM"
	op := (opcode & 0x0f00) >> 8

	switch op {
	case 0b1110:
		// "A6.7.69 UDF" T1 encoding. permanently undefined; the immediate
		// is kept for tooling
		return instruction.UDF{Imm: uint32(opcode & 0x00ff)}
	case 0b1111:
		// "A6.7.65 SVC"
		return instruction.SVC{Imm: uint32(opcode & 0x00ff)}
	}

	// "A6.7.10 B" T1 encoding. the offset is a nine-bit two's complement
	// value with an implicit low-order zero
	imm := bits.Signed(
		bits.Part{Value: uint32(opcode & 0x00ff), Width: 8},
		bits.Part{Width: 1},
	)
	return instruction.B{Cond: instruction.Condition(op), Imm: imm}
}
