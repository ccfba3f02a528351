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

// Operation is the decoded form of one instruction. The set of types
// implementing Operation is closed: one type per mnemonic and operand shape
// defined by the architecture, plus UDF and Undefined.
//
// Operand fields hold exactly the values that are architecturally
// significant to the instruction. Immediates are stored after any implicit
// scaling required by the encoding (eg. word-aligned load/store offsets are
// stored as byte offsets). Branch immediates are signed byte offsets
// relative to the PC value of the instruction.
type Operation interface {
	thumbOperation()
}

// shift (immediate), add, subtract, move and compare.
//
// "A5.2.1" of "ARMv6-M ARM"

// LSLImm is the LSL (immediate) instruction. A zero shift amount is not
// possible: that encoding is MOV (register) with flag setting, see MOVReg.
type LSLImm struct {
	Rd  Register
	Rm  Register
	Imm uint32
}

// LSRImm is the LSR (immediate) instruction.
type LSRImm struct {
	Rd  Register
	Rm  Register
	Imm uint32
}

// ASRImm is the ASR (immediate) instruction.
type ASRImm struct {
	Rd  Register
	Rm  Register
	Imm uint32
}

// ADDReg is the ADD (register) instruction. Both the low register encoding
// and the any-register encoding decode to this type.
type ADDReg struct {
	Rd Register
	Rn Register
	Rm Register
}

// SUBReg is the SUB (register) instruction.
type SUBReg struct {
	Rd Register
	Rn Register
	Rm Register
}

// ADDImm is the ADD (immediate) instruction. The three-bit and eight-bit
// immediate encodings decode to this type; the eight-bit form has Rd equal
// to Rn.
type ADDImm struct {
	Rd  Register
	Rn  Register
	Imm uint32
}

// SUBImm is the SUB (immediate) instruction.
type SUBImm struct {
	Rd  Register
	Rn  Register
	Imm uint32
}

// MOVImm is the MOV (immediate) instruction.
type MOVImm struct {
	Rd  Register
	Imm uint32
}

// CMPImm is the CMP (immediate) instruction.
type CMPImm struct {
	Rn  Register
	Imm uint32
}

// data processing.
//
// "A5.2.2" of "ARMv6-M ARM"

// ANDReg is the AND (register) instruction.
type ANDReg struct {
	Rdn Register
	Rm  Register
}

// EORReg is the EOR (register) instruction.
type EORReg struct {
	Rdn Register
	Rm  Register
}

// LSLReg is the LSL (register) instruction.
type LSLReg struct {
	Rdn Register
	Rm  Register
}

// LSRReg is the LSR (register) instruction.
type LSRReg struct {
	Rdn Register
	Rm  Register
}

// ASRReg is the ASR (register) instruction.
type ASRReg struct {
	Rdn Register
	Rm  Register
}

// ADCReg is the ADC (register) instruction. Rd always equals Rn in the
// 16-bit encoding.
type ADCReg struct {
	Rd Register
	Rn Register
	Rm Register
}

// SBCReg is the SBC (register) instruction.
type SBCReg struct {
	Rdn Register
	Rm  Register
}

// RORReg is the ROR (register) instruction.
type RORReg struct {
	Rdn Register
	Rm  Register
}

// TSTReg is the TST (register) instruction.
type TSTReg struct {
	Rn Register
	Rm Register
}

// RSBImm is the RSB (immediate) instruction. The immediate is always zero in
// the Thumb encoding so no immediate field is carried.
type RSBImm struct {
	Rd Register
	Rn Register
}

// CMPReg is the CMP (register) instruction. The low register encoding and
// the any-register encoding decode to this type.
type CMPReg struct {
	Rn Register
	Rm Register
}

// CMNReg is the CMN (register) instruction.
type CMNReg struct {
	Rn Register
	Rm Register
}

// ORRReg is the ORR (register) instruction.
type ORRReg struct {
	Rdn Register
	Rm  Register
}

// MUL is the MUL instruction.
type MUL struct {
	Rdm Register
	Rn  Register
}

// BICReg is the BIC (register) instruction.
type BICReg struct {
	Rdn Register
	Rm  Register
}

// MVNReg is the MVN (register) instruction.
type MVNReg struct {
	Rd Register
	Rm Register
}

// special data and branch exchange.
//
// "A5.2.3" of "ARMv6-M ARM"

// MOVReg is the MOV (register) instruction. SetFlags is true for the
// encoding in the shift (immediate) space and false for the any-register
// encoding.
type MOVReg struct {
	Rd       Register
	Rm       Register
	SetFlags bool
}

// ADDSPReg is the ADD (SP plus register) instruction. Either Rd is SP or the
// result of SP plus Rm is written back to Rm (in which case Rd equals Rm).
type ADDSPReg struct {
	Rd Register
	Rm Register
}

// BX is the BX instruction.
type BX struct {
	Rm Register
}

// BLXReg is the BLX (register) instruction.
type BLXReg struct {
	Rm Register
}

// load/store.
//
// "A5.2.4" of "ARMv6-M ARM"

// LDRLiteral is the LDR (literal) instruction. Imm is the byte offset from
// the word-aligned PC.
type LDRLiteral struct {
	Rt  Register
	Imm uint32
}

// STRReg is the STR (register) instruction.
type STRReg struct {
	Rt Register
	Rn Register
	Rm Register
}

// STRHReg is the STRH (register) instruction.
type STRHReg struct {
	Rt Register
	Rn Register
	Rm Register
}

// STRBReg is the STRB (register) instruction.
type STRBReg struct {
	Rt Register
	Rn Register
	Rm Register
}

// LDRSBReg is the LDRSB (register) instruction.
type LDRSBReg struct {
	Rt Register
	Rn Register
	Rm Register
}

// LDRReg is the LDR (register) instruction.
type LDRReg struct {
	Rt Register
	Rn Register
	Rm Register
}

// LDRHReg is the LDRH (register) instruction.
type LDRHReg struct {
	Rt Register
	Rn Register
	Rm Register
}

// LDRBReg is the LDRB (register) instruction.
type LDRBReg struct {
	Rt Register
	Rn Register
	Rm Register
}

// LDRSHReg is the LDRSH (register) instruction.
type LDRSHReg struct {
	Rt Register
	Rn Register
	Rm Register
}

// STRImm is the STR (immediate) instruction. The SP-relative encoding
// decodes to this type with Rn set to SP. Imm is a byte offset.
type STRImm struct {
	Rt  Register
	Rn  Register
	Imm uint32
}

// LDRImm is the LDR (immediate) instruction. The SP-relative encoding
// decodes to this type with Rn set to SP. Imm is a byte offset.
type LDRImm struct {
	Rt  Register
	Rn  Register
	Imm uint32
}

// STRBImm is the STRB (immediate) instruction.
type STRBImm struct {
	Rt  Register
	Rn  Register
	Imm uint32
}

// LDRBImm is the LDRB (immediate) instruction.
type LDRBImm struct {
	Rt  Register
	Rn  Register
	Imm uint32
}

// STRHImm is the STRH (immediate) instruction. Imm is a byte offset.
type STRHImm struct {
	Rt  Register
	Rn  Register
	Imm uint32
}

// LDRHImm is the LDRH (immediate) instruction. Imm is a byte offset.
type LDRHImm struct {
	Rt  Register
	Rn  Register
	Imm uint32
}

// address generation and SP adjustment

// ADR is the ADR instruction. Imm is the byte offset from the word-aligned
// PC.
type ADR struct {
	Rd  Register
	Imm uint32
}

// ADDSPImm is the ADD (SP plus immediate) instruction. Rd is SP for the
// SP-adjustment encoding. Imm is a byte offset.
type ADDSPImm struct {
	Rd  Register
	Imm uint32
}

// SUBSPImm is the SUB (SP minus immediate) instruction. The destination is
// always SP. Imm is a byte offset.
type SUBSPImm struct {
	Imm uint32
}

// miscellaneous 16-bit instructions.
//
// "A5.2.5" of "ARMv6-M ARM"

// SXTH is the SXTH instruction.
type SXTH struct {
	Rd Register
	Rm Register
}

// SXTB is the SXTB instruction.
type SXTB struct {
	Rd Register
	Rm Register
}

// UXTH is the UXTH instruction.
type UXTH struct {
	Rd Register
	Rm Register
}

// UXTB is the UXTB instruction.
type UXTB struct {
	Rd Register
	Rm Register
}

// PUSH is the PUSH instruction. The list may contain R0-R7 and LR.
type PUSH struct {
	List RegisterList
}

// POP is the POP instruction. The list may contain R0-R7 and PC.
type POP struct {
	List RegisterList
}

// CPS is the CPS instruction. Disable is true for CPSID and false for CPSIE.
type CPS struct {
	Disable bool
}

// REV is the REV instruction.
type REV struct {
	Rd Register
	Rm Register
}

// REV16 is the REV16 instruction.
type REV16 struct {
	Rd Register
	Rm Register
}

// REVSH is the REVSH instruction.
type REVSH struct {
	Rd Register
	Rm Register
}

// BKPT is the BKPT instruction.
type BKPT struct {
	Imm uint32
}

// hints

// NOP is the NOP hint.
type NOP struct{}

// YIELD is the YIELD hint.
type YIELD struct{}

// WFE is the WFE hint.
type WFE struct{}

// WFI is the WFI hint.
type WFI struct{}

// SEV is the SEV hint.
type SEV struct{}

// load/store multiple

// STM is the STM instruction. Writeback to Rn is always implied by the
// 16-bit encoding.
type STM struct {
	Rn   Register
	List RegisterList
}

// LDM is the LDM instruction. Writeback to Rn is implied unless Rn is in the
// list.
type LDM struct {
	Rn   Register
	List RegisterList
}

// branches and supervisor call

// B is the B instruction. The unconditional encoding decodes with Cond set
// to AL. Imm is a signed byte offset and includes the implicit zero bit of
// the encoding.
type B struct {
	Cond Condition
	Imm  int32
}

// SVC is the SVC instruction.
type SVC struct {
	Imm uint32
}

// 32bit instructions.
//
// "A5.3.1" of "ARMv6-M ARM"

// BL is the BL instruction. Imm is a signed byte offset and includes the
// implicit zero bit of the encoding.
type BL struct {
	Imm int32
}

// MSR is the MSR (register) instruction.
type MSR struct {
	Rn   Register
	Spec SpecialRegister
}

// MRS is the MRS instruction.
type MRS struct {
	Rd   Register
	Spec SpecialRegister
}

// DSB is the DSB instruction. Option is the four-bit option field; only
// 0b1111 (SY) is architecturally assigned.
type DSB struct {
	Option uint8
}

// DMB is the DMB instruction.
type DMB struct {
	Option uint8
}

// ISB is the ISB instruction.
type ISB struct {
	Option uint8
}

// undefined encodings

// UDF is the permanently undefined instruction. The architecture reserves
// the encoding as a deliberate trap. The immediate has no architectural
// effect but is preserved for tooling: the 16-bit encoding carries eight
// bits, the 32-bit encoding sixteen.
type UDF struct {
	Imm uint32
}

// Undefined is any bit pattern not claimed by a defined instruction or by
// UDF. Opcode holds the raw bits: one halfword for a 16-bit encoding, both
// halfwords (first halfword in the upper sixteen bits) for a 32-bit
// encoding.
type Undefined struct {
	Opcode uint32
}

func (LSLImm) thumbOperation()     {}
func (LSRImm) thumbOperation()     {}
func (ASRImm) thumbOperation()     {}
func (ADDReg) thumbOperation()     {}
func (SUBReg) thumbOperation()     {}
func (ADDImm) thumbOperation()     {}
func (SUBImm) thumbOperation()     {}
func (MOVImm) thumbOperation()     {}
func (CMPImm) thumbOperation()     {}
func (ANDReg) thumbOperation()     {}
func (EORReg) thumbOperation()     {}
func (LSLReg) thumbOperation()     {}
func (LSRReg) thumbOperation()     {}
func (ASRReg) thumbOperation()     {}
func (ADCReg) thumbOperation()     {}
func (SBCReg) thumbOperation()     {}
func (RORReg) thumbOperation()     {}
func (TSTReg) thumbOperation()     {}
func (RSBImm) thumbOperation()     {}
func (CMPReg) thumbOperation()     {}
func (CMNReg) thumbOperation()     {}
func (ORRReg) thumbOperation()     {}
func (MUL) thumbOperation()        {}
func (BICReg) thumbOperation()     {}
func (MVNReg) thumbOperation()     {}
func (MOVReg) thumbOperation()     {}
func (ADDSPReg) thumbOperation()   {}
func (BX) thumbOperation()         {}
func (BLXReg) thumbOperation()     {}
func (LDRLiteral) thumbOperation() {}
func (STRReg) thumbOperation()     {}
func (STRHReg) thumbOperation()    {}
func (STRBReg) thumbOperation()    {}
func (LDRSBReg) thumbOperation()   {}
func (LDRReg) thumbOperation()     {}
func (LDRHReg) thumbOperation()    {}
func (LDRBReg) thumbOperation()    {}
func (LDRSHReg) thumbOperation()   {}
func (STRImm) thumbOperation()     {}
func (LDRImm) thumbOperation()     {}
func (STRBImm) thumbOperation()    {}
func (LDRBImm) thumbOperation()    {}
func (STRHImm) thumbOperation()    {}
func (LDRHImm) thumbOperation()    {}
func (ADR) thumbOperation()        {}
func (ADDSPImm) thumbOperation()   {}
func (SUBSPImm) thumbOperation()   {}
func (SXTH) thumbOperation()       {}
func (SXTB) thumbOperation()       {}
func (UXTH) thumbOperation()       {}
func (UXTB) thumbOperation()       {}
func (PUSH) thumbOperation()       {}
func (POP) thumbOperation()        {}
func (CPS) thumbOperation()        {}
func (REV) thumbOperation()        {}
func (REV16) thumbOperation()      {}
func (REVSH) thumbOperation()      {}
func (BKPT) thumbOperation()       {}
func (NOP) thumbOperation()        {}
func (YIELD) thumbOperation()      {}
func (WFE) thumbOperation()        {}
func (WFI) thumbOperation()        {}
func (SEV) thumbOperation()        {}
func (STM) thumbOperation()        {}
func (LDM) thumbOperation()        {}
func (B) thumbOperation()          {}
func (SVC) thumbOperation()        {}
func (BL) thumbOperation()         {}
func (MSR) thumbOperation()        {}
func (MRS) thumbOperation()        {}
func (DSB) thumbOperation()        {}
func (DMB) thumbOperation()        {}
func (ISB) thumbOperation()        {}
func (UDF) thumbOperation()        {}
func (Undefined) thumbOperation()  {}
