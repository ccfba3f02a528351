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

import (
	"fmt"
	"strings"
)

// Register is the index of one of the sixteen core registers. Register fields
// in an instruction encoding are three or four bits wide so decoding always
// produces a valid Register.
type Register uint8

// List of valid Register values. SP, LR and PC are the architectural names
// for R13, R14 and R15.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	SP
	LR
	PC
)

func (r Register) String() string {
	switch r {
	case SP:
		return "SP"
	case LR:
		return "LR"
	case PC:
		return "PC"
	}
	return fmt.Sprintf("R%d", uint8(r))
}

// RegisterList is the register list operand of the PUSH, POP, STM and LDM
// instructions. Bit n of the list corresponds to register Rn.
type RegisterList uint16

// Contains returns true if the register is in the list.
func (l RegisterList) Contains(r Register) bool {
	return l&(1<<uint16(r)) != 0
}

// List expands the bitmask into the registers it names, lowest numbered
// register first.
func (l RegisterList) List() []Register {
	var regs []Register
	for r := R0; r <= PC; r++ {
		if l.Contains(r) {
			regs = append(regs, r)
		}
	}
	return regs
}

func (l RegisterList) String() string {
	s := strings.Builder{}
	s.WriteRune('{')
	for i, r := range l.List() {
		if i > 0 {
			s.WriteRune(',')
		}
		s.WriteString(r.String())
	}
	s.WriteRune('}')
	return s.String()
}

// SpecialRegister is the SYSm operand of the MSR and MRS instructions.
type SpecialRegister uint8

// List of valid SpecialRegister values. The numbering is the SYSm encoding
// from "B4.2 System level registers" of "ARMv6-M ARM" and is not contiguous.
const (
	APSR    SpecialRegister = 0
	IAPSR   SpecialRegister = 1
	EAPSR   SpecialRegister = 2
	XPSR    SpecialRegister = 3
	IPSR    SpecialRegister = 5
	EPSR    SpecialRegister = 6
	IEPSR   SpecialRegister = 7
	MSP     SpecialRegister = 8
	PSP     SpecialRegister = 9
	PRIMASK SpecialRegister = 16
	CONTROL SpecialRegister = 20
)

// DecodeSpecialRegister converts a SYSm field value to a SpecialRegister. The
// ok return value is false if the SYSm value is reserved.
func DecodeSpecialRegister(sysm uint8) (SpecialRegister, bool) {
	switch SpecialRegister(sysm) {
	case APSR, IAPSR, EAPSR, XPSR, IPSR, EPSR, IEPSR, MSP, PSP, PRIMASK, CONTROL:
		return SpecialRegister(sysm), true
	}
	return 0, false
}

func (s SpecialRegister) String() string {
	switch s {
	case APSR:
		return "APSR"
	case IAPSR:
		return "IAPSR"
	case EAPSR:
		return "EAPSR"
	case XPSR:
		return "XPSR"
	case IPSR:
		return "IPSR"
	case EPSR:
		return "EPSR"
	case IEPSR:
		return "IEPSR"
	case MSP:
		return "MSP"
	case PSP:
		return "PSP"
	case PRIMASK:
		return "PRIMASK"
	case CONTROL:
		return "CONTROL"
	}
	return fmt.Sprintf("SYSm(%d)", uint8(s))
}
