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

// Family identifies the coarse encoding family of the first halfword of an
// instruction. Every halfword belongs to exactly one family, including the
// family of 32bit instruction prefixes.
type Family int

// List of valid Family values.
const (
	FamilyShiftAddSubMoveCompare Family = iota
	FamilyDataProcessing
	FamilySpecialDataBranchExchange
	FamilyLoadFromLiteralPool
	FamilyLoadStoreSingle
	FamilyPCRelativeAddress
	FamilySPRelativeAddress
	FamilyMiscellaneous
	FamilyStoreMultiple
	FamilyLoadMultiple
	FamilyConditionalBranch
	FamilyUnconditionalBranch
	Family32bitPrefix
)

func (f Family) String() string {
	switch f {
	case FamilyShiftAddSubMoveCompare:
		return "shift/add/subtract/move/compare"
	case FamilyDataProcessing:
		return "data processing"
	case FamilySpecialDataBranchExchange:
		return "special data and branch exchange"
	case FamilyLoadFromLiteralPool:
		return "load from literal pool"
	case FamilyLoadStoreSingle:
		return "load/store single data item"
	case FamilyPCRelativeAddress:
		return "PC-relative address"
	case FamilySPRelativeAddress:
		return "SP-relative address"
	case FamilyMiscellaneous:
		return "miscellaneous"
	case FamilyStoreMultiple:
		return "store multiple"
	case FamilyLoadMultiple:
		return "load multiple"
	case FamilyConditionalBranch:
		return "conditional branch and supervisor call"
	case FamilyUnconditionalBranch:
		return "unconditional branch"
	case Family32bitPrefix:
		return "32bit instruction prefix"
	}
	return "unknown family"
}

// Is32bit returns true if the halfword is the first halfword of a 32bit
// instruction. The second halfword must be fetched before the instruction
// can be decoded with Decode32().
func Is32bit(opcode uint16) bool {
	return opcode&0xf800 == 0xe800 || opcode&0xf000 == 0xf000
}

// Classify returns the encoding family of the first halfword of an
// instruction. The classification is total: every possible halfword maps to
// exactly one family.
func Classify(opcode uint16) Family {
	// working backwards up the table in "A5.2 16-bit Thumb instruction
	// encoding" of "ARMv6-M ARM"
	if Is32bit(opcode) {
		return Family32bitPrefix
	} else if opcode&0xf800 == 0xe000 {
		return FamilyUnconditionalBranch
	} else if opcode&0xf000 == 0xd000 {
		return FamilyConditionalBranch
	} else if opcode&0xf800 == 0xc800 {
		return FamilyLoadMultiple
	} else if opcode&0xf800 == 0xc000 {
		return FamilyStoreMultiple
	} else if opcode&0xf000 == 0xb000 {
		return FamilyMiscellaneous
	} else if opcode&0xf800 == 0xa800 {
		return FamilySPRelativeAddress
	} else if opcode&0xf800 == 0xa000 {
		return FamilyPCRelativeAddress
	} else if opcode&0xe000 == 0x8000 || opcode&0xe000 == 0x6000 || opcode&0xf000 == 0x5000 {
		return FamilyLoadStoreSingle
	} else if opcode&0xf800 == 0x4800 {
		return FamilyLoadFromLiteralPool
	} else if opcode&0xfc00 == 0x4400 {
		return FamilySpecialDataBranchExchange
	} else if opcode&0xfc00 == 0x4000 {
		return FamilyDataProcessing
	}

	// all halfwords with the top two bits clear remain
	return FamilyShiftAddSubMoveCompare
}
