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

// Package instruction defines the decoded form of every instruction in the
// ARMv6-M Thumb instruction set.
//
// The Instruction type pairs the width of the encoding with an Operation
// value. Operation is a closed interface. Exactly one Operation type exists
// for each mnemonic and operand shape in the architecture; encodings that
// differ only in which register numbers or immediate ranges they can express
// decode to the same Operation type.
//
// Two Operation types do not correspond to architecturally defined
// instructions. UDF is the permanently undefined encoding, a deliberate trap
// reserved by the architecture, and carries the immediate payload found in
// the encoding. Undefined represents every other bit pattern that no defined
// instruction claims and carries the raw opcode bits for diagnostic use.
//
// Values in this package are immutable once created and carry no state
// beyond the decoded operand fields.
package instruction
