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

// Package armv6m decodes ARMv6-M Thumb machine code into typed instruction
// values. The decoder covers the instruction set of Cortex-M0 and
// Cortex-M0+ class cores.
//
// The caller supplies already assembled halfwords. Is32bit() says whether a
// halfword is a complete 16bit instruction or the first half of a 32bit
// instruction; Decode() and Decode32() produce an instruction.Instruction
// accordingly:
//
//	if armv6m.Is32bit(hw) {
//		ins, err := armv6m.Decode32(hw, nextHalfword())
//		...
//	} else {
//		ins, err := armv6m.Decode(hw)
//		...
//	}
//
// Decoding is total. Every bit pattern decodes to exactly one operation,
// with patterns that no defined instruction claims decoding to
// instruction.Undefined and the architecturally reserved trap encodings
// decoding to instruction.UDF. The returned error only ever reports a
// broken caller contract: asking for a 16bit decode of a 32bit prefix, or a
// 32bit decode of a complete 16bit instruction.
//
// Decoding is a pure function of the input bits. There is no state shared
// between calls and the package is safe for concurrent use.
//
// Rendering decoded instructions as text, executing them, and reading them
// from object files are jobs for the consumers of this package.
package armv6m
