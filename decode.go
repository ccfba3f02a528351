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
	"errors"
	"fmt"

	"github.com/jetsetilly/armv6m/instruction"
)

// Sentinel errors returned by Decode() and Decode32(). Both indicate a
// broken caller contract, never a property of the bit pattern being decoded.
var (
	// ErrMissingSecondHalfword is returned by Decode() when the halfword is
	// the first half of a 32bit instruction
	ErrMissingSecondHalfword = errors.New("missing second halfword")

	// ErrUnexpectedSecondHalfword is returned by Decode32() when the first
	// halfword is a complete 16bit instruction
	ErrUnexpectedSecondHalfword = errors.New("unexpected second halfword")
)

// Decode a complete 16bit instruction from a single halfword. Every halfword
// decodes to an Instruction, including the Undefined and UDF operations. The
// only error condition is the halfword being the first half of a 32bit
// instruction, in which case the caller should fetch the next halfword and
// use Decode32().
//
// Is32bit() can be used before calling to learn which of the two entry
// points applies.
func Decode(opcode uint16) (instruction.Instruction, error) {
	if Is32bit(opcode) {
		return instruction.Instruction{}, fmt.Errorf("decode: %w: %04x", ErrMissingSecondHalfword, opcode)
	}

	return instruction.Instruction{
		Width: instruction.Width16,
		Op:    decodeThumb(opcode),
	}, nil
}

// Decode32 decodes a 32bit instruction from its two halfwords, first
// halfword first. Every halfword pair decodes to an Instruction, including
// the Undefined and UDF operations. The only error condition is the first
// halfword not being a 32bit instruction prefix.
//
// Assembling the halfwords from the byte stream, including byte order, is
// the caller's responsibility.
func Decode32(upper uint16, lower uint16) (instruction.Instruction, error) {
	if !Is32bit(upper) {
		return instruction.Instruction{}, fmt.Errorf("decode: %w: %04x is a complete 16bit instruction", ErrUnexpectedSecondHalfword, upper)
	}

	return instruction.Instruction{
		Width: instruction.Width32,
		Op:    decodeThumb32(uint32(upper)<<16 | uint32(lower)),
	}, nil
}
