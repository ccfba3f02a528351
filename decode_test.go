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

package armv6m_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/jetsetilly/armv6m"
	"github.com/jetsetilly/armv6m/instruction"
	"github.com/jetsetilly/armv6m/test"
)

func TestDecodeErrors(t *testing.T) {
	// the first halfword of a 32bit instruction cannot be decoded on its own
	_, err := armv6m.Decode(0xf000)
	test.DemandFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, armv6m.ErrMissingSecondHalfword), true)

	_, err = armv6m.Decode(0xe800)
	test.ExpectEquality(t, errors.Is(err, armv6m.ErrMissingSecondHalfword), true)

	// a complete 16bit instruction cannot be the first halfword of a 32bit
	// instruction
	_, err = armv6m.Decode32(0x4611, 0xf000)
	test.DemandFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, armv6m.ErrUnexpectedSecondHalfword), true)

	// the unconditional branch is not a prefix
	_, err = armv6m.Decode32(0xe7fe, 0x0000)
	test.ExpectEquality(t, errors.Is(err, armv6m.ErrUnexpectedSecondHalfword), true)
}

// every halfword either decodes to an operation or is the first half of a
// 32bit instruction. there is no third outcome
func TestDecodeTotal(t *testing.T) {
	for opcode := 0; opcode <= 0xffff; opcode++ {
		ins, err := armv6m.Decode(uint16(opcode))

		if armv6m.Is32bit(uint16(opcode)) {
			if !errors.Is(err, armv6m.ErrMissingSecondHalfword) {
				t.Fatalf("decode of prefix halfword %04x did not error", opcode)
			}
			continue
		}

		if err != nil {
			t.Fatalf("decode of halfword %04x errored: %v", opcode, err)
		}
		if ins.Op == nil {
			t.Fatalf("decode of halfword %04x produced no operation", opcode)
		}
		if ins.Width != instruction.Width16 {
			t.Fatalf("decode of halfword %04x produced a %s instruction", opcode, ins.Width)
		}
	}
}

// decoding is pure. the same halfword always decodes to the same value
func TestDecodeDeterministic(t *testing.T) {
	for opcode := 0; opcode <= 0xffff; opcode++ {
		if armv6m.Is32bit(uint16(opcode)) {
			continue
		}
		a, _ := armv6m.Decode(uint16(opcode))
		b, _ := armv6m.Decode(uint16(opcode))
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("repeated decode of halfword %04x produced different values", opcode)
		}
	}
}

// sweeping the halfword space must reach every operation type with a 16bit
// encoding
func TestDecodeReachability(t *testing.T) {
	reached := make(map[string]bool)
	for opcode := 0; opcode <= 0xffff; opcode++ {
		if armv6m.Is32bit(uint16(opcode)) {
			continue
		}
		ins, err := armv6m.Decode(uint16(opcode))
		test.DemandSuccess(t, err)
		reached[fmt.Sprintf("%T", ins.Op)] = true
	}

	// every operation with a 16bit encoding plus the Undefined operation.
	// BL, MSR, MRS and the barriers only have 32bit encodings
	test.ExpectEquality(t, len(reached), 69)

	for _, op := range []instruction.Operation{
		instruction.MOVReg{}, instruction.ADDSPReg{}, instruction.UDF{},
		instruction.SVC{}, instruction.CPS{}, instruction.Undefined{},
	} {
		if !reached[fmt.Sprintf("%T", op)] {
			t.Errorf("operation type %T not reached by the halfword sweep", op)
		}
	}
}

// every halfword pair beginning with a prefix decodes to an operation
func TestDecode32Total(t *testing.T) {
	// sweeping the full 32bit space takes too long for a unit test. every
	// prefix halfword is paired with second halfwords chosen to land in
	// each arm of the 32bit decoder
	lowers := []uint16{0x0000, 0x0fff, 0x8000, 0x8808, 0x8f4f, 0xd000, 0xf802, 0xffff}

	for upper := 0; upper <= 0xffff; upper++ {
		if !armv6m.Is32bit(uint16(upper)) {
			continue
		}
		for _, lower := range lowers {
			ins, err := armv6m.Decode32(uint16(upper), lower)
			if err != nil {
				t.Fatalf("decode of %04x%04x errored: %v", upper, lower, err)
			}
			if ins.Op == nil {
				t.Fatalf("decode of %04x%04x produced no operation", upper, lower)
			}
			if ins.Width != instruction.Width32 {
				t.Fatalf("decode of %04x%04x produced a %s instruction", upper, lower, ins.Width)
			}
		}
	}
}
