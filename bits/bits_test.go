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

package bits_test

import (
	"testing"

	"github.com/jetsetilly/armv6m/bits"
	"github.com/jetsetilly/armv6m/test"
)

func TestField(t *testing.T) {
	test.ExpectEquality(t, bits.Field(0xffffffff, 0, 32), uint32(0xffffffff))
	test.ExpectEquality(t, bits.Field(0x12345678, 0, 4), uint32(0x8))
	test.ExpectEquality(t, bits.Field(0x12345678, 4, 4), uint32(0x7))
	test.ExpectEquality(t, bits.Field(0x12345678, 28, 4), uint32(0x1))
	test.ExpectEquality(t, bits.Field(0x0000d0ff, 8, 4), uint32(0x0))
	test.ExpectEquality(t, bits.Field(0x0000d0ff, 12, 4), uint32(0xd))
}

func TestSignExtend(t *testing.T) {
	test.ExpectEquality(t, bits.SignExtend(0x1, 1), int32(-1))
	test.ExpectEquality(t, bits.SignExtend(0x1, 2), int32(1))
	test.ExpectEquality(t, bits.SignExtend(0x9, 4), int32(-7))
	test.ExpectEquality(t, bits.SignExtend(0x9, 5), int32(9))
	test.ExpectEquality(t, bits.SignExtend(0xff, 8), int32(-1))
	test.ExpectEquality(t, bits.SignExtend(0x7f, 8), int32(127))
	test.ExpectEquality(t, bits.SignExtend(0x80, 8), int32(-128))
}

func TestSignedField(t *testing.T) {
	// the condition branch offset field: imm8 at bit 0
	test.ExpectEquality(t, bits.SignedField(0x0000d0fe, 0, 8), int32(-2))
	test.ExpectEquality(t, bits.SignedField(0x0000d001, 0, 8), int32(1))

	// a field away from bit 0
	test.ExpectEquality(t, bits.SignedField(0x00000380, 6, 3), int32(-2))
}

func TestSigned(t *testing.T) {
	// single part with the sign bit set
	test.ExpectEquality(t, bits.Signed(bits.Part{Value: 0xff, Width: 8}), int32(-1))

	// a trailing zero part supplies the implicit low-order zero of branch
	// encodings. the offset doubles and stays negative
	test.ExpectEquality(t, bits.Signed(
		bits.Part{Value: 0xff, Width: 8},
		bits.Part{Width: 1},
	), int32(-2))

	// positive value is unaffected by sign extension
	test.ExpectEquality(t, bits.Signed(
		bits.Part{Value: 0x3c, Width: 8},
		bits.Part{Width: 1},
	), int32(120))

	// the scattered immediate of the BL instruction. S, I1, I2, imm10,
	// imm11 and the implicit zero. all bits set gives an offset of -4
	test.ExpectEquality(t, bits.Signed(
		bits.Part{Value: 0x1, Width: 1},
		bits.Part{Value: 0x1, Width: 1},
		bits.Part{Value: 0x1, Width: 1},
		bits.Part{Value: 0x3ff, Width: 10},
		bits.Part{Value: 0x7fe, Width: 11},
		bits.Part{Width: 1},
	), int32(-4))

	// only the low bits of each part contribute
	test.ExpectEquality(t, bits.Signed(bits.Part{Value: 0xffffff01, Width: 8}), int32(1))
}
