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
	"testing"

	"github.com/jetsetilly/armv6m"
	"github.com/jetsetilly/armv6m/instruction"
	"github.com/jetsetilly/armv6m/test"
)

// decode32 decodes a halfword pair that the test knows to begin with a 32bit
// instruction prefix and returns the operation.
func decode32(t *testing.T, upper uint16, lower uint16) instruction.Operation {
	t.Helper()
	ins, err := armv6m.Decode32(upper, lower)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Width, instruction.Width32)
	return ins.Op
}

func TestDecodeBL(t *testing.T) {
	// bl . -4
	test.ExpectDeepEquality(t, decode32(t, 0xf7ff, 0xfffe), instruction.BL{Imm: -4})

	// bl . +4
	test.ExpectDeepEquality(t, decode32(t, 0xf000, 0xf802), instruction.BL{Imm: 4})

	// bl . +0
	test.ExpectDeepEquality(t, decode32(t, 0xf000, 0xf800), instruction.BL{Imm: 0})

	// the largest backward offset
	test.ExpectDeepEquality(t, decode32(t, 0xf400, 0xd000), instruction.BL{Imm: -16777216})
}

func TestDecodeMSRMRS(t *testing.T) {
	// msr msp, r0
	test.ExpectDeepEquality(t, decode32(t, 0xf380, 0x8808),
		instruction.MSR{Rn: instruction.R0, Spec: instruction.MSP})

	// msr control, r5
	test.ExpectDeepEquality(t, decode32(t, 0xf385, 0x8814),
		instruction.MSR{Rn: instruction.R5, Spec: instruction.CONTROL})

	// mrs r0, primask
	test.ExpectDeepEquality(t, decode32(t, 0xf3ef, 0x8010),
		instruction.MRS{Rd: instruction.R0, Spec: instruction.PRIMASK})

	// mrs r2, xpsr
	test.ExpectDeepEquality(t, decode32(t, 0xf3ef, 0x8203),
		instruction.MRS{Rd: instruction.R2, Spec: instruction.XPSR})

	// a reserved SYSm value is not an architected special register
	test.ExpectDeepEquality(t, decode32(t, 0xf380, 0x880a),
		instruction.Undefined{Opcode: 0xf380880a})
	test.ExpectDeepEquality(t, decode32(t, 0xf3ef, 0x800f),
		instruction.Undefined{Opcode: 0xf3ef800f})
}

func TestDecodeBarriers(t *testing.T) {
	// dsb sy / dmb sy / isb sy
	test.ExpectDeepEquality(t, decode32(t, 0xf3bf, 0x8f4f), instruction.DSB{Option: 0xf})
	test.ExpectDeepEquality(t, decode32(t, 0xf3bf, 0x8f5f), instruction.DMB{Option: 0xf})
	test.ExpectDeepEquality(t, decode32(t, 0xf3bf, 0x8f6f), instruction.ISB{Option: 0xf})

	// the option field is preserved even when it is not SY
	test.ExpectDeepEquality(t, decode32(t, 0xf3bf, 0x8f40), instruction.DSB{Option: 0x0})

	// an op outside the three barriers is undefined
	test.ExpectDeepEquality(t, decode32(t, 0xf3bf, 0x8f0f),
		instruction.Undefined{Opcode: 0xf3bf8f0f})
}

func TestDecodeUDFWide(t *testing.T) {
	// udf.w #0. permanently undefined with the immediate preserved
	test.ExpectDeepEquality(t, decode32(t, 0xf7f0, 0xa000), instruction.UDF{Imm: 0})

	// the sixteen-bit immediate is assembled from imm4:imm12
	test.ExpectDeepEquality(t, decode32(t, 0xf7fa, 0xabcd), instruction.UDF{Imm: 0xabcd})
	test.ExpectDeepEquality(t, decode32(t, 0xf7ff, 0xafff), instruction.UDF{Imm: 0xffff})
}

func TestDecode32Undefined(t *testing.T) {
	// the large encoding groups that later architectures populate are
	// undefined here. load/store multiple
	test.ExpectDeepEquality(t, decode32(t, 0xe890, 0x0003),
		instruction.Undefined{Opcode: 0xe8900003})

	// data processing with the op bit clear in the second halfword
	test.ExpectDeepEquality(t, decode32(t, 0xf000, 0x0001),
		instruction.Undefined{Opcode: 0xf0000001})

	// coprocessor space
	test.ExpectDeepEquality(t, decode32(t, 0xfc00, 0x0000),
		instruction.Undefined{Opcode: 0xfc000000})
}
