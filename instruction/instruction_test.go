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

package instruction_test

import (
	"testing"

	"github.com/jetsetilly/armv6m/instruction"
	"github.com/jetsetilly/armv6m/test"
)

func TestWidth(t *testing.T) {
	ins := instruction.Instruction{
		Width: instruction.Width16,
		Op:    instruction.NOP{},
	}
	test.ExpectEquality(t, ins.Is16bit(), true)
	test.ExpectEquality(t, ins.Is32bit(), false)
	test.ExpectEquality(t, ins.Width.String(), "16bit")

	ins = instruction.Instruction{
		Width: instruction.Width32,
		Op:    instruction.BL{Imm: -4},
	}
	test.ExpectEquality(t, ins.Is16bit(), false)
	test.ExpectEquality(t, ins.Is32bit(), true)
	test.ExpectEquality(t, ins.Width.String(), "32bit")
}

func TestConditionString(t *testing.T) {
	test.ExpectEquality(t, instruction.EQ.String(), "EQ")
	test.ExpectEquality(t, instruction.AL.String(), "AL")
	test.ExpectEquality(t, instruction.Condition(15).String(), "condition(15)")
}
