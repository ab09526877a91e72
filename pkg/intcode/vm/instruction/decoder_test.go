// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package instruction

import (
	"math/rand"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===================================================================
// Modes
// ===================================================================

func Test_Modes_01(t *testing.T) {
	modes := ModesOf(1002)
	assert.Equal(t, POSITION, modes.Get(1))
	assert.Equal(t, IMMEDIATE, modes.Get(2))
	assert.Equal(t, POSITION, modes.Get(3))
}

func Test_Modes_02(t *testing.T) {
	modes := ModesOf(21101)
	assert.Equal(t, IMMEDIATE, modes.Get(1))
	assert.Equal(t, IMMEDIATE, modes.Get(2))
	assert.Equal(t, RELATIVE, modes.Get(3))
	// Missing digits default to position
	assert.Equal(t, POSITION, modes.Get(4))
}

func Test_Modes_03(t *testing.T) {
	assert.Equal(t, ADD, OpCodeOf(21101))
	assert.Equal(t, HALT, OpCodeOf(99))
	assert.Equal(t, OpCode(-1), OpCodeOf(-1))
}

// ===================================================================
// Decoding
// ===================================================================

func Test_Decode_Add_01(t *testing.T) {
	checkDecode(t, EXTENDED, 0, 0, []int64{1, 5, 6, 7, 99, 10, 20, 0}, &Add{10, 20, 7})
}

func Test_Decode_Mul_01(t *testing.T) {
	checkDecode(t, EXTENDED, 0, 0, []int64{1102, 34915192, 34915192, 7, 4, 7, 99, 0},
		&Mul{34915192, 34915192, 7})
}

func Test_Decode_Input_01(t *testing.T) {
	checkDecode(t, STANDARD, 0, 0, []int64{3, 15}, &Input{15})
}

func Test_Decode_Input_02(t *testing.T) {
	checkDecode(t, EXTENDED, 3, 3, []int64{3, 0, 0, 203, -1}, &Input{2})
}

func Test_Decode_Output_01(t *testing.T) {
	checkDecode(t, EXTENDED, 0, 0, []int64{104, 1125899906842624, 99}, &Output{1125899906842624})
}

func Test_Decode_Output_02(t *testing.T) {
	// relative base is 1, so reads address 0.
	checkDecode(t, EXTENDED, 0, 1, []int64{204, -1}, &Output{204})
}

func Test_Decode_Output_03(t *testing.T) {
	checkDecode(t, EXTENDED, 2, 1, []int64{109, 1, 204, -1}, &Output{109})
}

func Test_Decode_Jump_01(t *testing.T) {
	checkDecode(t, STANDARD, 0, 0, []int64{1105, 1, 9}, &JumpIfTrue{1, 9})
	checkDecode(t, STANDARD, 0, 0, []int64{1106, 0, 9}, &JumpIfFalse{0, 9})
}

func Test_Decode_Compare_01(t *testing.T) {
	checkDecode(t, STANDARD, 0, 0, []int64{1107, 7, 8, 3}, &LessThan{7, 8, 3})
	checkDecode(t, STANDARD, 0, 0, []int64{1108, 8, 8, 3}, &Equals{8, 8, 3})
}

func Test_Decode_Base_01(t *testing.T) {
	checkDecode(t, EXTENDED, 0, 0, []int64{109, 19}, &AdjustBase{19})
}

func Test_Decode_Halt_01(t *testing.T) {
	checkDecode(t, BASIC, 0, 0, []int64{99}, &Halt{})
}

func Test_Decode_Invalid_01(t *testing.T) {
	// Unknown opcode
	checkDecodeFails(t, EXTENDED, []int64{42}, fault.ErrBadOpCode)
	checkDecodeFails(t, EXTENDED, []int64{-1}, fault.ErrBadOpCode)
	// Reading past end of memory gives opcode 0
	checkDecodeFails(t, EXTENDED, []int64{}, fault.ErrBadOpCode)
}

func Test_Decode_Invalid_02(t *testing.T) {
	// Opcodes outside the instruction set
	checkDecodeFails(t, BASIC, []int64{3, 0}, fault.ErrBadOpCode)
	checkDecodeFails(t, STANDARD, []int64{109, 0}, fault.ErrBadOpCode)
}

func Test_Decode_Invalid_03(t *testing.T) {
	// Modes outside the instruction set
	checkDecodeFails(t, BASIC, []int64{1101, 1, 1, 0}, fault.ErrBadOpCode)
	checkDecodeFails(t, STANDARD, []int64{204, 0}, fault.ErrBadOpCode)
	// Unknown mode digit
	checkDecodeFails(t, EXTENDED, []int64{304, 0}, fault.ErrBadOpCode)
}

func Test_Decode_Invalid_04(t *testing.T) {
	// Immediate destination
	checkDecodeFails(t, EXTENDED, []int64{11101, 1, 1, 0}, fault.ErrBadOpCode)
	checkDecodeFails(t, EXTENDED, []int64{103, 0}, fault.ErrBadOpCode)
}

func Test_Decode_Invalid_05(t *testing.T) {
	// Negative addresses
	checkDecodeFails(t, EXTENDED, []int64{4, -1}, fault.ErrInvalidAddress)
	checkDecodeFails(t, EXTENDED, []int64{3, -5}, fault.ErrInvalidAddress)
	checkDecodeFails(t, EXTENDED, []int64{203, -5}, fault.ErrInvalidAddress)
}

func Test_Decode_Unused_Modes_01(t *testing.T) {
	// Mode digits beyond the arity of an instruction are ignored
	checkDecode(t, STANDARD, 0, 0, []int64{11199}, &Halt{})
}

// ===================================================================
// Addressing Mode Equivalence
// ===================================================================

// Substituting an immediate operand for the value a position operand would
// read produces an identical instruction, and hence identical effects.
func Test_Decode_Equivalence_01(t *testing.T) {
	var rng = rand.New(rand.NewSource(1))
	//
	for _, op := range []OpCode{ADD, MUL, LESS_THAN, EQUALS, OUTPUT, JUMP_IF_TRUE, JUMP_IF_FALSE, ADJUST_BASE} {
		for i := 0; i < 100; i++ {
			checkEquivalence(t, op, rng)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkDecode(t *testing.T, set *Set, pc uint64, base int64, program []int64, expected Instruction) {
	mem := memory.NewRam("test", program...)
	//
	insn, err := Decode(set, mem, pc, base)
	require.NoError(t, err)
	assert.Equal(t, expected, insn)
}

func checkDecodeFails(t *testing.T, set *Set, program []int64, expected error) {
	mem := memory.NewRam("test", program...)
	//
	insn, err := Decode(set, mem, 0, 0)
	require.ErrorIs(t, err, expected)
	assert.Nil(t, insn)
}

// Construct a random instruction of the given opcode using position operands,
// then substitute each source operand in turn with the immediate value it
// resolves to.
func checkEquivalence(t *testing.T, op OpCode, rng *rand.Rand) {
	var (
		arity, _ = op.Arity()
		// Operand values live at addresses 10, 11, 12.
		program = []int64{int64(op), 10, 11, 12, 0, 0, 0, 0, 0, 0, rng.Int63n(2000) - 1000,
			rng.Int63n(2000) - 1000, rng.Int63n(3)}
		original = decodeProgram(t, program)
	)
	//
	for operand := uint(1); operand <= arity; operand++ {
		if isDestination(op, operand) {
			continue
		}
		//
		var (
			variant = make([]int64, len(program))
			scale   = int64(100)
		)
		//
		copy(variant, program)
		//
		for i := uint(1); i < operand; i++ {
			scale *= 10
		}
		// Switch operand to immediate mode, holding the value it would read
		variant[0] += scale
		variant[operand] = program[program[operand]]
		//
		assert.Equal(t, original, decodeProgram(t, variant), "operand %d of %v", operand, variant)
		assert.Equal(t, Execute(original), Execute(decodeProgram(t, variant)))
	}
}

func decodeProgram(t *testing.T, program []int64) Instruction {
	insn, err := Decode(EXTENDED, memory.NewRam("test", program...), 0, 0)
	require.NoError(t, err)
	//
	return insn
}

func isDestination(op OpCode, operand uint) bool {
	switch op {
	case ADD, MUL, LESS_THAN, EQUALS:
		return operand == 3
	case INPUT:
		return operand == 1
	default:
		return false
	}
}
