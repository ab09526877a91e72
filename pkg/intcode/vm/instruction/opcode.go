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

import "fmt"

// OpCode identifies an operation, and is held in the two least significant
// decimal digits of an instruction word.
type OpCode int64

const (
	// ADD computes dest := a + b
	ADD OpCode = 1
	// MUL computes dest := a * b
	MUL OpCode = 2
	// INPUT computes dest := recv()
	INPUT OpCode = 3
	// OUTPUT computes send(a)
	OUTPUT OpCode = 4
	// JUMP_IF_TRUE computes pc := target if cond != 0
	JUMP_IF_TRUE OpCode = 5
	// JUMP_IF_FALSE computes pc := target if cond == 0
	JUMP_IF_FALSE OpCode = 6
	// LESS_THAN computes dest := a < b
	LESS_THAN OpCode = 7
	// EQUALS computes dest := a == b
	EQUALS OpCode = 8
	// ADJUST_BASE computes base := base + a
	ADJUST_BASE OpCode = 9
	// HALT stops the machine
	HALT OpCode = 99
)

// OpCodeOf extracts the opcode from an instruction word.  Observe that the
// opcode of a negative word is itself negative, and hence never valid.
func OpCodeOf(word int64) OpCode {
	return OpCode(word % 100)
}

// Arity returns the number of operands taken by this opcode, or false if the
// opcode is unknown.
func (op OpCode) Arity() (uint, bool) {
	switch op {
	case ADD, MUL, LESS_THAN, EQUALS:
		return 3, true
	case JUMP_IF_TRUE, JUMP_IF_FALSE:
		return 2, true
	case INPUT, OUTPUT, ADJUST_BASE:
		return 1, true
	case HALT:
		return 0, true
	default:
		return 0, false
	}
}

func (op OpCode) String() string {
	switch op {
	case ADD:
		return "add"
	case MUL:
		return "mul"
	case INPUT:
		return "in"
	case OUTPUT:
		return "out"
	case JUMP_IF_TRUE:
		return "jnz"
	case JUMP_IF_FALSE:
		return "jz"
	case LESS_THAN:
		return "lt"
	case EQUALS:
		return "eq"
	case ADJUST_BASE:
		return "arb"
	case HALT:
		return "halt"
	default:
		return fmt.Sprintf("op%d", int64(op))
	}
}
