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
	"fmt"
)

// Instruction provides an abstract notion of a decoded machine instruction.
// That is, an opcode whose operands have already been resolved against the
// state of the machine at the point of decoding: source operands hold their
// effective values, and destination operands hold absolute addresses.  Decoded
// instructions are ephemeral, being recomputed at every step.  The set of
// instructions is closed, and consumed by Execute.
type Instruction interface {
	// OpCode identifies the operation performed by this instruction.
	OpCode() OpCode
	// Provide human readable form of instruction
	String() string
	// Marker preventing implementations outside this package.
	instruction()
}

// Add represents dest := lhs + rhs
type Add struct {
	Lhs, Rhs int64
	Target   uint64
}

// Mul represents dest := lhs * rhs
type Mul struct {
	Lhs, Rhs int64
	Target   uint64
}

// Input represents dest := recv()
type Input struct {
	Target uint64
}

// Output represents send(value)
type Output struct {
	Value int64
}

// JumpIfTrue represents a conditional branch taken when the condition is
// non-zero.  The target is left unchecked since, when the branch is not taken,
// it is irrelevant.
type JumpIfTrue struct {
	Condition int64
	Target    int64
}

// JumpIfFalse represents a conditional branch taken when the condition is zero.
type JumpIfFalse struct {
	Condition int64
	Target    int64
}

// LessThan represents dest := lhs < rhs ? 1 : 0
type LessThan struct {
	Lhs, Rhs int64
	Target   uint64
}

// Equals represents dest := lhs == rhs ? 1 : 0
type Equals struct {
	Lhs, Rhs int64
	Target   uint64
}

// AdjustBase represents base := base + delta
type AdjustBase struct {
	Delta int64
}

// Halt stops the machine.
type Halt struct{}

// OpCode implementation for Instruction interface.
func (p *Add) OpCode() OpCode { return ADD }

// OpCode implementation for Instruction interface.
func (p *Mul) OpCode() OpCode { return MUL }

// OpCode implementation for Instruction interface.
func (p *Input) OpCode() OpCode { return INPUT }

// OpCode implementation for Instruction interface.
func (p *Output) OpCode() OpCode { return OUTPUT }

// OpCode implementation for Instruction interface.
func (p *JumpIfTrue) OpCode() OpCode { return JUMP_IF_TRUE }

// OpCode implementation for Instruction interface.
func (p *JumpIfFalse) OpCode() OpCode { return JUMP_IF_FALSE }

// OpCode implementation for Instruction interface.
func (p *LessThan) OpCode() OpCode { return LESS_THAN }

// OpCode implementation for Instruction interface.
func (p *Equals) OpCode() OpCode { return EQUALS }

// OpCode implementation for Instruction interface.
func (p *AdjustBase) OpCode() OpCode { return ADJUST_BASE }

// OpCode implementation for Instruction interface.
func (p *Halt) OpCode() OpCode { return HALT }

func (p *Add) instruction()         {}
func (p *Mul) instruction()         {}
func (p *Input) instruction()       {}
func (p *Output) instruction()      {}
func (p *JumpIfTrue) instruction()  {}
func (p *JumpIfFalse) instruction() {}
func (p *LessThan) instruction()    {}
func (p *Equals) instruction()      {}
func (p *AdjustBase) instruction()  {}
func (p *Halt) instruction()        {}

func (p *Add) String() string {
	return binaryToString(ADD, p.Lhs, p.Rhs, p.Target)
}

func (p *Mul) String() string {
	return binaryToString(MUL, p.Lhs, p.Rhs, p.Target)
}

func (p *Input) String() string {
	return fmt.Sprintf("%s -> [%d]", INPUT, p.Target)
}

func (p *Output) String() string {
	return fmt.Sprintf("%s %d", OUTPUT, p.Value)
}

func (p *JumpIfTrue) String() string {
	return fmt.Sprintf("%s %d, %d", JUMP_IF_TRUE, p.Condition, p.Target)
}

func (p *JumpIfFalse) String() string {
	return fmt.Sprintf("%s %d, %d", JUMP_IF_FALSE, p.Condition, p.Target)
}

func (p *LessThan) String() string {
	return binaryToString(LESS_THAN, p.Lhs, p.Rhs, p.Target)
}

func (p *Equals) String() string {
	return binaryToString(EQUALS, p.Lhs, p.Rhs, p.Target)
}

func (p *AdjustBase) String() string {
	return fmt.Sprintf("%s %d", ADJUST_BASE, p.Delta)
}

func (p *Halt) String() string {
	return HALT.String()
}

func binaryToString(op OpCode, lhs int64, rhs int64, target uint64) string {
	return fmt.Sprintf("%s %d, %d -> [%d]", op, lhs, rhs, target)
}
