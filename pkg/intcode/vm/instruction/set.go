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
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set describes an instruction set, that is the opcodes and addressing modes
// understood by a given variant of the machine.  Instructions outside of the
// set are rejected by the decoder, exactly as for unknown opcodes.
type Set struct {
	name    string
	opcodes *bitset.BitSet
	modes   *bitset.BitSet
}

// BASIC is the original instruction set: addition, multiplication and halt,
// with all operands read by position.
var BASIC = NewSet("basic", []Mode{POSITION}, ADD, MUL, HALT)

// STANDARD extends BASIC with I/O, conditional jumps and comparisons, along
// with immediate operands.
var STANDARD = NewSet("standard", []Mode{POSITION, IMMEDIATE},
	ADD, MUL, INPUT, OUTPUT, JUMP_IF_TRUE, JUMP_IF_FALSE, LESS_THAN, EQUALS, HALT)

// EXTENDED extends STANDARD with the relative base register.
var EXTENDED = NewSet("extended", []Mode{POSITION, IMMEDIATE, RELATIVE},
	ADD, MUL, INPUT, OUTPUT, JUMP_IF_TRUE, JUMP_IF_FALSE, LESS_THAN, EQUALS, ADJUST_BASE, HALT)

// NewSet constructs a new instruction set from the given modes and opcodes.
func NewSet(name string, modes []Mode, opcodes ...OpCode) *Set {
	var (
		ops = bitset.New(uint(HALT) + 1)
		ms  = bitset.New(uint(RELATIVE) + 1)
	)
	//
	for _, op := range opcodes {
		if _, ok := op.Arity(); !ok {
			panic("unknown opcode in instruction set")
		}
		//
		ops.Set(uint(op))
	}
	//
	for _, m := range modes {
		ms.Set(uint(m))
	}
	//
	return &Set{name, ops, ms}
}

// Name returns the name of this instruction set.
func (p *Set) Name() string {
	return p.name
}

// Includes determines whether a given opcode is part of this instruction set.
func (p *Set) Includes(op OpCode) bool {
	return op >= 0 && p.opcodes.Test(uint(op))
}

// Permits determines whether a given addressing mode is part of this
// instruction set.
func (p *Set) Permits(mode Mode) bool {
	return p.modes.Test(uint(mode))
}

// OpCodes returns the opcodes making up this set, in ascending order.
func (p *Set) OpCodes() []OpCode {
	var ops []OpCode
	//
	for i, ok := p.opcodes.NextSet(0); ok; i, ok = p.opcodes.NextSet(i + 1) {
		ops = append(ops, OpCode(i))
	}
	//
	return ops
}

func (p *Set) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.name)
	builder.WriteString("{")
	//
	for i, op := range p.OpCodes() {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(op.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
