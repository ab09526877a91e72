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

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
)

// decoder resolves the instruction at a given position in memory against the
// current value of the relative base.  A decoder is cheap to construct, and is
// recreated at every step.
type decoder struct {
	set    *Set
	memory memory.ReadOnlyMemory
	pc     uint64
	base   int64
	modes  Modes
}

// Decode the instruction at a given instruction pointer.  This fails with
// ErrBadOpCode if the word at that position is not a valid instruction under
// the given instruction set, and with ErrInvalidAddress if an operand resolves
// to a negative address.  Decoding never modifies memory, hence a failed
// decode has no effect on the machine.
func Decode(set *Set, mem memory.ReadOnlyMemory, pc uint64, base int64) (Instruction, error) {
	var (
		word = mem.Read(pc)
		op   = OpCodeOf(word)
		d    = decoder{set, mem, pc, base, ModesOf(word)}
	)
	// Sanity check opcode
	if arity, ok := op.Arity(); !ok || !set.Includes(op) {
		return nil, fmt.Errorf("opcode %d not in %s instruction set: %w", int64(op), set.Name(), fault.ErrBadOpCode)
	} else if err := d.checkModes(arity); err != nil {
		return nil, err
	}
	//
	return d.decode(op)
}

func (p *decoder) decode(op OpCode) (Instruction, error) {
	var (
		a, b   int64
		target uint64
		err    error
	)
	//
	switch op {
	case ADD, MUL, LESS_THAN, EQUALS:
		if a, err = p.source(1); err != nil {
			return nil, err
		} else if b, err = p.source(2); err != nil {
			return nil, err
		} else if target, err = p.destination(3); err != nil {
			return nil, err
		}
		//
		return binary(op, a, b, target), nil
	case INPUT:
		if target, err = p.destination(1); err != nil {
			return nil, err
		}
		//
		return &Input{target}, nil
	case OUTPUT:
		if a, err = p.source(1); err != nil {
			return nil, err
		}
		//
		return &Output{a}, nil
	case JUMP_IF_TRUE, JUMP_IF_FALSE:
		if a, err = p.source(1); err != nil {
			return nil, err
		} else if b, err = p.source(2); err != nil {
			return nil, err
		} else if op == JUMP_IF_TRUE {
			return &JumpIfTrue{a, b}, nil
		}
		//
		return &JumpIfFalse{a, b}, nil
	case ADJUST_BASE:
		if a, err = p.source(1); err != nil {
			return nil, err
		}
		//
		return &AdjustBase{a}, nil
	case HALT:
		return &Halt{}, nil
	}
	// Should be impossible, since opcodes were already checked.
	panic("unreachable")
}

// Check the addressing mode of every operand is permitted by the instruction
// set.  Digits beyond the arity of the instruction are ignored.
func (p *decoder) checkModes(arity uint) error {
	for i := uint(1); i <= arity; i++ {
		if mode := p.modes.Get(i); mode > RELATIVE || !p.set.Permits(mode) {
			return fmt.Errorf("operand %d has %s addressing: %w", i, mode, fault.ErrBadOpCode)
		}
	}
	//
	return nil
}

// Resolve the effective value of a source operand.
func (p *decoder) source(operand uint) (int64, error) {
	var raw = p.memory.Read(p.pc + uint64(operand))
	//
	switch p.modes.Get(operand) {
	case IMMEDIATE:
		return raw, nil
	case RELATIVE:
		raw += p.base
	}
	//
	if raw < 0 {
		return 0, fmt.Errorf("operand %d reads from address %d: %w", operand, raw, fault.ErrInvalidAddress)
	}
	//
	return p.memory.Read(uint64(raw)), nil
}

// Resolve the absolute address of a destination operand.  Immediate mode is
// never a valid destination.
func (p *decoder) destination(operand uint) (uint64, error) {
	var raw = p.memory.Read(p.pc + uint64(operand))
	//
	switch p.modes.Get(operand) {
	case IMMEDIATE:
		return 0, fmt.Errorf("operand %d is an immediate destination: %w", operand, fault.ErrBadOpCode)
	case RELATIVE:
		raw += p.base
	}
	//
	if raw < 0 {
		return 0, fmt.Errorf("operand %d writes to address %d: %w", operand, raw, fault.ErrInvalidAddress)
	}
	//
	return uint64(raw), nil
}

func binary(op OpCode, lhs int64, rhs int64, target uint64) Instruction {
	switch op {
	case ADD:
		return &Add{lhs, rhs, target}
	case MUL:
		return &Mul{lhs, rhs, target}
	case LESS_THAN:
		return &LessThan{lhs, rhs, target}
	default:
		return &Equals{lhs, rhs, target}
	}
}
