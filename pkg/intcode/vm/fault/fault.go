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
package fault

import (
	"errors"
	"fmt"
)

// ErrBadOpCode signals an instruction word which cannot be decoded, either
// because its opcode is unknown (or unsupported by the configured instruction
// set) or because one of its addressing modes is invalid.
var ErrBadOpCode = errors.New("bad opcode")

// ErrIOClosed signals an attempt to read from a channel whose producer has
// gone away, or to write into a channel which has already been closed.
var ErrIOClosed = errors.New("channel closed")

// ErrInvalidAddress signals an effective address which is negative or, for
// fixed-size memories, beyond the end of memory.
var ErrInvalidAddress = errors.New("invalid address")

// ErrMalformedLiteral signals a token which failed to parse as an integer.
var ErrMalformedLiteral = errors.New("malformed literal")

// Kind classifies a fault.
type Kind uint8

const (
	// Unknown is used for errors not arising from any of the sentinels above.
	Unknown Kind = iota
	// BadOpCode identifies an undecodable instruction.
	BadOpCode
	// IOClosed identifies a read from (or write to) a closed channel.
	IOClosed
	// InvalidAddress identifies an out-of-range memory access.
	InvalidAddress
	// MalformedLiteral identifies an unparseable integer token.
	MalformedLiteral
)

func (k Kind) String() string {
	switch k {
	case BadOpCode:
		return "BadOpCode"
	case IOClosed:
		return "IOClosed"
	case InvalidAddress:
		return "InvalidAddress"
	case MalformedLiteral:
		return "MalformedLiteral"
	default:
		return "Unknown"
	}
}

// KindOf determines the kind of a given error by matching it against the known
// sentinel errors.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrBadOpCode):
		return BadOpCode
	case errors.Is(err, ErrIOClosed):
		return IOClosed
	case errors.Is(err, ErrInvalidAddress):
		return InvalidAddress
	case errors.Is(err, ErrMalformedLiteral):
		return MalformedLiteral
	default:
		return Unknown
	}
}

// Fault provides structural information about a machine which terminated
// abnormally.  Faults are terminal: there is no recovery other than a full
// reset of the machine.
type Fault struct {
	// Name of the faulting machine.
	Machine string
	// Instruction pointer at the point of failure.
	PC uint64
	// Instruction word found at the instruction pointer.
	Word int64
	// Underlying cause, which wraps one of the sentinel errors.
	Err error
}

// New constructs a fault for a given machine position and cause.
func New(machine string, pc uint64, word int64, err error) *Fault {
	return &Fault{machine, pc, word, err}
}

// Kind returns the classification of this fault.
func (p *Fault) Kind() Kind {
	return KindOf(p.Err)
}

// Message provides a suitable error message
func (p *Fault) Message() string {
	return fmt.Sprintf("%s: %s at pc=%d (word %d): %s", p.Machine, p.Kind(), p.PC, p.Word, p.Err)
}

func (p *Fault) Error() string {
	return p.Message()
}

// Unwrap exposes the underlying cause so that errors.Is works against the
// sentinel errors.
func (p *Fault) Unwrap() error {
	return p.Err
}
