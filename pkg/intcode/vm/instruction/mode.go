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

// Mode determines how the encoded value of an operand maps to its effective
// value.
type Mode uint8

const (
	// POSITION treats the operand as an address to be read from (or written
	// to).
	POSITION Mode = 0
	// IMMEDIATE treats the operand as a literal value.  This is only valid
	// for source operands.
	IMMEDIATE Mode = 1
	// RELATIVE treats the operand as an offset from the relative base.
	RELATIVE Mode = 2
)

func (m Mode) String() string {
	switch m {
	case POSITION:
		return "position"
	case IMMEDIATE:
		return "immediate"
	case RELATIVE:
		return "relative"
	default:
		return fmt.Sprintf("mode%d", uint8(m))
	}
}

// Modes holds the addressing modes of an instruction word, encoded as the
// decimal digits of word / 100.  The least significant digit corresponds with
// the first operand, and so on.
type Modes int64

// ModesOf extracts the addressing modes from an instruction word.
func ModesOf(word int64) Modes {
	return Modes(word / 100)
}

// Get the addressing mode of the ith operand (counting from 1).  Missing digits
// default to POSITION.  Observe that a digit larger than RELATIVE is returned
// as is, and must be rejected by the caller.
func (m Modes) Get(operand uint) Mode {
	digits := int64(m)
	//
	for ; operand > 1; operand-- {
		digits /= 10
	}
	//
	return Mode(digits % 10)
}
