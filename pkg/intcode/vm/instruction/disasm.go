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
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
)

// Line represents a single line of a disassembly, covering one or more
// consecutive words of memory.
type Line struct {
	// Address of first word covered by this line.
	Address uint64
	// Words covered by this line.
	Words []int64
	// Indicates whether these words form a valid instruction, or are treated
	// as data.
	Valid bool
}

// Disassemble memory into a sequence of lines, reading linearly from address
// zero.  Words which do not form a valid instruction for the given set (or
// which would run off the end of memory) are treated as data, occupying one
// line each.  Since instructions and data are freely mixed, this is only ever
// a best guess.
func Disassemble(set *Set, mem memory.ReadOnlyMemory) []Line {
	var lines []Line
	//
	for pc := uint64(0); pc < mem.Len(); {
		width := uint64(1)
		arity, valid := checkSyntax(set, mem.Read(pc))
		//
		if valid && pc+uint64(arity) < mem.Len() {
			width += uint64(arity)
		} else {
			valid = false
		}
		//
		words := make([]int64, width)
		for i := range words {
			words[i] = mem.Read(pc + uint64(i))
		}
		//
		lines = append(lines, Line{pc, words, valid})
		pc += width
	}
	//
	return lines
}

// Determine whether a given word forms a syntactically valid instruction
// header for a given set, returning its arity if so.
func checkSyntax(set *Set, word int64) (uint, bool) {
	var op = OpCodeOf(word)
	//
	arity, ok := op.Arity()
	//
	if !ok || !set.Includes(op) {
		return 0, false
	}
	//
	modes := ModesOf(word)
	//
	for i := uint(1); i <= arity; i++ {
		if m := modes.Get(i); m > RELATIVE || !set.Permits(m) {
			return 0, false
		}
	}
	//
	return arity, true
}

func (p Line) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("%04d: ", p.Address))
	//
	if !p.Valid {
		builder.WriteString(fmt.Sprintf("data %d", p.Words[0]))
		return builder.String()
	}
	//
	op := OpCodeOf(p.Words[0])
	modes := ModesOf(p.Words[0])
	builder.WriteString(op.String())
	//
	for i, w := range p.Words[1:] {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		//
		switch modes.Get(uint(i + 1)) {
		case IMMEDIATE:
			builder.WriteString(fmt.Sprintf("%d", w))
		case RELATIVE:
			builder.WriteString(fmt.Sprintf("[rb%+d]", w))
		default:
			builder.WriteString(fmt.Sprintf("[%d]", w))
		}
	}
	//
	return builder.String()
}
