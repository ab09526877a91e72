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
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
	"github.com/stretchr/testify/assert"
)

func Test_Disasm_01(t *testing.T) {
	checkDisasm(t, EXTENDED, []int64{1, 9, 10, 3, 99},
		"0000: add [9], [10], [3]",
		"0004: halt")
}

func Test_Disasm_02(t *testing.T) {
	checkDisasm(t, EXTENDED, []int64{109, 1, 204, -1, 1105, 1, 7, 99},
		"0000: arb 1",
		"0002: out [rb-1]",
		"0004: jnz 1, 7",
		"0007: halt")
}

func Test_Disasm_03(t *testing.T) {
	// Relative mode not supported, and truncated instruction
	checkDisasm(t, STANDARD, []int64{204, -1, 1, 0},
		"0000: data 204",
		"0001: data -1",
		"0002: data 1",
		"0003: data 0")
}

func Test_Disasm_04(t *testing.T) {
	// Invalid mode digit
	checkDisasm(t, EXTENDED, []int64{304, 0, 99},
		"0000: data 304",
		"0001: data 0",
		"0002: halt")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkDisasm(t *testing.T, set *Set, words []int64, expected ...string) {
	lines := Disassemble(set, memory.NewRam("test", words...))
	//
	actual := make([]string, len(lines))
	for i, l := range lines {
		actual[i] = l.String()
	}
	//
	assert.Equal(t, expected, actual)
}
