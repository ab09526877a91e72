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
package machine

import (
	"fmt"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/vm/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
)

// Config determines the variant of machine being executed.  All variants
// share the same core, differing only in the instruction set they accept and
// whether or not memory grows on demand.
type Config struct {
	// Instructions understood by the machine.
	Set *instruction.Set
	// Indicates whether writing beyond the end of memory extends it (true), or
	// faults (false).
	Growable bool
}

// BASIC is the original variant, which computes a single result in memory.
var BASIC = Config{instruction.BASIC, false}

// STANDARD is the variant with I/O, jumps and comparisons.
var STANDARD = Config{instruction.STANDARD, false}

// EXTENDED is the variant with the relative base register and growable
// memory.
var EXTENDED = Config{instruction.EXTENDED, true}

// CONFIGS lists the named variants, in order of increasing capability.
var CONFIGS = []Config{BASIC, STANDARD, EXTENDED}

// GetConfig returns the named variant, or false if no such variant exists.
func GetConfig(name string) (Config, bool) {
	for _, c := range CONFIGS {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}
	//
	return Config{}, false
}

// Name returns the name of this variant.
func (p Config) Name() string {
	return p.Set.Name()
}

// NewMemory constructs a memory for this variant holding the given words.
func (p Config) NewMemory(name string, words ...int64) memory.Memory {
	if p.Growable {
		return memory.NewRam(name, words...)
	}
	//
	return memory.NewFixed(name, words...)
}

func (p Config) String() string {
	return fmt.Sprintf("%s (growable=%t)", p.Set, p.Growable)
}
