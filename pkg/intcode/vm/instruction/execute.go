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
	"github.com/consensys/go-intcode/pkg/intcode/vm/effect"
)

// Execute determines the effects of a decoded instruction, in the order they
// must be applied.  Execution itself is pure: it neither reads nor modifies the
// state of the machine.  Instead, the machine applies the returned effects
// before decoding the next instruction.
func Execute(insn Instruction) []effect.Effect {
	switch p := insn.(type) {
	case *Add:
		return []effect.Effect{effect.Write{Address: p.Target, Value: p.Lhs + p.Rhs}, effect.Advance{Slots: 4}}
	case *Mul:
		return []effect.Effect{effect.Write{Address: p.Target, Value: p.Lhs * p.Rhs}, effect.Advance{Slots: 4}}
	case *Input:
		return []effect.Effect{effect.Receive{Address: p.Target}, effect.Advance{Slots: 2}}
	case *Output:
		return []effect.Effect{effect.Send{Value: p.Value}, effect.Advance{Slots: 2}}
	case *JumpIfTrue:
		return branch(p.Condition != 0, p.Target)
	case *JumpIfFalse:
		return branch(p.Condition == 0, p.Target)
	case *LessThan:
		return []effect.Effect{effect.Write{Address: p.Target, Value: flag(p.Lhs < p.Rhs)}, effect.Advance{Slots: 4}}
	case *Equals:
		return []effect.Effect{effect.Write{Address: p.Target, Value: flag(p.Lhs == p.Rhs)}, effect.Advance{Slots: 4}}
	case *AdjustBase:
		return []effect.Effect{effect.AdjustBase{Delta: p.Delta}, effect.Advance{Slots: 2}}
	case *Halt:
		return []effect.Effect{effect.Stop{}}
	}
	//
	panic("unknown instruction")
}

func branch(taken bool, target int64) []effect.Effect {
	if taken {
		return []effect.Effect{effect.Jump{Target: target}}
	}
	//
	return []effect.Effect{effect.Advance{Slots: 3}}
}

func flag(holds bool) int64 {
	if holds {
		return 1
	}
	//
	return 0
}
