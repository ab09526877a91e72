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
package effect

import "fmt"

// Effect represents a single, atomic change to the state of an executing
// machine.  Executing an instruction produces an ordered list of effects which
// the machine then applies in order.  All mutation of machine state is thereby
// centralised in one place (the machine), whilst the semantics of each
// instruction remain pure.  The set of effects is closed.
type Effect interface {
	fmt.Stringer
	effect()
}

// Write a value to a given (absolute) address in memory.
type Write struct {
	Address uint64
	Value   int64
}

// Advance the instruction pointer by a given number of words.
type Advance struct {
	Slots uint64
}

// Jump moves the instruction pointer to a given target.  The target is
// checked when the effect is applied, since it may be negative.
type Jump struct {
	Target int64
}

// AdjustBase adds a given delta to the relative base register.
type AdjustBase struct {
	Delta int64
}

// Receive blocks until the next value is available on the input channel, and
// then writes it to a given address in memory.
type Receive struct {
	Address uint64
}

// Send a given value on the output channel.
type Send struct {
	Value int64
}

// Stop halts the machine.
type Stop struct{}

func (Write) effect()      {}
func (Advance) effect()    {}
func (Jump) effect()       {}
func (AdjustBase) effect() {}
func (Receive) effect()    {}
func (Send) effect()       {}
func (Stop) effect()       {}

func (p Write) String() string {
	return fmt.Sprintf("[%d] := %d", p.Address, p.Value)
}

func (p Advance) String() string {
	return fmt.Sprintf("pc += %d", p.Slots)
}

func (p Jump) String() string {
	return fmt.Sprintf("pc := %d", p.Target)
}

func (p AdjustBase) String() string {
	return fmt.Sprintf("base += %d", p.Delta)
}

func (p Receive) String() string {
	return fmt.Sprintf("[%d] := recv()", p.Address)
}

func (p Send) String() string {
	return fmt.Sprintf("send(%d)", p.Value)
}

func (p Stop) String() string {
	return "stop"
}
