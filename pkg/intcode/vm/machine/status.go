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

// Status captures the lifecycle of a machine.  A machine starts RUNNING and
// moves between RUNNING and BLOCKED whilst it waits on input.  HALTED and
// FAULTED are terminal.
type Status int32

const (
	// RUNNING indicates the machine is executing instructions.
	RUNNING Status = iota
	// BLOCKED indicates the machine is waiting for a value on its input.
	BLOCKED
	// HALTED indicates the machine has executed a halt instruction.
	HALTED
	// FAULTED indicates the machine has terminated abnormally.
	FAULTED
)

// IsTerminal determines whether or not a machine in this status can make any
// further progress.
func (s Status) IsTerminal() bool {
	return s == HALTED || s == FAULTED
}

func (s Status) String() string {
	switch s {
	case RUNNING:
		return "running"
	case BLOCKED:
		return "blocked"
	case HALTED:
		return "halted"
	case FAULTED:
		return "faulted"
	default:
		return "unknown"
	}
}
