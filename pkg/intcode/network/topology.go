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
package network

import "strings"

// Topology determines how the amplifiers of a network are connected.
type Topology uint8

const (
	// LINEAR chains amplifiers one after another, such that the output of the
	// final amplifier is the result.
	LINEAR Topology = iota
	// FEEDBACK chains amplifiers as for LINEAR, but additionally routes every
	// output of the final amplifier back into the first.
	FEEDBACK
)

// ParseTopology converts the name of a topology into a topology, or returns
// false if the name is unknown.
func ParseTopology(name string) (Topology, bool) {
	switch strings.ToLower(name) {
	case "linear":
		return LINEAR, true
	case "feedback":
		return FEEDBACK, true
	default:
		return LINEAR, false
	}
}

func (p Topology) String() string {
	if p == FEEDBACK {
		return "feedback"
	}
	//
	return "linear"
}
