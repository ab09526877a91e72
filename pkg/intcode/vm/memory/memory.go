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
package memory

// ReadOnlyMemory represents a view of memory which can be read, but not
// written.  This is all the decoder requires in order to resolve the operands of
// an instruction.
type ReadOnlyMemory interface {
	// Name returns the name of this memory
	Name() string
	// Read the word at a given address.  Any address beyond the current
	// length of memory reads as zero.
	Read(address uint64) int64
	// Len returns the number of words currently held in this memory.
	Len() uint64
}

// Memory represents the working memory of a machine.  Initially, memory holds
// a copy of the program image, and every location beyond that can be
// considered to hold zero.  Thus, reading a location which has not yet been
// written will return zero; otherwise, it will return the last value written.
// Implementations differ in whether or not writing beyond the current length
// is permitted.
type Memory interface {
	ReadOnlyMemory
	// Write a given word to a given address, overwriting the previous value
	// stored at that address.  This can fail if the address lies outside the
	// region writable by this memory.
	Write(address uint64, value int64) error
	// Return the contents of this memory as a sequence of words.
	Contents() []int64
}
