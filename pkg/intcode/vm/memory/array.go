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

import (
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
)

// MAX_ADDRESS bounds the size of a growable memory.  Writing at or beyond this
// address fails, rather than attempting an allocation which cannot succeed.
const MAX_ADDRESS uint64 = 1 << 24

// Ram is a flat-slice implementation of Memory which grows on demand.  That
// is, writing to an address at or beyond the current length zero-extends the
// backing slice up to (and including) that address.  Reads never grow memory.
type Ram struct {
	name string
	data []int64
}

// NewRam constructs a growable memory with the given name.  The optional init
// values are copied in as the initial contents of the backing slice.
func NewRam(name string, init ...int64) *Ram {
	data := make([]int64, len(init))
	copy(data, init)
	//
	return &Ram{name, data}
}

// Name implementation for ReadOnlyMemory interface.
func (p *Ram) Name() string {
	return p.name
}

// Len implementation for ReadOnlyMemory interface.
func (p *Ram) Len() uint64 {
	return uint64(len(p.data))
}

// Read implementation for ReadOnlyMemory interface.
func (p *Ram) Read(address uint64) int64 {
	if address >= uint64(len(p.data)) {
		return 0
	}
	//
	return p.data[address]
}

// Write implementation for Memory interface.
func (p *Ram) Write(address uint64, value int64) error {
	if address >= MAX_ADDRESS {
		return fmt.Errorf("write to %d beyond limit of %s (%d): %w", address, p.name, MAX_ADDRESS,
			fault.ErrInvalidAddress)
	} else if n := uint64(len(p.data)); address >= n {
		// Zero extend
		if address < uint64(cap(p.data)) {
			p.data = p.data[:address+1]
			clear(p.data[n:])
		} else {
			p.data = append(p.data, make([]int64, address+1-n)...)
		}
	}
	//
	p.data[address] = value
	//
	return nil
}

// Contents implementation for Memory interface.
func (p *Ram) Contents() []int64 {
	return p.data
}

// Fixed is a flat-slice implementation of Memory whose length is determined
// at construction.  Reads beyond the end return zero, but writes beyond the
// end fail.
type Fixed struct {
	name string
	data []int64
}

// NewFixed constructs a fixed-size memory holding a copy of the given
// contents.
func NewFixed(name string, init ...int64) *Fixed {
	data := make([]int64, len(init))
	copy(data, init)
	//
	return &Fixed{name, data}
}

// Name implementation for ReadOnlyMemory interface.
func (p *Fixed) Name() string {
	return p.name
}

// Len implementation for ReadOnlyMemory interface.
func (p *Fixed) Len() uint64 {
	return uint64(len(p.data))
}

// Read implementation for ReadOnlyMemory interface.
func (p *Fixed) Read(address uint64) int64 {
	if address >= uint64(len(p.data)) {
		return 0
	}
	//
	return p.data[address]
}

// Write implementation for Memory interface.
func (p *Fixed) Write(address uint64, value int64) error {
	if address >= uint64(len(p.data)) {
		return fmt.Errorf("write to %d beyond end of %s (length %d): %w", address, p.name, len(p.data),
			fault.ErrInvalidAddress)
	}
	//
	p.data[address] = value
	//
	return nil
}

// Contents implementation for Memory interface.
func (p *Fixed) Contents() []int64 {
	return p.data
}
