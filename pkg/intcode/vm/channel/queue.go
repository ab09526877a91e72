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
package channel

import (
	"fmt"
	"strings"
	"sync"

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
)

// Queue is a reader which supplies a fixed sequence of values, after which it
// defers to a fallback reader (if one is given).  This is used, for example,
// to give a machine some programmatic input before handing over to an
// interactive console.  A queue never blocks unless its fallback does.
type Queue struct {
	values   []int64
	fallback Reader
}

// NewQueue constructs a queue over the given values with no fallback.  Hence,
// reading beyond the last value fails with fault.ErrIOClosed.
func NewQueue(values ...int64) *Queue {
	return &Queue{values, nil}
}

// WithFallback returns a queue over the same values which, once exhausted,
// reads from the given fallback.
func (p *Queue) WithFallback(fallback Reader) *Queue {
	return &Queue{p.values, fallback}
}

// Read implementation for the Reader interface.
func (p *Queue) Read() (int64, error) {
	if len(p.values) > 0 {
		value := p.values[0]
		p.values = p.values[1:]
		//
		return value, nil
	} else if p.fallback != nil {
		return p.fallback.Read()
	}
	//
	return 0, fmt.Errorf("input exhausted: %w", fault.ErrIOClosed)
}

// Collector is a writer which simply records everything written to it.  A
// collector is safe for concurrent use.
type Collector struct {
	mux    sync.Mutex
	values []int64
}

// NewCollector constructs an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Write implementation for the Writer interface.
func (p *Collector) Write(value int64) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	p.values = append(p.values, value)
	//
	return nil
}

// Values returns a copy of all values written so far.
func (p *Collector) Values() []int64 {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	values := make([]int64, len(p.values))
	copy(values, p.values)
	//
	return values
}

// Reset discards all values written so far.
func (p *Collector) Reset() {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	p.values = nil
}

func (p *Collector) String() string {
	var builder strings.Builder
	//
	for i, v := range p.Values() {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", v))
	}
	//
	return builder.String()
}
