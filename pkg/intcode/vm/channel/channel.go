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
	"sync"

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
)

// Reader is the consumer end of a channel, from which a machine reads its
// inputs.  A read may block until a value becomes available.  Once the
// producer has gone away, and no values remain, a read fails with
// fault.ErrIOClosed.
type Reader interface {
	Read() (int64, error)
}

// Writer is the producer end of a channel, to which a machine writes its
// outputs.
type Writer interface {
	Write(value int64) error
}

// Channel is an unbounded FIFO queue of words with one producer and one
// consumer.  Writes never block, whilst reads block until either a value is
// available or the channel is closed.  Values written before the channel was
// closed are still delivered after it is closed, in the order they were
// written.
type Channel struct {
	name   string
	mux    sync.Mutex
	ready  *sync.Cond
	items  []int64
	closed bool
}

// New constructs a new (open) channel holding zero or more initial values.
func New(name string, init ...int64) *Channel {
	var ch = &Channel{name: name}
	//
	ch.ready = sync.NewCond(&ch.mux)
	ch.items = append(ch.items, init...)
	//
	return ch
}

// Name returns the name of this channel.
func (p *Channel) Name() string {
	return p.name
}

// Read implementation for the Reader interface.  This blocks until a value is
// available, or the channel is closed.
func (p *Channel) Read() (int64, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	for len(p.items) == 0 {
		if p.closed {
			return 0, fmt.Errorf("read from %s: %w", p.name, fault.ErrIOClosed)
		}
		//
		p.ready.Wait()
	}
	// Dequeue
	item := p.items[0]
	p.items = p.items[1:]
	//
	return item, nil
}

// Write implementation for the Writer interface.  This never blocks, but fails
// if the channel has already been closed.
func (p *Channel) Write(value int64) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	if p.closed {
		return fmt.Errorf("write to %s: %w", p.name, fault.ErrIOClosed)
	}
	//
	p.items = append(p.items, value)
	p.ready.Signal()
	//
	return nil
}

// Close this channel, signalling to the consumer that no further values will
// arrive.  Closing a channel more than once has no further effect.
func (p *Channel) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	p.closed = true
	p.ready.Broadcast()
	//
	return nil
}

// IsClosed determines whether or not this channel has been closed.
func (p *Channel) IsClosed() bool {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	return p.closed
}

// Len returns the number of values currently queued.
func (p *Channel) Len() uint {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	return uint(len(p.items))
}

// Drain removes and returns all values currently queued, without blocking.
func (p *Channel) Drain() []int64 {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	items := p.items
	p.items = nil
	//
	return items
}

// Collect reads values until the channel is closed and empty, returning them
// in order.  This blocks until the producer closes the channel.
func (p *Channel) Collect() []int64 {
	var items []int64
	//
	for {
		item, err := p.Read()
		if err != nil {
			return items
		}
		//
		items = append(items, item)
	}
}
