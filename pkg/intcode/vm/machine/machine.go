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
	"math"

	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/intcode/vm/channel"
	"github.com/consensys/go-intcode/pkg/intcode/vm/effect"
	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	"github.com/consensys/go-intcode/pkg/intcode/vm/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/vm/memory"
	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// ExecuteAll executes a given machine to completion in chunks of n steps,
// returning the number of steps executed and/or any error arising.  A chunk
// size of zero means the machine is executed without chunking.
func ExecuteAll(machine *Machine, n uint) (uint, error) {
	var nsteps uint
	//
	if n == 0 {
		n = math.MaxUint
	}
	//
	for {
		// Execute upto n steps
		m, err := machine.Execute(n)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < n {
			return nsteps, err
		}
	}
}

// Machine represents a single executing instance of a program.  A machine
// exclusively owns its memory, instruction pointer and relative base, and
// communicates with the outside world only through its input and output
// channels.  The status of a machine can be safely observed from any
// goroutine, but all other methods must be called from the goroutine running
// the machine.
type Machine struct {
	name   string
	config Config
	image  program.Image
	// Working memory, initialised from image.
	memory memory.Memory
	// Instruction pointer.
	pc uint64
	// Relative base register.
	base int64
	// Number of instructions executed since last reset.
	steps uint
	// Current status
	status *atomic.Int32
	// Fault which terminated this machine (if applicable).
	fault *fault.Fault
	// Channel endpoints
	input  channel.Reader
	output channel.Writer
	//
	logger *log.Entry
}

// New constructs a machine for a given program image.  The machine starts in
// the RUNNING state, with its instruction pointer and relative base at zero
// and its memory holding a private copy of the image.  Either channel endpoint
// can be nil, in which case any attempt to use it fails with
// fault.ErrIOClosed.
func New(name string, image program.Image, config Config, input channel.Reader, output channel.Writer) *Machine {
	var m = &Machine{
		name:   name,
		config: config,
		image:  image,
		status: atomic.NewInt32(int32(RUNNING)),
		input:  input,
		output: output,
		logger: log.WithField("machine", name),
	}
	//
	m.memory = config.NewMemory(name, image.Words()...)
	//
	return m
}

// Name returns the name of this machine.
func (p *Machine) Name() string {
	return p.name
}

// Config returns the variant of this machine.
func (p *Machine) Config() Config {
	return p.config
}

// Status returns the current status of this machine.  This is safe to call
// from any goroutine.
func (p *Machine) Status() Status {
	return Status(p.status.Load())
}

// Fault returns the fault which terminated this machine, or nil if it has not
// faulted.
func (p *Machine) Fault() *fault.Fault {
	return p.fault
}

// PC returns the current instruction pointer.
func (p *Machine) PC() uint64 {
	return p.pc
}

// RelativeBase returns the current value of the relative base register.
func (p *Machine) RelativeBase() int64 {
	return p.base
}

// Steps returns the number of instructions executed since the machine was
// created (or last reset).
func (p *Machine) Steps() uint {
	return p.steps
}

// Memory returns a read-only view of the working memory of this machine.
func (p *Machine) Memory() memory.ReadOnlyMemory {
	return p.memory
}

// Reset this machine back to its initial state, optionally patching one or
// more words of the image first.  Observe that the channel endpoints are left
// untouched, allowing a machine to be reused across trials.
func (p *Machine) Reset(patches ...program.Patch) error {
	image, err := p.image.Patch(patches...)
	//
	if err != nil {
		return err
	}
	//
	p.memory = p.config.NewMemory(p.name, image.Words()...)
	p.pc = 0
	p.base = 0
	p.steps = 0
	p.fault = nil
	p.status.Store(int32(RUNNING))
	//
	return nil
}

// Run executes this machine until it terminates.  If the machine halts, the
// value then at address zero is returned.
func (p *Machine) Run() (int64, error) {
	if _, err := ExecuteAll(p, 1024); err != nil {
		return 0, err
	}
	//
	return p.memory.Read(0), nil
}

// Execute the machine for (upto) the given number of steps, returning the
// actual number of steps executed and an error (if execution failed).  Fewer
// steps are executed only when the machine terminates.  Once terminated, a
// machine executes no further steps and, if it faulted, the same fault is
// returned again.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for ; nsteps < steps; nsteps++ {
		switch p.Status() {
		case HALTED:
			return nsteps, nil
		case FAULTED:
			return nsteps, p.fault
		}
		//
		if err := p.step(); err != nil {
			return nsteps, err
		}
	}
	//
	return nsteps, nil
}

// Decode and execute the instruction at the instruction pointer, applying its
// effects in order.  If any effect fails, the machine faults without applying
// the remaining effects.
func (p *Machine) step() error {
	insn, err := instruction.Decode(p.config.Set, p.memory, p.pc, p.base)
	//
	if err != nil {
		return p.fail(err)
	}
	//
	if p.logger.Logger.IsLevelEnabled(log.TraceLevel) {
		p.logger.Tracef("%04d: %s", p.pc, insn)
	}
	//
	for _, e := range instruction.Execute(insn) {
		if err := p.apply(e); err != nil {
			return p.fail(err)
		}
	}
	//
	p.steps++
	//
	return nil
}

func (p *Machine) apply(e effect.Effect) error {
	switch e := e.(type) {
	case effect.Write:
		return p.memory.Write(e.Address, e.Value)
	case effect.Advance:
		p.pc += e.Slots
	case effect.Jump:
		if e.Target < 0 {
			return fmt.Errorf("jump to %d: %w", e.Target, fault.ErrInvalidAddress)
		}
		//
		p.pc = uint64(e.Target)
	case effect.AdjustBase:
		p.base += e.Delta
	case effect.Receive:
		value, err := p.receive()
		if err != nil {
			return err
		}
		//
		return p.memory.Write(e.Address, value)
	case effect.Send:
		if p.output == nil {
			return fmt.Errorf("no output: %w", fault.ErrIOClosed)
		}
		//
		return p.output.Write(e.Value)
	case effect.Stop:
		p.status.Store(int32(HALTED))
		p.logger.Debugf("halted after %d steps", p.steps+1)
	default:
		panic(fmt.Sprintf("unknown effect %s", e))
	}
	//
	return nil
}

// Read the next value from the input channel, blocking if none is available.
func (p *Machine) receive() (int64, error) {
	if p.input == nil {
		return 0, fmt.Errorf("no input: %w", fault.ErrIOClosed)
	}
	//
	p.status.Store(int32(BLOCKED))
	value, err := p.input.Read()
	p.status.Store(int32(RUNNING))
	//
	return value, err
}

// Terminate this machine with a fault.
func (p *Machine) fail(err error) error {
	p.fault = fault.New(p.name, p.pc, p.memory.Read(p.pc), err)
	p.status.Store(int32(FAULTED))
	p.logger.Debugf("faulted after %d steps: %s", p.steps, err)
	//
	return p.fault
}
