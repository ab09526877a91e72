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

import (
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/intcode/vm/channel"
	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// ErrNoSignal signals a network whose final amplifier terminated without
// producing any output.
var ErrNoSignal = errors.New("no signal")

// ErrNoPhases signals an attempt to run a network without any amplifiers.
var ErrNoPhases = errors.New("no phases")

// Network represents a chain of amplifiers, each running its own copy of the
// same program.  Every call to Run constructs a fresh set of machines and
// channels, hence a network can be run any number of times (though not
// concurrently with itself).
type Network struct {
	image    program.Image
	config   machine.Config
	topology Topology
	// Number of trials run so far.
	trials uint
}

// New constructs a network for a given program, variant and topology.
func New(image program.Image, config machine.Config, topology Topology) *Network {
	return &Network{image, config, topology, 0}
}

// Topology returns the topology of this network.
func (p *Network) Topology() Topology {
	return p.topology
}

// Trials returns the number of times this network has been run.
func (p *Network) Trials() uint {
	return p.trials
}

// Run a single trial of the network for a given phase sequence and initial
// signal, returning the final output signal.  There is one amplifier for each
// phase setting, and each amplifier receives its phase before any other input.
// The initial signal is then given to the first amplifier.  If any amplifier
// faults, the network is torn down and the root-cause fault is returned.
func (p *Network) Run(phases []int64, signal int64) (int64, error) {
	var (
		n        = len(phases)
		channels = make([]*channel.Channel, n+1)
		faults   = make([]error, n)
		group    errgroup.Group
		result   int64
		received bool
	)
	//
	if n == 0 {
		return 0, ErrNoPhases
	}
	//
	p.trials++
	// Channel i feeds amplifier i, and the final channel carries the result.
	for i, phase := range phases {
		channels[i] = channel.New(fmt.Sprintf("ch%d", i), phase)
	}
	//
	channels[n] = channel.New(fmt.Sprintf("ch%d", n))
	// Initial signal
	if err := channels[0].Write(signal); err != nil {
		return 0, err
	} else if p.topology == LINEAR {
		// Nothing further for the first amplifier
		channels[0].Close()
	}
	// Launch amplifiers
	for i := range n {
		name := fmt.Sprintf("amp%d", i)
		amp := machine.New(name, p.image, p.config, channels[i], channels[i+1])
		output := channels[i+1]
		//
		group.Go(func() error {
			// Closing our output on termination ensures anything downstream
			// blocked waiting for us is released.
			defer output.Close()
			//
			_, err := amp.Run()
			faults[i] = err
			//
			return err
		})
	}
	// Drain the result channel
	for {
		value, err := channels[n].Read()
		//
		if err != nil {
			break
		}
		//
		result, received = value, true
		//
		if p.topology == FEEDBACK {
			// Cannot fail since channel 0 is only closed below.
			_ = channels[0].Write(value)
		}
	}
	// Release the first amplifier (if still waiting).
	if p.topology == FEEDBACK {
		channels[0].Close()
	}
	//
	if err := group.Wait(); err != nil {
		return 0, rootCause(faults)
	} else if !received {
		return 0, ErrNoSignal
	}
	//
	log.Debugf("%s network %v produced %d", p.topology, phases, result)
	//
	return result, nil
}

// Determine the fault which caused a network to fail.  When one amplifier
// faults, those downstream of it subsequently fail with IOClosed.  Hence, the
// first fault which is not IOClosed is considered the root cause.
func rootCause(faults []error) error {
	var first error
	//
	for _, err := range faults {
		if err == nil {
			continue
		} else if fault.KindOf(err) != fault.IOClosed {
			first = err
			break
		} else if first == nil {
			first = err
		}
	}
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		for _, err := range multierr.Errors(multierr.Combine(faults...)) {
			log.Debugf("network fault: %s", err)
		}
	}
	//
	return first
}
