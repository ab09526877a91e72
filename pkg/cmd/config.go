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
package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-intcode/pkg/intcode/network"
	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
)

// Settings captures the options which can be given in a configuration file,
// rather than on the command line.  Options given on the command line take
// precedence.
type Settings struct {
	// Machine variant
	Variant string `toml:"variant"`
	// Loader policy for malformed words
	Policy string `toml:"policy"`
	// Amplifier network settings
	Amplify AmplifySettings `toml:"amplify"`
}

// AmplifySettings captures the options specific to amplifier networks.
type AmplifySettings struct {
	// Phase settings to search over
	Phases []int64 `toml:"phases"`
	// Network topology
	Topology string `toml:"topology"`
	// Initial signal
	Signal int64 `toml:"signal"`
}

// DefaultSettings returns the settings used in the absence of any
// configuration file.
func DefaultSettings() Settings {
	return Settings{
		Variant: machine.EXTENDED.Name(),
		Policy:  program.STRICT.String(),
		Amplify: AmplifySettings{
			Phases:   []int64{0, 1, 2, 3, 4},
			Topology: network.LINEAR.String(),
			Signal:   0,
		},
	}
}

// ReadSettings reads settings from a given TOML file, starting from the
// defaults.  Unknown keys are reported as errors.
func ReadSettings(filename string) (Settings, error) {
	var settings = DefaultSettings()
	//
	meta, err := toml.DecodeFile(filename, &settings)
	//
	if err != nil {
		return settings, err
	} else if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return settings, fmt.Errorf("%s: unknown setting \"%s\"", filename, undecoded[0])
	}
	//
	return settings, settings.Validate()
}

// Validate checks that all named options are known.
func (p Settings) Validate() error {
	if _, ok := machine.GetConfig(p.Variant); !ok {
		return fmt.Errorf("unknown variant \"%s\"", p.Variant)
	} else if _, ok := program.ParsePolicy(p.Policy); !ok {
		return fmt.Errorf("unknown policy \"%s\"", p.Policy)
	} else if _, ok := network.ParseTopology(p.Amplify.Topology); !ok {
		return fmt.Errorf("unknown topology \"%s\"", p.Amplify.Topology)
	}
	//
	return nil
}

// Config returns the machine variant selected by these settings.
func (p Settings) Config() machine.Config {
	config, _ := machine.GetConfig(p.Variant)
	return config
}

// LoaderPolicy returns the loader policy selected by these settings.
func (p Settings) LoaderPolicy() program.Policy {
	policy, _ := program.ParsePolicy(p.Policy)
	return policy
}

// Topology returns the network topology selected by these settings.
func (p Settings) Topology() network.Topology {
	topology, _ := network.ParseTopology(p.Amplify.Topology)
	return topology
}
