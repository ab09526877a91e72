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
	"fmt"
	"slices"

	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/collection/iter"
)

// Result captures the best phase sequence found by a search, along with the
// signal it produced.
type Result struct {
	Signal int64
	Phases []int64
}

func (p Result) String() string {
	return fmt.Sprintf("%d (phases %v)", p.Signal, p.Phases)
}

// Search runs the network once for every ordering of the given phase settings,
// returning the ordering which produced the largest signal.  Where several
// orderings produce the same signal, the first encountered is returned.  The
// search is aborted by the first trial which fails.
func (p *Network) Search(phaseRange []int64, signal int64) (Result, error) {
	var (
		best  Result
		found bool
		stats = util.NewPerfStats()
		perms = iter.Permutations(phaseRange)
	)
	//
	for perms.HasNext() {
		phases := perms.Next()
		output, err := p.Run(phases, signal)
		//
		if err != nil {
			return Result{}, fmt.Errorf("phases %v: %w", phases, err)
		}
		//
		if !found || output > best.Signal {
			best = Result{output, slices.Clone(phases)}
			found = true
		}
	}
	//
	stats.Log(fmt.Sprintf("%s search over %v", p.topology, phaseRange))
	//
	return best, nil
}
