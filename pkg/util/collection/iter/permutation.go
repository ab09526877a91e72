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
package iter

import "slices"

// Permutations returns an enumerator over all orderings of the given elements.
// Orderings are produced lazily, in lexicographic order of element positions,
// starting with the elements in their given order.  For example, given
// [A,B,C] this produces [A,B,C], [A,C,B], [B,A,C], [B,C,A], [C,A,B] and
// [C,B,A].  Elements are treated positionally, hence duplicates yield
// duplicate orderings.  An empty array has exactly one (empty) ordering.
func Permutations[E any](elems []E) Restartable[[]E] {
	p := &permutations[E]{elements: slices.Clone(elems)}
	p.Reset()
	//
	return p
}

type permutations[E any] struct {
	// Current ordering of element indices, or nil when finished.
	indices  []uint
	elements []E
}

// HasNext checks whether or not there are any orderings remaining to visit.
//
//nolint:revive
func (p *permutations[E]) HasNext() bool {
	return p.indices != nil
}

// Next returns the next ordering, and advances the enumerator.
//
//nolint:revive
func (p *permutations[E]) Next() []E {
	rs := make([]E, len(p.indices))
	// Copy over elements
	for i, j := range p.indices {
		rs[i] = p.elements[j]
	}
	// Advance
	if !nextPermutation(p.indices) {
		// Signal end of enumeration
		p.indices = nil
	}
	//
	return rs
}

// Reset the enumerator back to the identity ordering.
//
//nolint:revive
func (p *permutations[E]) Reset() {
	p.indices = make([]uint, len(p.elements))
	//
	for i := range p.indices {
		p.indices[i] = uint(i)
	}
}

// Rearrange indices into the lexicographically next greater ordering,
// returning false if they are already in the greatest ordering.
func nextPermutation(indices []uint) bool {
	var i = len(indices) - 2
	// Find rightmost ascent
	for i >= 0 && indices[i] >= indices[i+1] {
		i--
	}
	//
	if i < 0 {
		return false
	}
	// Find rightmost element greater than pivot
	j := len(indices) - 1
	for indices[j] <= indices[i] {
		j--
	}
	//
	indices[i], indices[j] = indices[j], indices[i]
	// Reverse the suffix
	slices.Reverse(indices[i+1:])
	//
	return true
}
