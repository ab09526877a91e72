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

// Enumerator abstracts the process of iterating over a sequence of elements.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// Restartable is an enumerator which can be rewound back to its first item.
type Restartable[T any] interface {
	Enumerator[T]
	// Reset the enumerator so that it starts again from the beginning.
	Reset()
}

// Collect drains all remaining items from an enumerator into an array.
func Collect[T any](enumerator Enumerator[T]) []T {
	var items []T
	//
	for enumerator.HasNext() {
		items = append(items, enumerator.Next())
	}
	//
	return items
}
