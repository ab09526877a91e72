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
package program

import (
	"fmt"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
)

// Image is the flat sequence of words making up a program, as loaded.  An image
// is immutable, and serves as the template from which the memory of every
// machine running the program is initialised.
type Image struct {
	words []int64
}

// Patch identifies a single word of an image to be overwritten, for example to
// supply the arguments of a program which takes its parameters in memory.
type Patch struct {
	Address uint64
	Value   int64
}

// NewImage constructs an image holding a copy of the given words.
func NewImage(words ...int64) Image {
	var image = make([]int64, len(words))
	//
	copy(image, words)
	//
	return Image{image}
}

// Len returns the number of words in this image.
func (p Image) Len() uint {
	return uint(len(p.words))
}

// At returns the word at a given index in this image.
func (p Image) At(index uint) int64 {
	return p.words[index]
}

// Words returns a fresh copy of the words making up this image, which can be
// freely modified by the caller.
func (p Image) Words() []int64 {
	var words = make([]int64, len(p.words))
	//
	copy(words, p.words)
	//
	return words
}

// Patch returns a copy of this image with zero or more words overwritten.  A
// patch whose address lies beyond the end of the image is rejected.
func (p Image) Patch(patches ...Patch) (Image, error) {
	var words = p.Words()
	//
	for _, patch := range patches {
		if patch.Address >= uint64(len(words)) {
			return Image{}, fmt.Errorf("patch at %d beyond end of image (length %d): %w", patch.Address, len(words),
				fault.ErrInvalidAddress)
		}
		//
		words[patch.Address] = patch.Value
	}
	//
	return Image{words}, nil
}

func (p Image) String() string {
	var builder strings.Builder
	//
	for i, w := range p.words {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", w))
	}
	//
	return builder.String()
}
