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
	"strings"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir determines the (relative) location of the test directory.
const TestDir = "../../../testdata/intcode"

func Test_Loader_Parse_01(t *testing.T) {
	checkParse(t, STRICT, "1,2,\n3\n", 1, 2, 3)
}

func Test_Loader_Parse_02(t *testing.T) {
	checkParse(t, STRICT, " 104 , -1125899906842624 ,99 ", 104, -1125899906842624, 99)
}

func Test_Loader_Parse_03(t *testing.T) {
	checkParse(t, STRICT, "")
	checkParse(t, STRICT, "\n\n")
}

func Test_Loader_Parse_04(t *testing.T) {
	// Windows line endings
	checkParse(t, STRICT, "1,2\r\n3\r\n", 1, 2, 3)
}

func Test_Loader_Strict_01(t *testing.T) {
	loader := NewLoader(STRICT)
	//
	_, err := loader.Parse(strings.NewReader("1,x,3"))
	require.ErrorIs(t, err, fault.ErrMalformedLiteral)
	assert.Contains(t, err.Error(), "token 1")
}

func Test_Loader_Lenient_01(t *testing.T) {
	loader := NewLoader(LENIENT)
	//
	image, err := loader.Parse(strings.NewReader("1,x,3,9999999999999999999999"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, image.Words())
	require.Len(t, loader.Warnings(), 2)
	//
	for _, w := range loader.Warnings() {
		require.ErrorIs(t, w, fault.ErrMalformedLiteral)
	}
}

func Test_Loader_File_01(t *testing.T) {
	image, err := NewLoader(STRICT).ReadFile(TestDir + "/quine.txt")
	require.NoError(t, err)
	assert.Equal(t, uint(16), image.Len())
	assert.Equal(t, int64(109), image.At(0))
	assert.Equal(t, int64(99), image.At(15))
}

func Test_Loader_File_02(t *testing.T) {
	loader := NewLoader(LENIENT)
	image, err := loader.ReadFile(TestDir + "/lenient_01.txt")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 0, 0, 99}, image.Words())
	assert.Len(t, loader.Warnings(), 2)
	//
	_, err = NewLoader(STRICT).ReadFile(TestDir + "/lenient_01.txt")
	require.ErrorIs(t, err, fault.ErrMalformedLiteral)
}

func Test_Loader_File_03(t *testing.T) {
	_, err := NewLoader(STRICT).ReadFile(TestDir + "/missing.txt")
	require.Error(t, err)
}

func Test_Policy_01(t *testing.T) {
	p, ok := ParsePolicy("Lenient")
	assert.True(t, ok)
	assert.Equal(t, LENIENT, p)
	_, ok = ParsePolicy("sloppy")
	assert.False(t, ok)
}

func Test_ParseWords_01(t *testing.T) {
	words, err := ParseWords("9,8,7,6,5")
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 8, 7, 6, 5}, words)
}

func Test_Image_Patch_01(t *testing.T) {
	image := NewImage(1, 0, 0, 3, 99)
	//
	patched, err := image.Patch(Patch{1, 12}, Patch{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 12, 2, 3, 99}, patched.Words())
	// Original untouched
	assert.Equal(t, []int64{1, 0, 0, 3, 99}, image.Words())
	//
	_, err = image.Patch(Patch{5, 1})
	require.ErrorIs(t, err, fault.ErrInvalidAddress)
}

func Test_Image_Copy_01(t *testing.T) {
	words := []int64{1, 2, 3}
	image := NewImage(words...)
	words[0] = 42
	//
	assert.Equal(t, int64(1), image.At(0))
	//
	copied := image.Words()
	copied[1] = 42
	assert.Equal(t, int64(2), image.At(1))
	assert.Equal(t, "1,2,3", image.String())
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkParse(t *testing.T, policy Policy, text string, expected ...int64) {
	image, err := NewLoader(policy).Parse(strings.NewReader(text))
	require.NoError(t, err)
	//
	if len(expected) == 0 {
		assert.Equal(t, uint(0), image.Len())
	} else {
		assert.Equal(t, expected, image.Words())
	}
}
