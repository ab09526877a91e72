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
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir determines the (relative) location of the test directory.
const TestDir = "../../testdata/intcode"

func Test_Patch_Run_01(t *testing.T) {
	vm := loadPatchMachine(t)
	//
	result, err := RunNounVerb(vm, 9, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), result)
	// Machine is reset between runs
	result, err = RunNounVerb(vm, 12, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(100), result)
}

func Test_Patch_Search_01(t *testing.T) {
	noun, verb, ok, err := SearchNounVerb(loadPatchMachine(t), 3500)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), noun)
	assert.Equal(t, int64(70), verb)
}

func Test_Patch_Search_02(t *testing.T) {
	_, _, ok, err := SearchNounVerb(loadPatchMachine(t), -1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_Patch_Search_03(t *testing.T) {
	// Too small to patch
	vm := machine.New("test", program.NewImage(99, 0), machine.BASIC, nil, nil)
	//
	_, err := RunNounVerb(vm, 0, 0)
	require.ErrorIs(t, err, fault.ErrInvalidAddress)
	//
	// Reported as an error, not as a failed search
	_, _, ok, err := SearchNounVerb(vm, 99)
	require.ErrorIs(t, err, fault.ErrInvalidAddress)
	assert.False(t, ok)
}

// ===================================================================
// Test Helpers
// ===================================================================

func loadPatchMachine(t *testing.T) *machine.Machine {
	image, err := program.NewLoader(program.STRICT).ReadFile(TestDir + "/patch_01.txt")
	require.NoError(t, err)
	//
	return machine.New("patch", image, machine.BASIC, nil, nil)
}
