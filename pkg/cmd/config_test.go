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

	"github.com/consensys/go-intcode/pkg/intcode/network"
	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Settings_Default_01(t *testing.T) {
	settings := DefaultSettings()
	require.NoError(t, settings.Validate())
	assert.Equal(t, machine.EXTENDED.Name(), settings.Config().Name())
	assert.Equal(t, program.STRICT, settings.LoaderPolicy())
	assert.Equal(t, network.LINEAR, settings.Topology())
}

func Test_Settings_File_01(t *testing.T) {
	settings, err := ReadSettings("testdata/settings_01.toml")
	require.NoError(t, err)
	assert.Equal(t, machine.STANDARD.Name(), settings.Config().Name())
	assert.Equal(t, program.LENIENT, settings.LoaderPolicy())
	assert.Equal(t, network.FEEDBACK, settings.Topology())
	assert.Equal(t, []int64{5, 6, 7, 8, 9}, settings.Amplify.Phases)
	// Default retained
	assert.Equal(t, int64(0), settings.Amplify.Signal)
}

func Test_Settings_File_02(t *testing.T) {
	_, err := ReadSettings("testdata/settings_02.toml")
	require.ErrorContains(t, err, "unknown variant")
}

func Test_Settings_File_03(t *testing.T) {
	_, err := ReadSettings("testdata/settings_03.toml")
	require.ErrorContains(t, err, "colour")
}

func Test_Settings_File_04(t *testing.T) {
	_, err := ReadSettings("testdata/missing.toml")
	require.Error(t, err)
}
