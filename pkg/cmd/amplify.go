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

	"github.com/consensys/go-intcode/pkg/intcode/network"
	"github.com/spf13/cobra"
)

var amplifyCmd = &cobra.Command{
	Use:   "amplify [flags] program.txt",
	Short: "Run an intcode program as a network of amplifiers.",
	Long: `Run an intcode program as a network of amplifiers, one per phase setting.
By default, every ordering of the phase settings is tried and the largest
resulting signal is reported.  Alternatively, a single ordering can be run.`,
	Aliases: []string{"amp"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var settings = GetSettings(cmd)
		// Apply overrides
		if cmd.Flags().Changed("phases") {
			settings.Amplify.Phases = GetWords(cmd, "phases")
		}
		//
		if cmd.Flags().Changed("signal") {
			settings.Amplify.Signal = GetInt64(cmd, "signal")
		}
		//
		if GetFlag(cmd, "feedback") {
			settings.Amplify.Topology = network.FEEDBACK.String()
		}
		//
		image := ReadProgramFile(args[0], settings)
		amps := network.New(image, settings.Config(), settings.Topology())
		//
		if GetFlag(cmd, "fixed") {
			// Run the phases exactly as given
			signal, err := amps.Run(settings.Amplify.Phases, settings.Amplify.Signal)
			if err != nil {
				exitWithFailure(err)
			}
			//
			fmt.Println(signal)
		} else {
			result, err := amps.Search(settings.Amplify.Phases, settings.Amplify.Signal)
			if err != nil {
				exitWithFailure(err)
			}
			//
			fmt.Printf("%d (phases %v, %d trials)\n", result.Signal, result.Phases, amps.Trials())
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(amplifyCmd)
	amplifyCmd.Flags().StringP("phases", "p", "0,1,2,3,4", "comma-separated phase settings")
	amplifyCmd.Flags().Int64P("signal", "s", 0, "initial signal")
	amplifyCmd.Flags().Bool("feedback", false, "route output of final amplifier back into the first")
	amplifyCmd.Flags().Bool("fixed", false, "run phase settings in the order given, rather than searching")
}
