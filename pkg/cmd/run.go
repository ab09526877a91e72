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
	"os"

	"github.com/consensys/go-intcode/pkg/intcode/vm/channel"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program.txt",
	Short: "Run an intcode program.",
	Long: `Run an intcode program to completion.  Inputs can be given up front, or
entered interactively.  Every output produced is printed, and the final value
at address zero can also be printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			settings    = GetSettings(cmd)
			image       = ReadProgramFile(args[0], settings)
			interactive = GetFlag(cmd, "interactive")
			inputs      = GetWords(cmd, "input")
			queue       = channel.NewQueue(inputs...)
			collector   = channel.NewCollector()
			input       channel.Reader
			output      channel.Writer
			stats       = util.NewPerfStats()
		)
		// Configure I/O
		input, output = queue, collector
		//
		if interactive {
			console, err := termio.NewConsole()
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			defer console.Close()
			//
			input, output = queue.WithFallback(console), console
		}
		//
		vm := machine.New(args[0], image, settings.Config(), input, output)
		//
		result, err := vm.Run()
		//
		stats.Log(fmt.Sprintf("running %s (%d steps)", args[0], vm.Steps()))
		//
		if err != nil {
			exitWithFailure(err)
		}
		//
		for _, v := range collector.Values() {
			fmt.Println(v)
		}
		//
		if GetFlag(cmd, "result") {
			fmt.Println(result)
		}
		//
		log.Debugf("%s halted after %d steps", args[0], vm.Steps())
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("input", "i", "", "comma-separated inputs supplied in order")
	runCmd.Flags().Bool("interactive", false, "prompt for inputs once given inputs are exhausted")
	runCmd.Flags().Bool("result", false, "print value at address zero on halting")
}
