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
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/intcode/vm/machine"
	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NOUN is the address patched with the noun.
const NOUN = 1

// VERB is the address patched with the verb.
const VERB = 2

var patchCmd = &cobra.Command{
	Use:   "patch [flags] program.txt",
	Short: "Run an intcode program with its noun and verb patched.",
	Long: `Run an intcode program after patching address 1 (the noun) and address 2
(the verb), printing the final value at address zero.  Alternatively, search
for the noun and verb which produce a given value, printing 100 * noun + verb.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			settings = GetSettings(cmd)
			image    = ReadProgramFile(args[0], settings)
			vm       = machine.New(args[0], image, settings.Config(), nil, nil)
		)
		//
		if cmd.Flags().Changed("target") {
			noun, verb, ok, err := SearchNounVerb(vm, GetInt64(cmd, "target"))
			if err != nil {
				exitWithFailure(err)
			} else if !ok {
				fmt.Println("no noun and verb produce the target")
				os.Exit(4)
			}
			//
			fmt.Println(100*noun + verb)
		} else {
			result, err := RunNounVerb(vm, GetInt64(cmd, "noun"), GetInt64(cmd, "verb"))
			if err != nil {
				exitWithFailure(err)
			}
			//
			fmt.Println(result)
		}
	},
}

// RunNounVerb resets a given machine with a given noun and verb, and then runs
// it to completion.
func RunNounVerb(vm *machine.Machine, noun, verb int64) (int64, error) {
	if err := vm.Reset(program.Patch{Address: NOUN, Value: noun}, program.Patch{Address: VERB, Value: verb}); err != nil {
		return 0, err
	}
	//
	return vm.Run()
}

// SearchNounVerb finds the first noun and verb (each between 0 and 99) for
// which a given machine halts with the target value at address zero.  Trials
// which fault are skipped, but any other error (e.g. an image too small to
// patch) ends the search and is returned.
func SearchNounVerb(vm *machine.Machine, target int64) (int64, int64, bool, error) {
	var f *fault.Fault
	//
	for noun := int64(0); noun < 100; noun++ {
		for verb := int64(0); verb < 100; verb++ {
			result, err := RunNounVerb(vm, noun, verb)
			//
			if err != nil && !errors.As(err, &f) {
				return 0, 0, false, err
			} else if err != nil {
				log.Tracef("noun %d, verb %d: %s", noun, verb, err)
			} else if result == target {
				return noun, verb, true, nil
			}
		}
	}
	//
	return 0, 0, false, nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(patchCmd)
	patchCmd.Flags().Int64("noun", 12, "value written to address 1")
	patchCmd.Flags().Int64("verb", 2, "value written to address 2")
	patchCmd.Flags().Int64("target", 0, "search for the noun and verb producing this value")
}
