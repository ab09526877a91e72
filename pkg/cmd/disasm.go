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

	"github.com/consensys/go-intcode/pkg/intcode/vm/instruction"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] program.txt",
	Short: "Disassemble an intcode program.",
	Long: `Disassemble an intcode program by reading it linearly from address zero.
Words which cannot be decoded under the selected variant are shown as data.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			settings = GetSettings(cmd)
			image    = ReadProgramFile(args[0], settings)
			memory   = settings.Config().NewMemory(args[0], image.Words()...)
		)
		//
		for _, line := range instruction.Disassemble(settings.Config().Set, memory) {
			fmt.Println(line)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(disasmCmd)
}
