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

	"github.com/consensys/go-intcode/pkg/intcode/program"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt64 gets an expected signed integer, or exits if an error arises.
func GetInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetWords gets an expected comma-separated list of words, or exits if an
// error arises.
func GetWords(cmd *cobra.Command, flag string) []int64 {
	words, err := program.ParseWords(GetString(cmd, flag))
	if err != nil {
		fmt.Printf("--%s: %s\n", flag, err)
		os.Exit(3)
	}

	return words
}

// GetSettings determines the settings in effect for a given command, by
// reading the configuration file (if given) and then applying any flags given
// explicitly.  This exits if the settings are invalid.
func GetSettings(cmd *cobra.Command) Settings {
	var (
		settings = DefaultSettings()
		filename = GetString(cmd, "config")
		err      error
	)
	//
	if filename != "" {
		log.Debugf("reading settings from %s", filename)
		//
		if settings, err = ReadSettings(filename); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
	}
	// Flags override settings
	if cmd.Flags().Changed("variant") {
		settings.Variant = GetString(cmd, "variant")
	}
	//
	if GetFlag(cmd, "lenient") {
		settings.Policy = program.LENIENT.String()
	}
	//
	if err = settings.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return settings
}

// ReadProgramFile reads a program image from a given file, exiting if this is
// not possible.  Any malformed words skipped under the lenient policy are
// reported as warnings.
func ReadProgramFile(filename string, settings Settings) program.Image {
	loader := program.NewLoader(settings.LoaderPolicy())
	//
	image, err := loader.ReadFile(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	for _, w := range loader.Warnings() {
		log.Warnf("%s: skipped %s", filename, w)
	}
	//
	return image
}

// Report a fatal execution failure and exit.
func exitWithFailure(err error) {
	log.Error(err)
	os.Exit(4)
}
