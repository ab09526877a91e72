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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Policy determines how the loader responds to a token which is not a valid
// integer.
type Policy uint8

const (
	// STRICT treats any malformed token as fatal.
	STRICT Policy = iota
	// LENIENT skips malformed tokens, recording a warning for each.
	LENIENT
)

func (p Policy) String() string {
	if p == LENIENT {
		return "lenient"
	}
	//
	return "strict"
}

// ParsePolicy converts the name of a policy into a policy, or returns false if
// the name is unknown.
func ParsePolicy(name string) (Policy, bool) {
	switch strings.ToLower(name) {
	case "strict", "":
		return STRICT, true
	case "lenient":
		return LENIENT, true
	default:
		return STRICT, false
	}
}

// Loader reads program images from text, where an image is given as a sequence
// of base-10 signed integers separated by commas and/or newlines, each with
// optional surrounding whitespace.  Empty tokens (e.g. arising from a trailing
// newline) are ignored.
type Loader struct {
	policy   Policy
	warnings error
}

// NewLoader constructs a loader with the given policy for malformed tokens.
func NewLoader(policy Policy) *Loader {
	return &Loader{policy, nil}
}

// Warnings returns the malformed tokens skipped (under the lenient policy)
// across every image loaded so far.
func (p *Loader) Warnings() []error {
	return multierr.Errors(p.warnings)
}

// ReadFile reads an image from a given file.
func (p *Loader) ReadFile(filename string) (Image, error) {
	data, err := os.ReadFile(filename)
	//
	if err != nil {
		return Image{}, err
	}
	//
	log.Debugf("loading program image from %s (%d bytes, %s)", filename, len(data), p.policy)
	//
	return p.ParseBytes(data)
}

// ParseBytes reads an image from a given slice of bytes.
func (p *Loader) ParseBytes(data []byte) (Image, error) {
	return p.Parse(bytes.NewReader(data))
}

// Parse reads an image from a given reader.
func (p *Loader) Parse(reader io.Reader) (Image, error) {
	var (
		words   []int64
		scanner = bufio.NewScanner(reader)
		index   uint
	)
	//
	scanner.Split(splitTokens)
	//
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		//
		if token == "" {
			continue
		}
		//
		word, err := strconv.ParseInt(token, 10, 64)
		//
		if err != nil {
			err = fmt.Errorf("token %d (\"%s\"): %w", index, token, fault.ErrMalformedLiteral)
			//
			if p.policy == STRICT {
				return Image{}, err
			}
			//
			p.warnings = multierr.Append(p.warnings, err)
		} else {
			words = append(words, word)
		}
		//
		index++
	}
	//
	if err := scanner.Err(); err != nil {
		return Image{}, err
	}
	//
	return Image{words}, nil
}

// ParseWords is a convenience for parsing a comma-separated list of words, as
// supplied on the command line.  This always uses the strict policy.
func ParseWords(text string) ([]int64, error) {
	image, err := NewLoader(STRICT).ParseBytes([]byte(text))
	//
	if err != nil {
		return nil, err
	}
	//
	return image.words, nil
}

// Split tokens on commas and newlines.
func splitTokens(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	//
	if i := bytes.IndexAny(data, ",\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	// Final token
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}
