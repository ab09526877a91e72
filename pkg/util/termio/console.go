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
package termio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	"golang.org/x/term"
)

// PROMPT is displayed whenever the console requires a value.
const PROMPT = "Input: "

// Console provides a channel endpoint attached to the user.  Values read from
// the console are prompted for and entered one per line, whilst values written
// to the console are printed one per line.
type Console struct {
	mux sync.Mutex
	// Source of lines
	lines lineReader
	// Destination for output
	out io.Writer
	// Released on close (if applicable).
	closer io.Closer
}

type lineReader interface {
	// Read the next line, having displayed the prompt.
	ReadLine() (string, error)
}

// NewConsole constructs a console attached to the standard streams.  When
// standard input is a terminal, lines are read with full line editing and
// history.  Otherwise, lines are read directly from standard input.
func NewConsole() (*Console, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewStreamConsole(os.Stdin, os.Stdout), nil
	}
	//
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          PROMPT,
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	//
	if err != nil {
		return nil, err
	}
	//
	return &Console{lines: readlineReader{rl}, out: rl.Stdout(), closer: rl}, nil
}

// NewStreamConsole constructs a console over a given pair of streams.
func NewStreamConsole(in io.Reader, out io.Writer) *Console {
	return &Console{lines: &streamReader{bufio.NewScanner(in), out}, out: out}
}

// Read implementation for the channel.Reader interface.  Each line must hold
// exactly one integer (a blank line is malformed), and the end of input is
// reported as fault.ErrIOClosed.
func (p *Console) Read() (int64, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	line, err := p.lines.ReadLine()
	//
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return 0, fmt.Errorf("console: %w", fault.ErrIOClosed)
	} else if err != nil {
		return 0, err
	}
	//
	line = strings.TrimSpace(line)
	value, err := strconv.ParseInt(line, 10, 64)
	//
	if err != nil {
		return 0, fmt.Errorf("console (\"%s\"): %w", line, fault.ErrMalformedLiteral)
	}
	//
	return value, nil
}

// Write implementation for the channel.Writer interface.
func (p *Console) Write(value int64) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	_, err := fmt.Fprintf(p.out, "Output: %d\n", value)
	//
	return err
}

// Close releases any resources held by the console.
func (p *Console) Close() error {
	if p.closer != nil {
		return p.closer.Close()
	}
	//
	return nil
}

// Line reader backed by readline.
type readlineReader struct {
	instance *readline.Instance
}

func (p readlineReader) ReadLine() (string, error) {
	return p.instance.Readline()
}

// Line reader backed by an arbitrary stream.
type streamReader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

func (p *streamReader) ReadLine() (string, error) {
	if _, err := io.WriteString(p.prompt, PROMPT); err != nil {
		return "", err
	}
	//
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}
