// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/NVIDIA/crop-advisor/pkg/defaults"
	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

// errNoInput is returned when stdin closes before every reading is entered.
var errNoInput = errors.New("input ended before all soil readings were entered")

// prompter asks for soil readings. Answers are whitespace-separated, so
// several readings may be typed on one line.
type prompter struct {
	tokens      <-chan string
	done        chan struct{}
	out         io.Writer
	maxAttempts int

	// readErr is set before tokens is closed.
	readErr error
}

// newPrompter starts reading answers from in. The reader goroutine exits at
// EOF, on a read error or, once close is called, after its next answer.
func newPrompter(in io.Reader, out io.Writer) *prompter {
	tokens := make(chan string)
	p := &prompter{
		tokens:      tokens,
		done:        make(chan struct{}),
		out:         out,
		maxAttempts: defaults.CLIPromptMaxAttempts,
	}

	go func() {
		defer close(tokens)
		scanner := bufio.NewScanner(in)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			select {
			case tokens <- scanner.Text():
			case <-p.done:
				return
			}
		}
		p.readErr = scanner.Err()
	}()

	return p
}

func (p *prompter) close() {
	close(p.done)
}

func (p *prompter) readToken(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.out, label)
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for %q: %w", strings.TrimSpace(label), ctx.Err())
	case token, ok := <-p.tokens:
		if !ok {
			if p.readErr != nil {
				return "", fmt.Errorf("failed to read input: %w", p.readErr)
			}
			return "", errNoInput
		}
		return token, nil
	}
}

// ask re-prompts until parse accepts the answer, up to maxAttempts tries.
func ask[T any](ctx context.Context, p *prompter, label string, parse func(string) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for range p.maxAttempts {
		token, err := p.readToken(ctx, label)
		if err != nil {
			return zero, err
		}
		v, err := parse(token)
		if err == nil {
			return v, nil
		}
		lastErr = err
		fmt.Fprintf(p.out, "Invalid input: %v\n", err)
	}
	return zero, fmt.Errorf("too many invalid answers: %w", lastErr)
}

// readSample prompts for pH, moisture, nitrogen, phosphorus and potassium in
// that order.
func (p *prompter) readSample(ctx context.Context) (soil.Sample, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CLIPromptTimeout)
	defer cancel()

	level := func(name string) func(string) (int, error) {
		return func(raw string) (int, error) { return soil.ParseLevel(name, raw) }
	}

	ph, err := ask(ctx, p, "Enter Soil pH level: ", soil.ParsePH)
	if err != nil {
		return soil.Sample{}, err
	}
	moisture, err := ask(ctx, p, "Enter Soil Moisture level (%): ", level("moisture"))
	if err != nil {
		return soil.Sample{}, err
	}
	nitrogen, err := ask(ctx, p, "Enter Soil Nitrogen level: ", level("nitrogen"))
	if err != nil {
		return soil.Sample{}, err
	}
	phosphorus, err := ask(ctx, p, "Enter Soil Phosphorus level: ", level("phosphorus"))
	if err != nil {
		return soil.Sample{}, err
	}
	potassium, err := ask(ctx, p, "Enter Soil Potassium level: ", level("potassium"))
	if err != nil {
		return soil.Sample{}, err
	}

	return soil.NewSample(ph, moisture, soil.NewNutrientProfile(nitrogen, phosphorus, potassium)), nil
}
