// Package prompt reads validated answers from an interactive console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidInput is returned for answers that are not an integer in range
var ErrInvalidInput = errors.New("invalid input")

// Prompter asks questions on out and reads answers line by line from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line shows prompt and returns the next answer without its line ending.
// A final unterminated line is still returned; io.EOF is returned once the
// input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "[Prompter.Line] failed to read answer")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IntInRange keeps asking until the answer is an integer in [low, high].
// Rejected answers are explained on out; only read failures are returned.
func (p *Prompter) IntInRange(prompt string, low, high int) (int, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return 0, errors.Wrapf(err, "[Prompter.IntInRange] no answer for %q", prompt)
		}

		value, err := ParseIntInRange(answer, low, high)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return value, nil
	}
}

// ParseIntInRange converts answer to an int in [low, high], returning an
// error wrapping ErrInvalidInput otherwise
func ParseIntInRange(answer string, low, high int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, errors.Wrap(ErrInvalidInput, "the value entered was not a valid integer")
	}
	if value < low || value > high {
		return 0, errors.Wrapf(ErrInvalidInput, "the value must be between %d and %d", low, high)
	}
	return value, nil
}
