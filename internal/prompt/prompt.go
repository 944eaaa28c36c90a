// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive is returned when confirmation is needed but stdin is not a
// terminal.
var ErrNotInteractive = errors.New("confirmation required but stdin is not a terminal (use --yes)")

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Terminal reads answers from In and writes questions to Out.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	// Fd is checked with term.IsTerminal before asking.
	Fd int
}

// Stdio returns a Terminal on the process's stdin and stderr.
func Stdio() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr, Fd: int(os.Stdin.Fd())}
}

// Confirm prints question and returns true only for an answer of y or yes.
func (t *Terminal) Confirm(question string) (bool, error) {
	if !isTerminal(t.Fd) {
		return false, ErrNotInteractive
	}
	if _, err := fmt.Fprintf(t.Out, "%s [y/N] ", question); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
