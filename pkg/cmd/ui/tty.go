// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// confirmAnswer is the only answer that confirms a prompt.
const confirmAnswer = "y"

type TTY struct {
	debug  bool
	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ UI = TTY{}

func NewTTY(debug bool) TTY {
	return TTY{debug, bufio.NewReader(os.Stdin), os.Stdout, os.Stderr}
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	fmt.Fprint(t.stderr, color.New(color.FgYellow).Sprintf(str, args...))
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.stderr, str, args...)
	}
}

// Logger writes human readable debug events to stderr when debug is
// enabled and discards them otherwise.
func (t TTY) Logger() zerolog.Logger {
	if !t.debug {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: t.stderr, NoColor: color.NoColor}).
		Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// AskForConfirmation prints prompt and reads one line. Only "y" confirms;
// an empty answer or end of input declines.
func (t TTY) AskForConfirmation(prompt string) (bool, error) {
	fmt.Fprint(t.stdout, color.New(color.FgCyan).Sprint(prompt))

	answer, err := t.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("Reading confirmation: %s", err)
	}
	return strings.TrimSpace(answer) == confirmAnswer, nil
}

// Used for testing whether TTY writes correct output to stdout/stderr and
// reads answers from stdin
func NewCustomWriterTTY(debug bool, stdin io.Reader, stdout, stderr io.Writer) TTY {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return TTY{debug, bufio.NewReader(stdin), stdout, stderr}
}
