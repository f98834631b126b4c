package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// promptLine prints a prompt and reads a single line of input, trimming the
// trailing newline. A partial line before EOF is returned as-is.
func (r *Runner) promptLine(prompt string) (string, error) {
	if err := r.writePlain("%s: ", prompt); err != nil {
		return "", err
	}

	reader := bufio.NewReader(r.input)
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// promptPassword reads a password from the terminal without echo. When
// stdin is not a terminal (tests, pipes) it falls back to a plain line read.
func (r *Runner) promptPassword(prompt string) (string, error) {
	if f, ok := r.input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if err := r.writePlain("%s: ", prompt); err != nil {
			return "", err
		}
		pw, err := readPassword(int(f.Fd()))
		r.writePlain("\n")
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pw), nil
	}

	return r.promptLine(prompt)
}
