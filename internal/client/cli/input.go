package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal seams, replaced in tests.
var (
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// ReadField prints "label: " and returns the trimmed line. A last line
// without a trailing newline still counts as input.
func ReadField(reader *bufio.Reader, w io.Writer, label string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret reads a password. On a terminal the input is not echoed; when
// stdin is piped it is read as a plain line from reader, which lets the
// client be scripted. The caller wipes the result.
func ReadSecret(reader *bufio.Reader, w io.Writer, label string) ([]byte, error) {
	fd := stdinFd()
	if !isTerminal(fd) {
		s, err := ReadField(reader, w, label)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}

	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	return pw, nil
}
