package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. A newline is printed after the read to keep the UI
// tidy.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetWithDefault prompts showing the current value; empty input keeps it.
func GetWithDefault(reader *bufio.Reader, label, current string, w io.Writer) (string, error) {
	text, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", label, current), w)
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}

// Confirm asks a yes/no question. Only "y" or "yes" counts as consent.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	text, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(text) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// GetInt prompts until the user enters a whole number (or input fails).
// Empty input returns the current value.
func GetInt(reader *bufio.Reader, label string, current int, w io.Writer) (int, error) {
	for {
		text, err := GetSimpleText(reader, fmt.Sprintf("%s [%d]", label, current), w)
		if err != nil {
			return 0, err
		}
		if text == "" {
			return current, nil
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(w, "Please enter a whole number.")
			continue
		}
		return n, nil
	}
}

// GetFloat prompts until the user enters a number (or input fails).
// Empty input returns the current value.
func GetFloat(reader *bufio.Reader, label string, current float64, w io.Writer) (float64, error) {
	for {
		text, err := GetSimpleText(reader, fmt.Sprintf("%s [%g]", label, current), w)
		if err != nil {
			return 0, err
		}
		if text == "" {
			return current, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(w, "Please enter a number.")
			continue
		}
		return f, nil
	}
}
