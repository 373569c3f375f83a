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

var errNotInteger = errors.New("not a whole number")

// readLine reads one line and trims surrounding whitespace. A final line
// without a newline is returned as is; EOF with nothing read is io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptText prints prompt and reads the answer.
func promptText(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	return readLine(r)
}

// promptDefault is promptText where an empty answer returns current.
func promptDefault(r *bufio.Reader, w io.Writer, prompt, current string) (string, error) {
	s, err := promptText(r, w, fmt.Sprintf("%s [%s]", prompt, current))
	if err != nil {
		return "", err
	}
	if s == "" {
		return current, nil
	}
	return s, nil
}

// parseQuantity accepts any integer, negative included.
func parseQuantity(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errNotInteger
	}
	return n, nil
}

// parseID reads the numeric material id given after a command.
func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// passwordReader returns a function that reads a password without echo
// when stdin is a terminal, and as a plain line otherwise.
func passwordReader(r *bufio.Reader, w io.Writer) func() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return linePasswordReader(r, w)
	}
	return func() (string, error) {
		if _, err := fmt.Fprint(w, "Password: "); err != nil {
			return "", err
		}
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
}

// linePasswordReader reads the password as a plain line. Only the line
// ending is removed so it matches what term.ReadPassword returns.
func linePasswordReader(r *bufio.Reader, w io.Writer) func() (string, error) {
	return func() (string, error) {
		if _, err := fmt.Fprint(w, "Password: "); err != nil {
			return "", err
		}
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
