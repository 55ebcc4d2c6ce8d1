package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func promptYesNo(message string) bool {
	return promptYesNoIO(os.Stdin, os.Stdout, message)
}

func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes"
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			c := one[0]
			if c == '\n' || c == '\r' {
				return string(buf), nil
			}
			buf = append(buf, c)
		}
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
	}
}

// confirm asks before a destructive action. Returns true without prompting
// when the user pre-approved with --yes or when stdin is not a terminal.
func confirm(app *App, yes bool, message string) bool {
	if yes || !app.interactive() {
		return true
	}
	return promptYesNo(fmt.Sprintf("%s [y/N]: ", message))
}
