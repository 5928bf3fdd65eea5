package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"passforge/internal/util/memzero"
)

// baseSecretEnv lets scripts and tests supply the base secret without a
// terminal.
const baseSecretEnv = "PASSFORGE_BASE_SECRET"

// readBaseSecret obtains the base secret: environment variable first, then a
// hidden terminal prompt, then a plain line read when stdin is not a
// terminal.
func readBaseSecret() (string, error) {
	if s := os.Getenv(baseSecretEnv); s != "" {
		return s, nil
	}

	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprint(os.Stderr, "Base secret: ")
		b, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		s := string(b)
		memzero.Zero(b)
		return s, nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
