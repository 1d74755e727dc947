package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/promq-io/promq/internal/cli"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	// Some errors carry remediation text for the user.
	var hinter interface{ Hint() string }
	if errors.As(err, &hinter) {
		_, _ = fmt.Fprintf(os.Stderr, "\n%s\n", hinter.Hint())
	}

	os.Exit(cli.ExitCode(err))
}
