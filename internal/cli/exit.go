package cli

import (
	"errors"

	"github.com/promq-io/promq/internal/promapi"
)

// ExitCode maps a command error to the process exit code: 0 for success
// (including empty-but-valid results), 2 for server and transport failures,
// 1 for everything detected locally from user input.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var serverErr *promapi.ServerError
	var transportErr *promapi.TransportError
	if errors.As(err, &serverErr) || errors.As(err, &transportErr) {
		return 2
	}

	return 1
}
