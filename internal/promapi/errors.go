package promapi

import "fmt"

// ServerError reports a payload with status "error". The query reached the
// server; the server rejected it or failed to evaluate it.
type ServerError struct {
	ErrorType string
	Message   string
}

func (e *ServerError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("server returned %s error: %s", e.ErrorType, e.Message)
	}
	return fmt.Sprintf("server returned error: %s", e.Message)
}

// TransportError reports a connection, authentication, or protocol failure
// below the API payload level. The cause is opaque to the query pipeline.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Hint returns remediation text shown below the error message.
func (e *TransportError) Hint() string {
	return "Check that the server is reachable, or point promq at another one with 'promq config set-server <url>'."
}
