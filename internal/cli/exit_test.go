package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/promq-io/promq/internal/cli/helpers"
	"github.com/promq-io/promq/internal/promapi"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "success",
			err:  nil,
			want: 0,
		},
		{
			name: "bad time expression",
			err:  &helpers.TimeExpressionError{Field: "start", Input: "yesterday"},
			want: 1,
		},
		{
			name: "range error",
			err:  &helpers.RangeError{Start: 200, End: 100},
			want: 1,
		},
		{
			name: "missing matchers",
			err:  errNoMatchers,
			want: 1,
		},
		{
			name: "server error",
			err:  &promapi.ServerError{ErrorType: "bad_data", Message: "parse error"},
			want: 2,
		},
		{
			name: "transport error",
			err:  &promapi.TransportError{URL: "http://localhost:9090", Err: errors.New("connection refused")},
			want: 2,
		},
		{
			name: "wrapped transport error",
			err:  fmt.Errorf("series: %w", &promapi.TransportError{URL: "x", Err: errors.New("refused")}),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
