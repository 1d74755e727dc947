// Package helpers provides shared utilities for CLI commands: time
// expression parsing, range validation, flag wiring, and client setup.
package helpers

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// absoluteLayout accepts RFC3339 with the literal Z suffix only. Offset
// forms like 2024-01-01T00:00:00+02:00 are rejected on purpose; all
// absolute times are UTC.
const absoluteLayout = "2006-01-02T15:04:05Z"

var relativePattern = regexp.MustCompile(`^(\d+)([smhd])$`)

var unitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

// Resolved is an absolute point in time produced from one time expression.
// Relative records whether the expression was anchored at "now"; it is kept
// for user-facing echoing only.
type Resolved struct {
	Unix     int64
	Relative bool
}

// TimeExpressionError reports a time expression that matches neither the
// RFC3339 grammar, the relative-duration grammar, nor the literal "now".
// Field names the flag the expression came from when known.
type TimeExpressionError struct {
	Field string
	Input string
}

func (e *TimeExpressionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid --%s time %q", e.Field, e.Input)
	}
	return fmt.Sprintf("invalid time expression %q", e.Input)
}

// Hint returns remediation text shown below the error message.
func (e *TimeExpressionError) Hint() string {
	return `Use an RFC3339 UTC timestamp (2024-01-02T15:04:05Z), a relative duration (30s, 5m, 2h, 1d), or "now".`
}

// ParseTimeExpression resolves a time expression against the given now.
//
// Accepted forms: the literal "now", an RFC3339 UTC timestamp, or a
// relative duration <n><unit> with unit s/m/h/d meaning "n units before
// now". Relative expressions are always anchored at now, never at another
// flag's value, so now must be captured once per command invocation.
func ParseTimeExpression(input string, now time.Time) (Resolved, error) {
	if input == "now" {
		return Resolved{Unix: now.Unix(), Relative: true}, nil
	}

	if m := relativePattern.FindStringSubmatch(input); m != nil {
		magnitude, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Resolved{}, &TimeExpressionError{Input: input}
		}
		return Resolved{
			Unix:     now.Unix() - magnitude*unitSeconds[m[2]],
			Relative: true,
		}, nil
	}

	if t, err := time.Parse(absoluteLayout, input); err == nil {
		return Resolved{Unix: t.Unix()}, nil
	}

	return Resolved{}, &TimeExpressionError{Input: input}
}
