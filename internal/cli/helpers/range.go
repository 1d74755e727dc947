package helpers

import (
	"fmt"
	"time"
)

// RangeParams is a validated (start, end, step) triple for a range query.
// It is constructed only by ValidateRange, never from unchecked input.
type RangeParams struct {
	Start int64
	End   int64
	Step  int64
	// Warning carries the step-exceeds-range advisory. It accompanies a
	// successful validation and must not change the exit code.
	Warning string
}

// RangeError reports a range whose start is not before its end. Both
// resolved timestamps are carried for display.
type RangeError struct {
	Start int64
	End   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("start (%s) must be before end (%s)",
		time.Unix(e.Start, 0).UTC().Format(time.RFC3339),
		time.Unix(e.End, 0).UTC().Format(time.RFC3339))
}

// StepError reports a non-positive query step.
type StepError struct {
	Step int64
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step must be a positive number of seconds, got %d", e.Step)
}

// ValidateRange resolves and checks a (start, end, step) triple, short-
// circuiting on the first failure: start parse, end parse, ordering, step
// positivity. Both expressions resolve against the same now. A step larger
// than the range is not an error; it sets Warning and the step is used
// unchanged.
func ValidateRange(startExpr, endExpr string, step int64, now time.Time) (RangeParams, error) {
	start, err := ParseTimeExpression(startExpr, now)
	if err != nil {
		return RangeParams{}, &TimeExpressionError{Field: "start", Input: startExpr}
	}

	end, err := ParseTimeExpression(endExpr, now)
	if err != nil {
		return RangeParams{}, &TimeExpressionError{Field: "end", Input: endExpr}
	}

	if start.Unix >= end.Unix {
		return RangeParams{}, &RangeError{Start: start.Unix, End: end.Unix}
	}

	if step <= 0 {
		return RangeParams{}, &StepError{Step: step}
	}

	params := RangeParams{Start: start.Unix, End: end.Unix, Step: step}
	if span := end.Unix - start.Unix; step > span {
		params.Warning = fmt.Sprintf("step %ds exceeds the %ds range; only one data point will be returned", step, span)
	}

	return params, nil
}

// Window is an optional time filter for the label and series endpoints.
// Either side may be absent.
type Window struct {
	Start *int64
	End   *int64
}

// ValidateWindow is the reduced validator for commands without a step.
// Each side is optional; ordering is enforced only when both are present.
func ValidateWindow(startExpr, endExpr string, now time.Time) (Window, error) {
	var w Window

	if startExpr != "" {
		start, err := ParseTimeExpression(startExpr, now)
		if err != nil {
			return Window{}, &TimeExpressionError{Field: "start", Input: startExpr}
		}
		w.Start = &start.Unix
	}

	if endExpr != "" {
		end, err := ParseTimeExpression(endExpr, now)
		if err != nil {
			return Window{}, &TimeExpressionError{Field: "end", Input: endExpr}
		}
		w.End = &end.Unix
	}

	if w.Start != nil && w.End != nil && *w.Start >= *w.End {
		return Window{}, &RangeError{Start: *w.Start, End: *w.End}
	}

	return w, nil
}
