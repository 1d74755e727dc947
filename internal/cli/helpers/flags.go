package helpers

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// WindowFlags holds the optional --start/--end flag values shared by the
// labels and series commands.
type WindowFlags struct {
	Start string
	End   string
}

// AddFlags adds the time window flags to a FlagSet.
func (f *WindowFlags) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&f.Start, "start", "", "Window start (RFC3339 UTC, relative duration, or 'now')")
	flags.StringVar(&f.End, "end", "", "Window end (RFC3339 UTC, relative duration, or 'now')")
}

// Window validates the flag values against the given now.
func (f *WindowFlags) Window(now time.Time) (Window, error) {
	return ValidateWindow(f.Start, f.End, now)
}

// AddJSONFlag adds the standard --json output flag to a command.
func AddJSONFlag(cmd *cobra.Command, jsonVar *bool) {
	cmd.Flags().BoolVar(jsonVar, "json", false, "Output JSON instead of text")
}
