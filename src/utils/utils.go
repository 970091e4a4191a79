package utils

import (
	"fmt"
	"io"

	"cabinctl/src/elev"
	"cabinctl/src/scenario"
	"cabinctl/src/types"
)

// PrintStatus overwrites the current terminal line with the cabin status.
func PrintStatus(w io.Writer, s elev.CabinState) {
	fmt.Fprintf(w, "\r%-90s\r", elev.FormatStatus(s))
}

// PrintTrace writes one line per tick, skipping idle ticks unless verbose is set.
func PrintTrace(w io.Writer, trace scenario.Trace, verbose bool) {
	for _, r := range trace {
		if r.Action == types.Nothing && r.Event == types.NoEvent && !verbose {
			continue
		}
		fmt.Fprintf(w, "%4d  %-18s %-18s %s\n", r.Tick, r.Event, elev.FormatAction(r.Action, r.State), elev.FormatStatus(r.State))
	}
}
