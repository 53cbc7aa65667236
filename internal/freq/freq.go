// internal/freq/freq.go
package freq

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Mode labels. Declaration order is application order.
const (
	ModeGhostNet = "gn"
	ModeStandard = "std"
)

// Table maps mode labels to dial frequencies in Hz.
// Fixed at build time. Do not mutate.
var Table = map[string]int64{
	ModeStandard: 7078000,
	ModeGhostNet: 7107000,
}

// Options mirrors the CLI flags. Flags are not mutually exclusive.
type Options struct {
	GN  bool
	STD bool
}

// Setter is the only part of the client the frequency step needs.
type Setter interface {
	SetFreq(hz int64) error
}

// Apply issues one SetFreq per true flag, gn before std.
// When both are set the radio ends up on the std frequency.
// Errors are printed and do not stop later flags.
func Apply(opts Options, s Setter, out io.Writer) {
	flags := []struct {
		on   bool
		mode string
	}{
		{opts.GN, ModeGhostNet},
		{opts.STD, ModeStandard},
	}

	for _, f := range flags {
		if !f.on {
			continue
		}
		apply(f.mode, Table, s, out)
	}
}

func apply(mode string, table map[string]int64, s Setter, out io.Writer) {
	hz, ok := table[mode]
	if !ok || hz == 0 {
		return
	}

	fmt.Fprintf(out, "Setting frequency to %d Hz\n", hz)
	if err := s.SetFreq(hz); err != nil {
		color.New(color.FgRed).Fprintf(out, "Could not set frequency to %d Hz: %v\n", hz, err)
	}
}
