// Package output builds termenv outputs that agree on color handling across
// the logger and the command output.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for w.
// NO_COLOR always wins. Writers that are not terminals get plain ASCII so that
// piped output and logs stay free of escape codes.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok {
		return termenv.NewOutput(f).EnvColorProfile()
	}
	return termenv.Ascii
}

// New creates a termenv.Output for w using ColorProfile.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	return termenv.NewOutput(w,
		termenv.WithProfile(ColorProfile(w)),
		termenv.WithTTY(true),
	)
}

// Paint renders s in color on out, or returns s unchanged for the ASCII profile.
func Paint(out *termenv.Output, s string, color string) string {
	return out.String(s).Foreground(out.Color(color)).String()
}
