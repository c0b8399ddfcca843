// Package output creates termenv outputs whose color profile follows the destination.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// fder is implemented by writers backed by a file descriptor, such as *os.File.
type fder interface {
	Fd() uintptr
}

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ProfileFor returns the profile for writing to w.
// Files that are not terminals, such as redirected stdout, get Ascii.
func ProfileFor(w io.Writer) termenv.Profile {
	if f, ok := w.(fder); ok && !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return termenv.Ascii
	}
	return ColorProfile()
}

// New creates a termenv.Output for w. A nil w selects os.Stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return NewWithProfile(w, func() termenv.Profile { return ProfileFor(w) }, opts...)
}

// NewWithProfile creates a termenv.Output with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
