// Package shell runs interpreter processes: it locates them on PATH, probes
// their version and hands control over to them.
package shell

import (
	"os"

	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator implements ports.Locator against the PATH of the current environment.
type Locator struct {
	environ func() []string
}

// NewLocator creates a Locator that reads the process environment.
func NewLocator() *Locator {
	return &Locator{environ: os.Environ}
}

// LookPath resolves program to an executable path.
func (l *Locator) LookPath(program string) (string, error) {
	path, err := lookPath(program, l.environ())
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInterpreterNotFound.Error()), "program", program)
	}
	return path, nil
}
