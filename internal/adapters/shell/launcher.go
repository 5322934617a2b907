package shell

import (
	"context"
	"os"

	"go.trai.ch/pyguard/internal/core/ports"
)

// Launcher implements ports.Launcher by replacing the current process where
// the platform allows it and by spawning and waiting where it does not.
type Launcher struct {
	locator *Locator
	logger  ports.Logger
	environ func() []string
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{
		locator: NewLocator(),
		logger:  logger,
		environ: os.Environ,
	}
}

// Handoff runs program with args. argv[0] stays the name the caller asked for,
// so the interpreter sees the same invocation a shell would give it.
func (l *Launcher) Handoff(ctx context.Context, program string, args []string) (int, error) {
	path, err := l.locator.LookPath(program)
	if err != nil {
		return 0, err
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, program)
	argv = append(argv, args...)

	l.logger.Debug("handing off to " + path)
	return handoff(ctx, path, argv, l.environ())
}

// DryRunLauncher implements ports.Launcher without executing anything. A
// hand-off succeeds when the program resolves on PATH.
type DryRunLauncher struct {
	locator ports.Locator
}

// NewDryRunLauncher creates a DryRunLauncher backed by locator.
func NewDryRunLauncher(locator ports.Locator) *DryRunLauncher {
	return &DryRunLauncher{locator: locator}
}

// Handoff reports whether program could be launched.
func (d *DryRunLauncher) Handoff(_ context.Context, program string, _ []string) (int, error) {
	if _, err := d.locator.LookPath(program); err != nil {
		return 0, err
	}
	return 0, nil
}
