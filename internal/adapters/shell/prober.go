package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/pyguard/internal/core/ports"
	"go.trai.ch/zerr"
)

// Prober implements ports.Prober by running the interpreter with an inline
// check program and parsing what it prints.
type Prober struct {
	locator *Locator
	logger  ports.Logger
	environ func() []string
}

// NewProber creates a new Prober.
func NewProber(logger ports.Logger) *Prober {
	return &Prober{
		locator: NewLocator(),
		logger:  logger,
		environ: os.Environ,
	}
}

// Probe returns the (major, minor) version program reports on stdout.
// Anything it writes to stderr is logged at debug level.
func (p *Prober) Probe(ctx context.Context, program string) (domain.Version, error) {
	path, err := p.locator.LookPath(program)
	if err != nil {
		return domain.Version{}, err
	}

	var stdout bytes.Buffer
	stderrLog := &logWriter{logger: p.logger, prefix: program + ": "}

	cmd := exec.CommandContext(ctx, path, "-c", domain.ProbeScript) //nolint:gosec // interpreter chosen by the version search
	cmd.Args[0] = program
	cmd.Env = p.environ()
	cmd.Stdout = &stdout
	cmd.Stderr = stderrLog

	runErr := cmd.Run()
	_ = stderrLog.Close()

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err := zerr.With(zerr.Wrap(runErr, domain.ErrProbeFailed.Error()), "program", program)
		return domain.Version{}, zerr.With(err, "exit_code", exitCode)
	}

	v, err := domain.ParseVersion(stdout.String())
	if err != nil {
		return domain.Version{}, zerr.With(err, "program", program)
	}
	return v, nil
}
