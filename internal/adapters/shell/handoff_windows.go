//go:build windows

package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/zerr"
)

// handoff spawns the interpreter with inherited stdio and waits for it, since
// Windows cannot replace a running process image.
func handoff(ctx context.Context, path string, argv, env []string) (int, error) {
	cmd := exec.CommandContext(ctx, path, argv[1:]...) //nolint:gosec // interpreter chosen by the version search
	cmd.Args[0] = argv[0]
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrHandoffFailed.Error()), "path", path)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		// The child already ran, so searching further would run the program twice.
		return 1, nil
	}
	return 0, nil
}
