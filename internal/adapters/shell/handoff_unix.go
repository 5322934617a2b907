//go:build !windows

package shell

import (
	"context"

	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// handoff replaces the current process image. It only returns on failure.
func handoff(_ context.Context, path string, argv, env []string) (int, error) {
	err := unix.Exec(path, argv, env)
	return 0, zerr.With(zerr.Wrap(err, domain.ErrHandoffFailed.Error()), "path", path)
}
