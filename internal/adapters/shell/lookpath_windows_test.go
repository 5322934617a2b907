//go:build windows

package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyguard/internal/adapters/shell"
)

func TestLookPath_PathextFromEnv(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "python3.9.exe")
	require.NoError(t, os.WriteFile(want, []byte("MZ"), 0o600))

	// The process PATHEXT must not leak into an explicit environment.
	t.Setenv("PATHEXT", ".EXE")

	got, err := shell.LookPath("python3.9", []string{"Path=" + dir, "PATHEXT=.EXE;.CMD"})
	require.NoError(t, err)
	assert.Equal(t, "python3.9.exe", filepath.Base(got))

	_, err = shell.LookPath("python3.9", []string{"Path=" + dir, "PATHEXT=.CMD"})
	require.Error(t, err)
}
