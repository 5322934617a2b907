package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// lookPath searches for an executable in the directories named by the PATH environment variable.
// Names that already contain a path separator are checked as given.
func lookPath(file string, env []string) (string, error) {
	if strings.ContainsRune(file, '/') || strings.ContainsRune(file, os.PathSeparator) {
		return findExecutable(file, env)
	}

	path := envValue(env, "PATH")

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		if found, err := findExecutable(filepath.Join(dir, file), env); err == nil {
			return found, nil
		}
	}
	return "", exec.ErrNotFound
}

// envValue returns the value of key in env, matching the key case-insensitively.
func envValue(env []string, key string) string {
	for _, e := range env {
		if k, v, ok := strings.Cut(e, "="); ok && strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
