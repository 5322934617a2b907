//go:build windows

package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// findExecutable tries file as given and then with each PATHEXT extension
// listed in env.
func findExecutable(file string, env []string) (string, error) {
	exts := []string{""}
	if filepath.Ext(file) == "" {
		pathext := envValue(env, "PATHEXT")
		if pathext == "" {
			pathext = ".com;.exe;.bat;.cmd"
		}
		for _, e := range strings.Split(strings.ToLower(pathext), ";") {
			if e != "" {
				exts = append(exts, e)
			}
		}
	}

	for _, ext := range exts {
		candidate := file + ext
		if d, err := os.Stat(candidate); err == nil && !d.IsDir() {
			return candidate, nil
		}
	}
	return "", os.ErrNotExist
}
