//go:build !windows

package shell

import "os"

func findExecutable(file string, _ []string) (string, error) {
	d, err := os.Stat(file)
	if err != nil {
		return "", err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return file, nil
	}
	return "", os.ErrPermission
}
