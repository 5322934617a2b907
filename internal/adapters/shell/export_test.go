package shell

import "go.trai.ch/pyguard/internal/core/ports"

// LookPath exposes lookPath for tests.
func LookPath(file string, env []string) (string, error) {
	return lookPath(file, env)
}

// NewLogWriter exposes logWriter for tests.
func NewLogWriter(logger ports.Logger, prefix string) interface {
	Write(p []byte) (int, error)
	Close() error
} {
	return &logWriter{logger: logger, prefix: prefix}
}
