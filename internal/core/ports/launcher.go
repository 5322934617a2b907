// Package ports defines the core interfaces for the application.
package ports

import "context"

// Launcher transfers execution to another interpreter.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Handoff runs program with args forwarded unchanged.
	//
	// On platforms with in-place process replacement a successful call never
	// returns. On platforms that spawn instead, it waits for the child and
	// returns its exit status. A non-nil error means the program could not be
	// found or started, and the caller may try the next candidate.
	Handoff(ctx context.Context, program string, args []string) (int, error)
}
