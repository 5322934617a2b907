package ports

import (
	"context"

	"go.trai.ch/pyguard/internal/core/domain"
)

// Prober asks an interpreter for its version out of process.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe runs program with a small inline check and parses the (major, minor)
	// it prints on standard output.
	Probe(ctx context.Context, program string) (domain.Version, error)
}
