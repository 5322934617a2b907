// Package guard decides whether the active interpreter is recent enough and,
// if it is not, searches for a better one to hand off to.
package guard

import (
	"context"
	"fmt"

	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/pyguard/internal/core/ports"
)

// Guard runs the one-shot startup version check.
type Guard struct {
	launcher ports.Launcher
	prober   ports.Prober
	logger   ports.Logger
	policy   domain.Policy
}

// New creates a Guard for the given policy.
func New(launcher ports.Launcher, prober ports.Prober, logger ports.Logger, policy domain.Policy) *Guard {
	return &Guard{
		launcher: launcher,
		prober:   prober,
		logger:   logger,
		policy:   policy,
	}
}

// Policy returns the requirements the guard enforces.
func (g *Guard) Policy() domain.Policy {
	return g.policy
}

// Check validates active against the policy.
//
// It returns StatusPassed when active meets the soft minimum, StatusHandedOff
// when a candidate accepted args, and StatusTolerated when active sits between
// the hard and soft minimums with nothing better installed. Every other case
// ends in a *domain.VersionError that the caller reports before exiting 1.
func (g *Guard) Check(ctx context.Context, active domain.Version, args []string) (domain.Outcome, error) {
	p := g.policy

	// Very old interpreters get no search at all.
	if active.Less(p.Floor) {
		return domain.Outcome{}, &domain.VersionError{
			Kind:     domain.ErrInterpreterTooOld,
			Active:   active,
			Required: p.Soft,
		}
	}

	if active.AtLeast(p.Soft) {
		return domain.Outcome{Status: domain.StatusPassed}, nil
	}

	for _, v := range UpgradeCandidates(p) {
		if out, ok := g.handoff(ctx, p.CandidateName(v), args); ok {
			return out, nil
		}
	}

	for _, v := range DowngradeCandidates(p, active) {
		if out, ok := g.handoff(ctx, p.CandidateName(v), args); ok {
			return out, nil
		}
	}

	// The generic name is only worth launching if it is a different, acceptable release.
	if generic, err := g.prober.Probe(ctx, p.Generic); err != nil {
		g.logger.Debug(fmt.Sprintf("skipping %s: %v", p.Generic, err))
	} else if generic.AtLeast(p.Hard) && generic != active {
		if out, ok := g.handoff(ctx, p.Generic, args); ok {
			return out, nil
		}
	} else {
		g.logger.Debug(fmt.Sprintf("skipping %s: reports %s", p.Generic, generic))
	}

	switch {
	case active.Major < p.Hard.Major:
		return domain.Outcome{}, &domain.VersionError{
			Kind:     domain.ErrLegacyMajorUnsupported,
			Active:   active,
			Required: p.Hard,
		}
	case active.Less(p.Hard):
		return domain.Outcome{}, &domain.VersionError{
			Kind:     domain.ErrInterpreterVersionTooOld,
			Active:   active,
			Required: p.Hard,
		}
	}

	g.logger.Warn(fmt.Sprintf("Python %s is older than the preferred %s; continuing", active, p.Soft))
	return domain.Outcome{Status: domain.StatusTolerated}, nil
}

func (g *Guard) handoff(ctx context.Context, program string, args []string) (domain.Outcome, bool) {
	code, err := g.launcher.Handoff(ctx, program, args)
	if err != nil {
		g.logger.Debug(fmt.Sprintf("skipping %s: %v", program, err))
		return domain.Outcome{}, false
	}
	return domain.Outcome{
		Status:   domain.StatusHandedOff,
		Program:  program,
		ExitCode: code,
	}, true
}
