package app

import (
	"context"
	"io"

	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/pyguard/internal/engine/guard"
	"golang.org/x/sync/errgroup"
)

// Role describes why an interpreter is part of the search.
type Role string

const (
	// RoleActive is the configured interpreter.
	RoleActive Role = "active"
	// RoleUpgrade is a candidate from the upgrade pass.
	RoleUpgrade Role = "upgrade"
	// RoleDowngrade is a candidate from the downgrade pass.
	RoleDowngrade Role = "downgrade"
	// RoleGeneric is the version-agnostic fallback.
	RoleGeneric Role = "generic"
)

// CandidateReport is one probed interpreter.
type CandidateReport struct {
	Name    string
	Role    Role
	Path    string
	Version domain.Version
	// Err is set when the interpreter is installed but could not report a version.
	Err error
}

// Found reports whether the interpreter resolved on PATH.
func (r CandidateReport) Found() bool {
	return r.Path != ""
}

// Candidates probes every interpreter the search could use and prints a table.
// It only reads; nothing is launched or remembered.
func (a *App) Candidates(ctx context.Context, w io.Writer, opts RunOptions) error {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}

	reports := planReports(cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.probeLimit)

	for i := range reports {
		g.Go(func() error {
			a.probeReport(gctx, &reports[i])
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	renderCandidates(w, cfg.Policy, reports)
	return nil
}

// planReports lists the interpreters in search order, each name once.
func planReports(cfg *domain.Config) []CandidateReport {
	p := cfg.Policy
	seen := make(map[string]bool)
	var reports []CandidateReport

	add := func(name string, role Role) {
		if seen[name] {
			return
		}
		seen[name] = true
		reports = append(reports, CandidateReport{Name: name, Role: role})
	}

	add(cfg.Interpreter, RoleActive)
	for _, v := range guard.UpgradeCandidates(p) {
		add(p.CandidateName(v), RoleUpgrade)
	}
	// Without an active version every candidate down to the hard minimum is listed.
	for _, v := range guard.DowngradeCandidates(p, domain.Version{}) {
		add(p.CandidateName(v), RoleDowngrade)
	}
	add(p.Generic, RoleGeneric)

	return reports
}

func (a *App) probeReport(ctx context.Context, r *CandidateReport) {
	path, err := a.locator.LookPath(r.Name)
	if err != nil {
		return
	}
	r.Path = path

	v, err := a.prober.Probe(ctx, r.Name)
	if err != nil {
		r.Err = err
		return
	}
	r.Version = v
}
