package guard

import "go.trai.ch/pyguard/internal/core/domain"

// UpgradeCandidates returns the versions tried first: the soft minimum and the
// next UpgradeWindow-1 minor releases, in ascending order.
func UpgradeCandidates(p domain.Policy) []domain.Version {
	out := make([]domain.Version, 0, p.UpgradeWindow)
	for inc := range p.UpgradeWindow {
		out = append(out, domain.NewVersion(p.Soft.Major, p.Soft.Minor+inc))
	}
	return out
}

// DowngradeCandidates returns the versions between the hard and soft minimums,
// newest first. The list stops before the first version that is not newer than
// active, so the running interpreter is never relaunched and never downgraded.
func DowngradeCandidates(p domain.Policy, active domain.Version) []domain.Version {
	var out []domain.Version
	for minor := p.Soft.Minor - 1; minor >= p.Hard.Minor; minor-- {
		v := domain.NewVersion(p.Soft.Major, minor)
		if !active.Less(v) {
			break
		}
		out = append(out, v)
	}
	return out
}
