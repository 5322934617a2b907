package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "pyguard.yaml"

	// DefaultInterpreter is the interpreter probed when none is configured.
	DefaultInterpreter = "python3"

	// DefaultPrefix is the stem of versioned candidate names.
	DefaultPrefix = "python"

	// DefaultUpgradeWindow is how many minor releases from the soft minimum upward are tried.
	DefaultUpgradeWindow = 10

	// ProbeScript is the inline program a candidate runs to report its version.
	ProbeScript = "import sys; print(sys.version_info.major, sys.version_info.minor)"
)

// Policy describes which interpreter versions are acceptable and how to search for them.
type Policy struct {
	// Floor is the absolute legacy floor. Below it no search is attempted.
	Floor Version
	// Soft is the preferred minimum. Meeting it skips the search.
	Soft Version
	// Hard is the oldest version a hand-off may target.
	Hard Version
	// UpgradeWindow is the number of minor versions tried from Soft upward.
	UpgradeWindow int
	// Prefix is the stem of versioned names, e.g. "python" for "python3.6".
	Prefix string
	// Generic is the version-agnostic interpreter tried last.
	Generic string
}

// DefaultPolicy returns the built-in requirements.
func DefaultPolicy() Policy {
	return Policy{
		Floor:         NewVersion(2, 7),
		Soft:          NewVersion(3, 6),
		Hard:          NewVersion(3, 5),
		UpgradeWindow: DefaultUpgradeWindow,
		Prefix:        DefaultPrefix,
		Generic:       DefaultInterpreter,
	}
}

// Validate checks that the policy describes a searchable range.
func (p Policy) Validate() error {
	switch {
	case p.Soft.Less(p.Hard):
		return zerr.With(zerr.With(ErrInvalidPolicy, "soft", p.Soft.String()), "hard", p.Hard.String())
	case p.Hard.Less(p.Floor):
		return zerr.With(zerr.With(ErrInvalidPolicy, "floor", p.Floor.String()), "hard", p.Hard.String())
	case p.Soft.Major != p.Hard.Major:
		return zerr.With(ErrInvalidPolicy, "reason", "soft and hard minimums must share a major version")
	case p.UpgradeWindow < 1:
		return zerr.With(ErrInvalidPolicy, "upgrade_window", p.UpgradeWindow)
	case p.Prefix == "":
		return zerr.With(ErrInvalidPolicy, "reason", "empty candidate prefix")
	case p.Generic == "":
		return zerr.With(ErrInvalidPolicy, "reason", "empty generic interpreter")
	}
	return nil
}

// CandidateName returns the versioned executable name for v, e.g. "python3.6".
func (p Policy) CandidateName(v Version) string {
	return p.Prefix + strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Config is the resolved launcher configuration.
type Config struct {
	// Interpreter is the active interpreter that is probed first.
	Interpreter string
	Policy      Policy
	// Path is the configuration file the values came from, empty for defaults.
	Path string
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Interpreter: DefaultInterpreter,
		Policy:      DefaultPolicy(),
	}
}
