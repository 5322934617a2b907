package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrInterpreterTooOld is returned when the active interpreter is below the legacy floor.
	ErrInterpreterTooOld = zerr.New("interpreter is too old")

	// ErrLegacyMajorUnsupported is returned when the active major version predates the hard minimum.
	ErrLegacyMajorUnsupported = zerr.New("legacy major version is no longer supported")

	// ErrInterpreterVersionTooOld is returned when the active version is below the hard minimum.
	ErrInterpreterVersionTooOld = zerr.New("interpreter version is below the hard minimum")

	// ErrVersionParseFailed is returned when a version string cannot be parsed.
	ErrVersionParseFailed = zerr.New("failed to parse interpreter version")

	// ErrInvalidPolicy is returned when the version requirements are inconsistent.
	ErrInvalidPolicy = zerr.New("invalid version policy")

	// ErrProbeFailed is returned when an interpreter cannot report its version.
	ErrProbeFailed = zerr.New("failed to probe interpreter version")

	// ErrInterpreterNotFound is returned when an interpreter is not on PATH.
	ErrInterpreterNotFound = zerr.New("interpreter not found")

	// ErrHandoffFailed is returned when a candidate cannot be launched.
	ErrHandoffFailed = zerr.New("failed to hand off to interpreter")

	// ErrInvalidLogFormat is returned when --log-format is not auto, pretty or json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected auto, pretty or json")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)

// VersionError is the terminal diagnostic for an interpreter that cannot run the program.
type VersionError struct {
	// Kind is one of ErrInterpreterTooOld, ErrLegacyMajorUnsupported or ErrInterpreterVersionTooOld.
	Kind     error
	Active   Version
	Required Version
}

func (e *VersionError) Error() string {
	switch e.Kind {
	case ErrInterpreterTooOld:
		return "Your Python version is too old. Please use Python " + e.Required.String() + " or newer instead."
	case ErrLegacyMajorUnsupported:
		return "Python " + strconv.Itoa(e.Active.Major) + " is no longer supported; Please upgrade to Python " +
			e.Required.String() + "+."
	default:
		return "Python " + strconv.Itoa(e.Active.Major) + " version is too old; Please use Python " +
			e.Required.String() + " or newer."
	}
}

func (e *VersionError) Unwrap() error {
	return e.Kind
}

// ExitStatusError carries a non-zero exit status from an interpreter that received control.
type ExitStatusError struct {
	Program string
	Code    int
}

func (e *ExitStatusError) Error() string {
	return e.Program + " exited with status " + strconv.Itoa(e.Code)
}
