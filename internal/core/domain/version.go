package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is an interpreter release identified by its major and minor numbers.
type Version struct {
	Major int
	Minor int
}

// NewVersion creates a Version.
func NewVersion(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to or after other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major < other.Major:
		return -1
	case v.Major > other.Major:
		return 1
	case v.Minor < other.Minor:
		return -1
	case v.Minor > other.Minor:
		return 1
	default:
		return 0
	}
}

// Less reports whether v is strictly older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// AtLeast reports whether v is other or newer.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// MarshalYAML renders the version in its dotted form.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML accepts the dotted form, e.g. "3.6".
func (v *Version) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseVersionString(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVersion parses interpreter probe output: two whitespace-separated integers.
func ParseVersion(output string) (Version, error) {
	fields := strings.Fields(output)
	if len(fields) != 2 {
		return Version{}, zerr.With(ErrVersionParseFailed, "output", output)
	}
	return parseParts(output, fields[0], fields[1])
}

// ParseVersionString parses the dotted "major.minor" form used by flags and config.
func ParseVersionString(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, zerr.With(ErrVersionParseFailed, "version", s)
	}
	return parseParts(s, major, minor)
}

func parseParts(raw, majorPart, minorPart string) (Version, error) {
	major, err := strconv.Atoi(majorPart)
	if err != nil || major < 0 {
		return Version{}, zerr.With(ErrVersionParseFailed, "version", raw)
	}
	minor, err := strconv.Atoi(minorPart)
	if err != nil || minor < 0 {
		return Version{}, zerr.With(ErrVersionParseFailed, "version", raw)
	}
	return Version{Major: major, Minor: minor}, nil
}
