package domain

// Status is the result of a version check.
type Status int

const (
	// StatusPassed means the active interpreter meets the soft minimum.
	StatusPassed Status = iota
	// StatusTolerated means the active interpreter is between the hard and soft
	// minimums and no better candidate could be launched.
	StatusTolerated
	// StatusHandedOff means another interpreter received control.
	StatusHandedOff
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusTolerated:
		return "tolerated"
	case StatusHandedOff:
		return "handed-off"
	default:
		return "unknown"
	}
}

// Outcome reports what the guard decided.
type Outcome struct {
	Status Status
	// Program is the candidate that received control when Status is StatusHandedOff.
	Program string
	// ExitCode is the child's status on platforms that spawn instead of replacing.
	ExitCode int
}

// Proceeds reports whether the caller should keep running on the active interpreter.
func (o Outcome) Proceeds() bool {
	return o.Status == StatusPassed || o.Status == StatusTolerated
}
