// Package detector picks the log format from the environment.
package detector

import (
	"os"

	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// LogFormat represents how diagnostics are rendered.
type LogFormat int

const (
	// FormatAuto automatically detects the appropriate format.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored, human-readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per line for log collectors.
	FormatJSON
)

// DetectEnvironment returns the recommended format based on the environment.
// It checks whether stderr is a TTY and whether CI environment variables are set.
// Only a CI run with redirected stderr switches to JSON.
func DetectEnvironment() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"

	if !isTTY && isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the user flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "json", or empty. Anything else
// is rejected.
func ResolveFormat(autoDetected LogFormat, userFlag string) (LogFormat, error) {
	switch userFlag {
	case "", "auto":
		return autoDetected, nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return autoDetected, zerr.With(domain.ErrInvalidLogFormat, "log_format", userFlag)
	}
}
