package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/pyguard/internal/ui/output"
	"go.trai.ch/pyguard/internal/ui/style"
)

// renderVerdict prints the outcome of a dry-run check.
func renderVerdict(w io.Writer, cfg *domain.Config, active domain.Version, out domain.Outcome) {
	o := output.New(w)
	p := cfg.Policy

	var line string
	switch out.Status {
	case domain.StatusPassed:
		line = output.Paint(o, style.Check, string(style.Green)) +
			fmt.Sprintf(" %s (Python %s) meets the minimum %s", cfg.Interpreter, active, p.Soft)
	case domain.StatusTolerated:
		line = output.Paint(o, style.Warning, string(style.Yellow)) +
			fmt.Sprintf(" %s (Python %s) is below the preferred %s but meets the hard minimum %s",
				cfg.Interpreter, active, p.Soft, p.Hard)
	case domain.StatusHandedOff:
		line = output.Paint(o, style.Dot, string(style.Slate)) +
			fmt.Sprintf(" %s (Python %s) is too old; would hand off to %s", cfg.Interpreter, active, out.Program)
	}
	_, _ = fmt.Fprintln(w, line)
}

// renderCandidates prints one aligned row per probed interpreter.
func renderCandidates(w io.Writer, p domain.Policy, reports []CandidateReport) {
	o := output.New(w)

	header := []string{"INTERPRETER", "ROLE", "VERSION", "STATUS"}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{r.Name, string(r.Role), versionCell(r), statusCell(o, p, r)})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	writeRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				padded[i] = cell
				continue
			}
			padded[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		_, _ = fmt.Fprintln(w, strings.Join(padded, "  "))
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
}

func versionCell(r CandidateReport) string {
	if !r.Found() || r.Err != nil {
		return "-"
	}
	return r.Version.String()
}

func statusCell(o *termenv.Output, p domain.Policy, r CandidateReport) string {
	switch {
	case !r.Found():
		return output.Paint(o, style.Circle, string(style.Slate)) + " missing"
	case r.Err != nil:
		return output.Paint(o, style.Cross, string(style.Red)) + " probe failed"
	case r.Version.AtLeast(p.Soft):
		return output.Paint(o, style.Check, string(style.Green)) + " ok"
	case r.Version.AtLeast(p.Hard):
		return output.Paint(o, style.Warning, string(style.Yellow)) + " tolerated"
	default:
		return output.Paint(o, style.Cross, string(style.Red)) + " too old"
	}
}
