// Package app implements the application layer for pyguard.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/pyguard/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/pyguard/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/pyguard/internal/core/ports"
	"go.trai.ch/pyguard/internal/engine/guard"
	"go.trai.ch/zerr"
)

// defaultProbeLimit bounds concurrent interpreter probes in Candidates.
const defaultProbeLimit = 4

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	launcher     ports.Launcher
	prober       ports.Prober
	locator      ports.Locator
	logger       ports.Logger
	stdout       io.Writer
	workDir      string
	probeLimit   int
	detectFormat func() detector.LogFormat
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	launcher ports.Launcher,
	prober ports.Prober,
	locator ports.Locator,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		launcher:     launcher,
		prober:       prober,
		locator:      locator,
		logger:       log,
		stdout:       os.Stdout,
		workDir:      ".",
		probeLimit:   defaultProbeLimit,
		detectFormat: detector.DetectEnvironment,
	}
}

// WithStdout redirects the messages Run prints for the user.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir sets the directory configuration discovery starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// RunOptions carries command line overrides for the configuration.
type RunOptions struct {
	Interpreter string
	Soft        string
	Hard        string
	Floor       string
	Verbose     bool
	LogFormat   string
}

// Run checks the active interpreter and hands args over to the right one.
//
// When the active interpreter is acceptable it receives args itself. With no
// args there is nothing to run, so Run only reports that the check passed.
func (a *App) Run(ctx context.Context, args []string, opts RunOptions) error {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}

	active, err := a.probeActive(ctx, cfg.Interpreter)
	if err != nil {
		return err
	}

	g := guard.New(a.launcher, a.prober, a.logger, cfg.Policy)
	out, err := g.Check(ctx, active, args)
	if err != nil {
		return err
	}
	a.logger.Debug("version check " + out.Status.String())

	if !out.Proceeds() {
		return exitStatus(out.Program, out.ExitCode)
	}

	if len(args) == 0 {
		_, _ = fmt.Fprintln(a.stdout, "Python check passed")
		return nil
	}

	code, err := a.launcher.Handoff(ctx, cfg.Interpreter, args)
	if err != nil {
		return zerr.With(err, "interpreter", cfg.Interpreter)
	}
	return exitStatus(cfg.Interpreter, code)
}

// resolveConfig loads the configuration file and applies flag overrides.
func (a *App) resolveConfig(opts RunOptions) (*domain.Config, error) {
	if err := a.configureLogging(opts); err != nil {
		return nil, err
	}

	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Interpreter != "" {
		cfg.Interpreter = opts.Interpreter
	}

	overrides := []struct {
		flag   string
		value  string
		target *domain.Version
	}{
		{"soft", opts.Soft, &cfg.Policy.Soft},
		{"hard", opts.Hard, &cfg.Policy.Hard},
		{"floor", opts.Floor, &cfg.Policy.Floor},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		v, err := domain.ParseVersionString(o.value)
		if err != nil {
			return nil, zerr.With(err, "flag", o.flag)
		}
		*o.target = v
	}

	if err := cfg.Policy.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configureLogging applies the verbosity and format flags when the logger supports them.
func (a *App) configureLogging(opts RunOptions) error {
	format, err := detector.ResolveFormat(a.detectFormat(), opts.LogFormat)
	if err != nil {
		return zerr.With(err, "flag", "log-format")
	}

	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(opts.Verbose)
	}
	if j, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		j.SetJSON(format == detector.FormatJSON)
	}
	return nil
}

func (a *App) probeActive(ctx context.Context, interpreter string) (domain.Version, error) {
	active, err := a.prober.Probe(ctx, interpreter)
	if err != nil {
		return domain.Version{}, zerr.With(err, "interpreter", interpreter)
	}
	a.logger.Debug(fmt.Sprintf("%s reports Python %s", interpreter, active))
	return active, nil
}

// exitStatus turns a child's exit code into the error main maps to a status.
func exitStatus(program string, code int) error {
	if code == 0 {
		return nil
	}
	return &domain.ExitStatusError{Program: program, Code: code}
}

// Check reports which interpreter Run would use, without executing anything.
func (a *App) Check(ctx context.Context, w io.Writer, opts RunOptions) error {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}

	active, err := a.probeActive(ctx, cfg.Interpreter)
	if err != nil {
		return err
	}

	g := guard.New(shell.NewDryRunLauncher(a.locator), a.prober, a.logger, cfg.Policy)
	out, err := g.Check(ctx, active, nil)
	if err != nil {
		return err
	}

	renderVerdict(w, cfg, active, out)
	return nil
}
