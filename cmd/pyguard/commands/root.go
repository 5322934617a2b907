// Package commands implements the CLI commands for pyguard.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pyguard/internal/adapters/detector"
	"go.trai.ch/pyguard/internal/app"
	"go.trai.ch/pyguard/internal/build"
)

// CLI represents the command line interface for pyguard.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, args []string, opts app.RunOptions) error
	Check(ctx context.Context, w io.Writer, opts app.RunOptions) error
	Candidates(ctx context.Context, w io.Writer, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pyguard",
		Short:         "Run Python programs under a recent enough interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logFormat, _ := cmd.Flags().GetString("log-format")
			if _, err := detector.ResolveFormat(detector.FormatAuto, logFormat); err != nil {
				return fmt.Errorf("invalid argument %q for \"--log-format\" flag: %w", logFormat, err)
			}
			return nil
		},
	}

	// Registered before the version flag so that -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.String("python", "", "Interpreter to check first (default from pyguard.yaml or python3)")
	flags.String("soft", "", "Preferred minimum version, e.g. 3.6")
	flags.String("hard", "", "Lowest version a replacement interpreter may have")
	flags.String("floor", "", "Versions below this fail without searching")
	flags.BoolP("verbose", "v", false, "Log every candidate that is tried")
	flags.String("log-format", "auto", "Log format: auto, pretty, or json")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newCandidatesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// runOptions reads the shared flags of cmd.
func runOptions(cmd *cobra.Command) app.RunOptions {
	flags := cmd.Flags()
	python, _ := flags.GetString("python")
	soft, _ := flags.GetString("soft")
	hard, _ := flags.GetString("hard")
	floor, _ := flags.GetString("floor")
	verbose, _ := flags.GetBool("verbose")
	logFormat, _ := flags.GetString("log-format")

	return app.RunOptions{
		Interpreter: python,
		Soft:        soft,
		Hard:        hard,
		Floor:       floor,
		Verbose:     verbose,
		LogFormat:   logFormat,
	}
}
