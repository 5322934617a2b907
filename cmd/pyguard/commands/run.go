package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] [--] [script.py] [args...]",
		Short: "Check the interpreter, then run the program with the best one available",
		Long: "Run probes the configured interpreter. If it is too old, run searches for a\n" +
			"newer versioned interpreter on PATH and passes the arguments to it unchanged.\n" +
			"Without arguments only the check is performed.\n\n" +
			"The configured interpreter (--python, default python3) must be installed:\n" +
			"if it cannot report its version, run fails before searching.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), args, runOptions(cmd))
		},
	}
	// Everything after the script name belongs to the script.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
