package main

import (
	"os"

	"github.com/aretw0/nfasim/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check the automaton for consistency",
	Long: `Compiles the automaton, reporting every construction problem at once, then crawls it
from the start state and warns about unreachable states, dead states and unused symbols.
Fails when no accept state can be reached.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cmd.Context(), args[0], os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
