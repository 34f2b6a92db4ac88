package main

import (
	"os"

	"github.com/aretw0/nfasim/internal/cli"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Summarize the automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		return cli.Describe(cmd.Context(), args[0], plain, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().Bool("plain", false, "Disable terminal styling")
}
