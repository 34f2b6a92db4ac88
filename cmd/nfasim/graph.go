package main

import (
	"os"

	"github.com/aretw0/nfasim/internal/cli"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) of the automaton. With --input the word is
simulated and the states it visited and ended in are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		lenient, _ := cmd.Flags().GetBool("lenient")

		policy := cfg.Policy()
		if lenient {
			policy = domain.PolicyLenient
		}
		return cli.Graph(cmd.Context(), args[0], input, policy, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("input", "i", "", "Word to simulate and highlight")
	graphCmd.Flags().Bool("lenient", false, "Let unknown symbols empty the active set instead of failing")
}
