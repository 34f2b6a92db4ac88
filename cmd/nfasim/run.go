package main

import (
	"os"

	"github.com/aretw0/nfasim/internal/cli"
	"github.com/aretw0/nfasim/internal/config"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/report"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Simulate input words and print the state-set trace",
	Long: `Loads an automaton (text, YAML, JSON or Markdown) and prints, for every input word,
one row per consumed symbol followed by the verdict. Words come from --input, then from
the definition itself, then from standard input (one word per line).

A reject is a normal outcome and exits 0.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, _ := cmd.Flags().GetStringArray("input")
		lenient, _ := cmd.Flags().GetBool("lenient")
		color, _ := cmd.Flags().GetBool("color")
		save, _ := cmd.Flags().GetBool("save")

		format := cfg.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		policy := cfg.Policy()
		if lenient {
			policy = domain.PolicyLenient
		}

		opts := cli.RunOptions{
			Path:   args[0],
			Inputs: inputs,
			Policy: policy,
			Format: report.Format(format),
			Color:  color,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}
		if save {
			storeCfg := cfg
			if storeCfg.Store == config.StoreMemory {
				storeCfg.Store = config.StoreFile
			}
			store, closeStore, err := cli.OpenStore(storeCfg)
			if err != nil {
				return err
			}
			defer closeStore()
			opts.Store = store
		}

		_, err := cli.Run(cmd.Context(), opts, logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayP("input", "i", nil, `Input word, space separated or a JSON array (repeatable)`)
	runCmd.Flags().Bool("lenient", false, "Let unknown symbols empty the active set instead of failing")
	runCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	runCmd.Flags().Bool("color", false, "Colour the verdict even when stdout is not a terminal")
	runCmd.Flags().Bool("save", false, "Keep a record of every run in the configured store (file by default)")
}
