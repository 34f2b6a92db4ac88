package main

import (
	"fmt"

	"github.com/aretw0/nfasim"
	"github.com/aretw0/nfasim/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nfasim",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(out, termenv.NewOutput(out).EnvColorProfile())
		}
		fmt.Fprintf(out, "nfasim version %s\n", nfasim.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("banner", false, "Print the banner before the version")
}
