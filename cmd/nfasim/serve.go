package main

import (
	"github.com/aretw0/nfasim/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves a catalog of Markdown automata over a JSON API: list and inspect automata,
create runs, fetch or delete stored runs, and scrape Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		port := cfg.HTTP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		store, closeStore, err := cli.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		return cli.Serve(cmd.Context(), cli.ServeOptions{
			Dir:             dir,
			Port:            port,
			Policy:          cfg.Policy(),
			Store:           store,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		}, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("dir", ".", "Directory containing the automaton catalog")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
