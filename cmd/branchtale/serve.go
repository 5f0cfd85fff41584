package main

import (
	"github.com/aretw0/branchtale/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve the reader over HTTP",
	Long: `Starts a single shared reader behind a JSON API.

  GET  /view             current view
  POST /choices/{index}  select a choice
  POST /restart          start over
  GET  /events           server-sent view updates
  GET  /metrics          Prometheus metrics`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		return cli.Serve(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
