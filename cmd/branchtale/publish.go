package main

import (
	"github.com/aretw0/branchtale/internal/cli"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish [dir]",
	Short: "Copy NODES and CHOICES from a directory into Redis",
	Long: `Validates that both tables parse, then stores each one under <redis-prefix><TABLE>.
Readers can then be started with --source redis.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		return cli.Publish(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
