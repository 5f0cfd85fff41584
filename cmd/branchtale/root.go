package main

import (
	"fmt"
	"os"

	"github.com/aretw0/branchtale/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "branchtale",
	Short: "branchtale is a choose-your-own-adventure reader",
	Long: `branchtale reads a branching story from two tables, NODES and CHOICES,
and lets you walk it one choice at a time. At an ending it shows the full path you took.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	config.RegisterFlags(rootCmd.PersistentFlags())
}

// loadConfig resolves the configuration against the flags of cmd.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()
	// A positional argument is shorthand for --dir.
	if !flags.Changed("dir") && len(args) > 0 {
		if err := flags.Set("dir", args[0]); err != nil {
			return nil, err
		}
	}
	return config.Load(flags)
}
