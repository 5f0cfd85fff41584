package main

import (
	"fmt"

	"github.com/aretw0/branchtale"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of branchtale",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("branchtale version %s\n", branchtale.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
