package main

import (
	"os"

	"github.com/aretw0/branchtale/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [dir]",
	Short: "Read the story interactively",
	Long: `Loads NODES and CHOICES from the configured source and starts reading at the start node.
Type a choice number to continue, r to restart, q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		headless, _ := cmd.Flags().GetBool("headless")
		interactive := !headless && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

		return cli.RunSession(cmd.Context(), cli.SessionOptions{
			Config:      cfg,
			Input:       os.Stdin,
			Output:      os.Stdout,
			ErrOutput:   os.Stderr,
			Interactive: interactive,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no banner, prompts or colours)")

	// 'run' is the default when no command is provided.
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
