package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parlor",
	Short: "Parlor chat server",
	Long: `Parlor is a minimal chat front-end: a login screen, a room list and a
message thread, served over an in-memory data service.

Use "parlor [command] --help" for more information about a specific command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
