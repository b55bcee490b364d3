package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Pulse — Twitter sentiment analytics",
	Long: `Pulse analyzes the sentiment of tweets: a user's timeline, the
replies under a tweet, search results, or two accounts side by side.
It talks to a running pulse server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var flagServer string

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Server URL (overrides config)")

	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(repliesCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// commandContext bounds every API call made from the CLI.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}
