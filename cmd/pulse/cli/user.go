package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Look up a profile or analyze a user's tweets",
}

var userInfoCmd = &cobra.Command{
	Use:   "info <username>",
	Short: "Show a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		resp, err := newClient().UserInfo(ctx, args[0])
		if err != nil {
			return err
		}
		printUser(resp.UserInfo)
		return nil
	},
}

var userTweetsMax int

var userTweetsCmd = &cobra.Command{
	Use:   "tweets <username>",
	Short: "Analyze the sentiment of a user's recent tweets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		resp, err := newClient().UserTweets(ctx, args[0], userTweetsMax)
		if err != nil {
			return err
		}

		printStats(resp.Stats)
		if resp.Categorized != nil {
			fmt.Printf("Top positive:\n")
			printTweets(resp.Categorized.Positive, 3)
			fmt.Printf("\nTop negative:\n")
			printTweets(resp.Categorized.Negative, 3)
		}
		return nil
	},
}

func init() {
	userTweetsCmd.Flags().IntVar(&userTweetsMax, "max", 0, "Max tweets to fetch (server default when 0)")
	userCmd.AddCommand(userInfoCmd)
	userCmd.AddCommand(userTweetsCmd)
}
