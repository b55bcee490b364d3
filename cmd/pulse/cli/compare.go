package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/dashboard"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two users or two tweets",
}

var compareUsersMax int

var compareUsersCmd = &cobra.Command{
	Use:   "users <username1> <username2>",
	Short: "Compare the sentiment of two users' recent tweets",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		resp, err := newClient().CompareUsers(ctx, args[0], args[1], compareUsersMax)
		if err != nil {
			return err
		}

		if resp.User1 != nil {
			printUser(resp.User1.Info)
			printStats(resp.User1.Stats)
		}
		if resp.User2 != nil {
			printUser(resp.User2.Info)
			printStats(resp.User2.Stats)
		}
		printDifferences(resp.Comparison)
		return nil
	},
}

var compareTweetsCmd = &cobra.Command{
	Use:   "tweets <id-or-url-1> <id-or-url-2>",
	Short: "Compare reply sentiment between two tweets",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id1 := dashboard.ExtractTweetID(args[0])
		id2 := dashboard.ExtractTweetID(args[1])
		if id1 == "" || id2 == "" {
			return fmt.Errorf("two tweet IDs or status URLs are required")
		}

		ctx, cancel := commandContext()
		defer cancel()

		resp, err := newClient().CompareTweets(ctx, id1, id2)
		if err != nil {
			return err
		}

		if resp.Tweet1 != nil && resp.Tweet1.Details != nil {
			fmt.Printf("Tweet 1: %s\n", oneLine(resp.Tweet1.Details.Text))
			printStats(resp.Tweet1.Stats)
		}
		if resp.Tweet2 != nil && resp.Tweet2.Details != nil {
			fmt.Printf("Tweet 2: %s\n", oneLine(resp.Tweet2.Details.Text))
			printStats(resp.Tweet2.Stats)
		}
		printDifferences(resp.Comparison)
		return nil
	},
}

func printDifferences(cmp *sentiment.ComparisonResult) {
	if cmp == nil {
		fmt.Println("Not enough data to compare")
		return
	}
	fmt.Println("Differences (first minus second):")
	fmt.Printf("  positive %+.2f%%  neutral %+.2f%%  negative %+.2f%%  confidence %+.4f\n",
		cmp.Differences.PositiveDiff,
		cmp.Differences.NeutralDiff,
		cmp.Differences.NegativeDiff,
		cmp.Differences.ConfidenceDiff)
}

func init() {
	compareUsersCmd.Flags().IntVar(&compareUsersMax, "max", 0, "Max tweets per user (server default when 0)")
	compareCmd.AddCommand(compareUsersCmd)
	compareCmd.AddCommand(compareTweetsCmd)
}
