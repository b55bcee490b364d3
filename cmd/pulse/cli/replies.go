package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/dashboard"
)

var repliesCmd = &cobra.Command{
	Use:   "replies <tweet-id-or-url>",
	Short: "Analyze the sentiment of a tweet's replies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tweetID := dashboard.ExtractTweetID(args[0])
		if tweetID == "" {
			return fmt.Errorf("a tweet ID or status URL is required")
		}

		ctx, cancel := commandContext()
		defer cancel()

		resp, err := newClient().TweetReplies(ctx, tweetID)
		if err != nil {
			return err
		}

		if resp.Tweet != nil {
			fmt.Printf("Tweet: %s\n", oneLine(resp.Tweet.Text))
			fmt.Printf("  %s likes · %s retweets · %s replies\n\n",
				dashboard.FormatCount(resp.Tweet.Likes),
				dashboard.FormatCount(resp.Tweet.Retweets),
				dashboard.FormatCount(resp.Tweet.Replies))
		}

		if resp.ReplyAnalysis == nil || resp.ReplyAnalysis.TotalReplies == 0 {
			fmt.Println("No replies found for this tweet")
			return nil
		}

		printStats(resp.ReplyAnalysis.SentimentStats)
		printTweets(resp.ReplyAnalysis.AnalyzedReplies, 5)
		return nil
	},
}
