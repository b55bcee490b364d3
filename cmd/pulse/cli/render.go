package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/dashboard"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

// terminalWidth returns the usable column count, falling back to 80 when
// stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// printStats renders a sentiment summary as horizontal bars scaled to the
// terminal width.
func printStats(stats *sentiment.Stats) {
	if stats == nil {
		fmt.Println("No tweets to summarize")
		return
	}

	barWidth := terminalWidth() - 30
	if barWidth > 60 {
		barWidth = 60
	}

	fmt.Printf("Analyzed %d tweets (avg confidence %s)\n\n",
		stats.Total, dashboard.FormatPercent(stats.AvgConfidence))
	printBar("Positive", stats.PositivePct, barWidth)
	printBar("Neutral", stats.NeutralPct, barWidth)
	printBar("Negative", stats.NegativePct, barWidth)
	fmt.Println()
}

func printBar(label string, pct float64, width int) {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Printf("  %-8s %s %6s\n", label, bar, dashboard.FormatShare(pct))
}

func printUser(u *twitter.User) {
	if u == nil {
		return
	}
	verified := ""
	if u.Verified {
		verified = " ✓"
	}
	fmt.Printf("%s (@%s)%s\n", u.Name, u.Username, verified)
	if u.Description != "" {
		fmt.Printf("  %s\n", u.Description)
	}
	fmt.Printf("  %s followers · %s following · %s tweets · %s listed\n",
		dashboard.FormatCount(u.Followers),
		dashboard.FormatCount(u.Following),
		dashboard.FormatCount(u.TweetCount),
		dashboard.FormatCount(u.ListedCount))
	if !u.CreatedAt.IsZero() {
		fmt.Printf("  Joined %s\n", dashboard.FormatDate(u.CreatedAt))
	}
}

// printTweets shows up to limit analyzed tweets, one block each.
func printTweets(tweets []sentiment.AnalyzedTweet, limit int) {
	if limit > 0 && len(tweets) > limit {
		tweets = tweets[:limit]
	}
	for _, t := range tweets {
		fmt.Printf("[%s %s] %s\n", t.Sentiment, dashboard.FormatPercent(t.Confidence), oneLine(t.Text))
		fmt.Printf("    %s likes · %s retweets\n",
			dashboard.FormatCount(t.Likes), dashboard.FormatCount(t.Retweets))
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
