package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchMax int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recent tweets and analyze their sentiment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		ctx, cancel := commandContext()
		defer cancel()

		resp, err := newClient().SearchAnalyze(ctx, query, searchMax)
		if err != nil {
			return err
		}

		fmt.Printf("Results for %q\n\n", resp.Query)
		printStats(resp.Stats)
		printTweets(resp.Tweets, 10)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchMax, "max", 0, "Max tweets to fetch (server default when 0)")
}
