package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test <text>",
	Short: "Classify a piece of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		ctx, cancel := commandContext()
		defer cancel()

		resp, err := newClient().TestSentiment(ctx, text)
		if err != nil {
			return err
		}

		fmt.Printf("Sentiment:  %s (%.2f%% confidence)\n", resp.Sentiment, resp.Confidence)
		fmt.Printf("Cleaned:    %s\n", resp.CleanedText)
		return nil
	},
}
