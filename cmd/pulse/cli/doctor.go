package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity and server component status",
	RunE: func(cmd *cobra.Command, args []string) error {
		server := serverURL()
		fmt.Printf("Server: %s\n", server)

		ctx, cancel := commandContext()
		defer cancel()

		health, err := newClient().Health(ctx)
		if err != nil {
			fmt.Println("  ✗ unreachable")
			return err
		}

		fmt.Printf("  ✓ %s\n", health.Status)
		printComponent("Twitter API", health.TwitterAPI)
		printComponent("Sentiment model", health.SentimentModel)
		return nil
	},
}

func printComponent(name string, ok bool) {
	mark := "✗ unavailable"
	if ok {
		mark = "✓ ok"
	}
	fmt.Printf("  %-16s %s\n", name, mark)
}
