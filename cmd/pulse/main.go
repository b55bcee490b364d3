// Pulse CLI — Twitter sentiment analytics from the command line
//
// Usage:
//
//	pulse configure --server http://localhost:8090
//	pulse user info nasa
//	pulse user tweets nasa --max 50
//	pulse replies https://twitter.com/nasa/status/1790000000000000000
//	pulse compare users nasa spacex
//	pulse search "solar eclipse" --max 100
//	pulse test "this launch was incredible"
package main

import (
	"fmt"
	"os"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/cmd/pulse/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
