// Package main implements the pulse CLI for running job-posting
// analytics over a record snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Job-posting analytics for international-organization employers",
	Long:  "Pulse computes period-aware hiring metrics, detects statistical anomalies, and renders narrative summaries from a snapshot of job-posting records.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
