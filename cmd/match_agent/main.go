// Package main provides the match_agent CLI for the adaptive bidirectional
// matching engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Candidate/job matching engine",
	Long:  "match_agent scores one candidate profile against one job profile through twelve concurrent component scorers with adaptive weighting, and serves the same engine over HTTP.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
