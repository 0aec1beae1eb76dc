package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the match_agent version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("match_agent %s\n", server.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
