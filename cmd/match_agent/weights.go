package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/types"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print the resolved component weight vector",
	Long:  "Resolves and prints the component weight vector for a given listening reason and job urgency, after adaptive deltas and normalization.",
	RunE:  runWeights,
}

var (
	weightsReason   string
	weightsUrgency  string
	weightsConfig   string
	weightsAdaptive bool
)

func init() {
	weightsCmd.Flags().StringVarP(&weightsReason, "reason", "r", "", "Candidate listening reason (e.g. salary_below_market)")
	weightsCmd.Flags().StringVarP(&weightsUrgency, "urgency", "u", "", "Job urgency (immediate, high, normal, low)")
	weightsCmd.Flags().StringVar(&weightsConfig, "config", "", "Path to engine config JSON file")
	weightsCmd.Flags().BoolVar(&weightsAdaptive, "adaptive", true, "Apply reason/urgency deltas on top of the defaults")

	rootCmd.AddCommand(weightsCmd)
}

func runWeights(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(weightsConfig)
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	resolved, err := eng.Weights(
		types.ListeningReason(weightsReason),
		types.Urgency(weightsUrgency),
		weightsAdaptive,
	)
	if err != nil {
		return fmt.Errorf("failed to resolve weights: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(resolved); err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}
	return nil
}
