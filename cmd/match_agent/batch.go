package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/engine"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a batch of candidate/job pairs",
	Long:  "Scores an ordered list of candidate/job pairs with shared options. Malformed pairs produce per-item errors without aborting the rest of the batch.",
	RunE:  runBatch,
}

var (
	batchInput    string
	batchOutput   string
	batchConfig   string
	batchParallel bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Path to input BatchRequest JSON file (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output BatchResult JSON file (required)")
	batchCmd.Flags().StringVar(&batchConfig, "config", "", "Path to engine config JSON file")
	batchCmd.Flags().BoolVar(&batchParallel, "parallel", false, "Score pairs concurrently instead of sequentially")

	if err := batchCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(batchConfig)
	if err != nil {
		return err
	}

	// 1. Load BatchRequest
	inputContent, err := os.ReadFile(batchInput)
	if err != nil {
		return fmt.Errorf("failed to read batch input file %s: %w", batchInput, err)
	}

	var request engine.BatchRequest
	if err := json.Unmarshal(inputContent, &request); err != nil {
		return fmt.Errorf("failed to unmarshal batch request JSON: %w", err)
	}
	if cmd.Flags().Changed("parallel") {
		request.AllowParallel = batchParallel
	}

	// 2. Build the engine and score
	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	result, err := eng.MatchBatch(context.Background(), &request)
	if err != nil {
		return fmt.Errorf("failed to score batch: %w", err)
	}

	// 3. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch result to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(batchOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	// 4. Write to output file
	if err := os.WriteFile(batchOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write batch result to output file %s: %w", batchOutput, err)
	}

	fmt.Printf("Batch scored: %d/%d succeeded, written to %s\n",
		result.Summary.Succeeded, result.Summary.Total, batchOutput)
	return nil
}
