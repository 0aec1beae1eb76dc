package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate against one job",
	Long:  "Scores a candidate profile against a job profile through all twelve component scorers and writes the full compatibility report as JSON.",
	RunE:  runMatch,
}

var (
	matchCandidate string
	matchJob       string
	matchOutput    string
	matchConfig    string
	matchAdaptive  bool
	matchLocation  bool
	matchStrict    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to input JobProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchingResponse JSON file (required)")
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to engine config JSON file")
	matchCmd.Flags().BoolVar(&matchAdaptive, "adaptive", true, "Adapt component weights to the candidate's listening reason and the job's urgency")
	matchCmd.Flags().BoolVar(&matchLocation, "location-intelligence", false, "Query the commute evaluation service for the location score")
	matchCmd.Flags().BoolVar(&matchStrict, "strict", false, "Reject profiles with missing critical fields instead of scoring with fallbacks")

	if err := matchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(matchConfig)
	if err != nil {
		return err
	}

	// 1. Load CandidateProfile
	candidateContent, err := os.ReadFile(matchCandidate)
	if err != nil {
		return fmt.Errorf("failed to read candidate file %s: %w", matchCandidate, err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(candidateContent, &candidate); err != nil {
		return fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}

	// 2. Load JobProfile
	jobContent, err := os.ReadFile(matchJob)
	if err != nil {
		return fmt.Errorf("failed to read job file %s: %w", matchJob, err)
	}

	var job types.JobProfile
	if err := json.Unmarshal(jobContent, &job); err != nil {
		return fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}

	// 3. Build the engine and score
	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	opts := cfg.MatchOptions()
	if cmd.Flags().Changed("adaptive") {
		opts.AdaptiveWeighting = matchAdaptive
	}
	if cmd.Flags().Changed("location-intelligence") {
		opts.LocationIntelligence = matchLocation
	}
	if cmd.Flags().Changed("strict") {
		opts.StrictMode = matchStrict
	}

	response, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: &candidate,
		Job:       &job,
		Options:   opts,
	})
	if err != nil {
		return fmt.Errorf("failed to score match: %w", err)
	}

	// 4. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matching response to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(matchOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	// 5. Write to output file
	if err := os.WriteFile(matchOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write matching response to output file %s: %w", matchOutput, err)
	}

	fmt.Printf("Match scored: overall %.3f (%s), written to %s\n",
		response.OverallScore, response.Tier, matchOutput)
	return nil
}
