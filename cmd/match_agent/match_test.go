package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func writeJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func testCandidate() types.CandidateProfile {
	return types.CandidateProfile{
		ID:                "cand-cli",
		Skills:            []string{"accounting", "excel"},
		YearsExperience:   5,
		SalaryExpectation: types.SalaryRange{Min: 40000, Max: 50000},
		Location:          types.Location{City: "Paris"},
		Seniority:         types.SeniorityConfirmed,
		Domain:            types.DomainFinance,
		CompletionRate:    0.8,
	}
}

func testJob() types.JobProfile {
	return types.JobProfile{
		ID:                "job-cli",
		Title:             "Accountant",
		RequiredSkills:    []string{"accounting"},
		Experience:        types.ExperienceRange{MinYears: 3, MaxYears: 7},
		Salary:            types.SalaryRange{Min: 45000, Max: 52000},
		Location:          types.Location{City: "Paris"},
		RequiredSeniority: types.SeniorityConfirmed,
		RequiredDomain:    types.DomainFinance,
		CompletionRate:    0.8,
	}
}

func TestRunMatch(t *testing.T) {
	dir := t.TempDir()
	matchCandidate = writeJSON(t, dir, "candidate.json", testCandidate())
	matchJob = writeJSON(t, dir, "job.json", testJob())
	matchOutput = filepath.Join(dir, "out", "response.json")
	matchConfig = ""

	require.NoError(t, runMatch(matchCmd, nil))

	data, err := os.ReadFile(matchOutput)
	require.NoError(t, err)

	var response types.MatchingResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, "cand-cli", response.CandidateID)
	assert.Equal(t, "job-cli", response.JobID)
	assert.Len(t, response.Components, 12)
}

func TestRunMatch_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	matchCandidate = filepath.Join(dir, "missing.json")
	matchJob = writeJSON(t, dir, "job.json", testJob())
	matchOutput = filepath.Join(dir, "response.json")
	matchConfig = ""

	err := runMatch(matchCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read candidate file")
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()

	candidate := testCandidate()
	job := testJob()
	batchInput = writeJSON(t, dir, "batch.json", map[string]any{
		"items": []map[string]any{
			{"candidate": candidate, "job": job},
			{"candidate": candidate}, // malformed: no job
		},
	})
	batchOutput = filepath.Join(dir, "result.json")
	batchConfig = ""

	require.NoError(t, runBatch(batchCmd, nil))

	data, err := os.ReadFile(batchOutput)
	require.NoError(t, err)

	var result struct {
		Summary struct {
			Total     int `json:"total"`
			Succeeded int `json:"succeeded"`
			Failed    int `json:"failed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 2, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Succeeded)
	assert.Equal(t, 1, result.Summary.Failed)
}

func TestRunWeights(t *testing.T) {
	weightsReason = "salary_below_market"
	weightsUrgency = "normal"
	weightsConfig = ""
	weightsAdaptive = true

	assert.NoError(t, runWeights(weightsCmd, nil))
}

func TestRunWeights_UnknownReason(t *testing.T) {
	weightsReason = "bored"
	weightsUrgency = ""
	weightsConfig = ""

	err := runWeights(weightsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening reason")
}
