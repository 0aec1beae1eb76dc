package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/location"
	"github.com/jonathan/match-engine/internal/types"
)

func TestScoreLocation_RemoteJobIsPerfect(t *testing.T) {
	in := alignedInput()
	in.Job.Modality = types.ModalityRemote

	result := ScoreLocation(in)
	require.False(t, result.IsFallback())
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, "remote", result.Details["relation"])
}

func TestScoreLocation_UsesBundleWhenPresent(t *testing.T) {
	in := alignedInput()
	in.Candidate.Location = types.Location{City: "Lyon"}
	in.Job.Location = types.Location{City: "Paris"}
	in.Location = &location.Bundle{
		Modes: []location.ModeAssessment{
			{Mode: location.ModeDriving, Compatibility: 0.55, DurationMinutes: 45},
			{Mode: location.ModeTransit, Compatibility: 0.82, DurationMinutes: 38},
		},
	}

	result := ScoreLocation(in)
	require.False(t, result.IsFallback())
	assert.InDelta(t, 0.82, result.Score, 1e-9)
	assert.Equal(t, "location_intelligence", result.Details["source"])
	assert.Equal(t, "transit", result.Details["best_mode"])
}

func TestScoreLocation_Heuristic(t *testing.T) {
	tests := []struct {
		name      string
		from      types.Location
		to        types.Location
		modality  types.WorkModality
		wantScore float64
		wantRel   string
	}{
		{
			name:      "same city",
			from:      types.Location{City: "Paris"},
			to:        types.Location{City: "paris"},
			wantScore: 1.0,
			wantRel:   "same_city",
		},
		{
			name:      "same region",
			from:      types.Location{City: "Versailles", Region: "Ile-de-France"},
			to:        types.Location{City: "Paris", Region: "Ile-de-France"},
			wantScore: 0.7,
			wantRel:   "same_region",
		},
		{
			name:      "same country",
			from:      types.Location{City: "Lyon", Region: "Rhone", Country: "France"},
			to:        types.Location{City: "Paris", Region: "Ile-de-France", Country: "France"},
			wantScore: 0.4,
			wantRel:   "same_country",
		},
		{
			name:      "distant",
			from:      types.Location{City: "Lyon", Country: "France"},
			to:        types.Location{City: "Berlin", Country: "Germany"},
			wantScore: 0.2,
			wantRel:   "distant",
		},
		{
			name:      "hybrid softens the commute",
			from:      types.Location{City: "Lyon", Country: "France"},
			to:        types.Location{City: "Paris", Country: "France"},
			modality:  types.ModalityHybrid,
			wantScore: 0.5,
			wantRel:   "same_country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := alignedInput()
			in.Candidate.Location = tt.from
			in.Job.Location = tt.to
			in.Job.Modality = tt.modality

			result := ScoreLocation(in)
			require.False(t, result.IsFallback())
			assert.InDelta(t, tt.wantScore, result.Score, 1e-9)
			assert.Equal(t, tt.wantRel, result.Details["relation"])
			assert.Equal(t, "heuristic", result.Details["source"])
		})
	}
}

func TestScoreLocation_MissingAddress_FallsBack(t *testing.T) {
	in := alignedInput()
	in.Job.Location = types.Location{City: "Paris"}

	result := ScoreLocation(in)
	assert.True(t, result.IsFallback())
	assert.Equal(t, NeutralScore(types.ComponentLocation), result.Score)
}
