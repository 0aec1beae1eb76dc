package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/location"
	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/types"
)

func newTestEngine() *Engine {
	return New(Config{})
}

// strongCandidate and strongJob form a confirmed finance pair aligned on every
// dimension.
func strongCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:                "cand-1",
		FullName:          "Test Candidate",
		CurrentTitle:      "Accountant",
		Skills:            []string{"accounting", "excel", "sap"},
		YearsExperience:   5,
		SalaryExpectation: types.SalaryRange{Min: 40000, Max: 50000},
		CurrentSalary:     42000,
		SalaryHistory:     []float64{38000, 40000, 42000},
		Location:          types.Location{City: "Paris", Country: "France"},
		AcceptedContracts: []types.ContractType{types.ContractPermanent},
		Modalities:        []types.WorkModality{types.ModalityHybrid},
		Motivations:       []string{"growth", "impact"},
		ListeningReason:   types.ReasonLackOfGrowth,
		AvailabilityWeeks: 2,
		Status:            types.StatusActive,
		Seniority:         types.SeniorityConfirmed,
		Domain:            types.DomainFinance,
		CompletionRate:    0.9,
	}
}

func strongJob() *types.JobProfile {
	return &types.JobProfile{
		ID:                  "job-1",
		Title:               "Accountant",
		Company:             "Acme",
		RequiredSkills:      []string{"accounting", "excel"},
		PreferredSkills:     []string{"sap"},
		Experience:          types.ExperienceRange{MinYears: 3, MaxYears: 7},
		Salary:              types.SalaryRange{Min: 45000, Max: 52000},
		Location:            types.Location{City: "Paris", Country: "France"},
		Contract:            types.ContractPermanent,
		Modality:            types.ModalityHybrid,
		Urgency:             types.UrgencyNormal,
		HiringTimelineWeeks: 4,
		Sector:              types.DomainFinance,
		Motivators:          []string{"growth"},
		RequiredSeniority:   types.SeniorityConfirmed,
		RequiredDomain:      types.DomainFinance,
		CompletionRate:      0.9,
	}
}

func TestMatch_StrongPairScoresExcellent(t *testing.T) {
	eng := newTestEngine()

	response, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: strongCandidate(),
		Job:       strongJob(),
		Options:   types.MatchOptions{AdaptiveWeighting: true},
	})
	require.NoError(t, err)

	assert.Greater(t, response.OverallScore, 0.8)
	assert.Equal(t, types.TierExcellent, response.Tier)
	assert.Empty(t, response.Alerts)
	assert.Greater(t, response.Confidence, 0.9)
	assert.NotEmpty(t, response.RequestID)
	assert.Equal(t, "cand-1", response.CandidateID)
	assert.Equal(t, "job-1", response.JobID)

	require.Len(t, response.Components, 12)
	for _, c := range response.Components {
		assert.False(t, c.Fallback, "component %s should not be a fallback", c.Name)
	}
	assert.Empty(t, response.Performance.DegradedComponents)
	assert.InDelta(t, 1.0, response.AppliedWeights.Sum(), types.WeightSumTolerance)
}

func TestMatch_CriticalSeniorityGapCapsOverall(t *testing.T) {
	eng := newTestEngine()

	// Entry-level candidate with perfect keyword overlap against a direction
	// role: the overall score must stay below the average tier regardless.
	candidate := strongCandidate()
	candidate.Seniority = types.SeniorityEntry
	job := strongJob()
	job.Title = "Finance Director"
	job.RequiredSeniority = types.SeniorityDirection

	response, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: candidate,
		Job:       job,
		Options:   types.MatchOptions{AdaptiveWeighting: true},
	})
	require.NoError(t, err)

	assert.Less(t, response.OverallScore, 0.4)
	assert.True(t, response.HasAlert(types.AlertCriticalMismatch))

	// Uncapped components still score high, which the contradiction alert
	// surfaces alongside the capped overall.
	assert.True(t, response.HasAlert(types.AlertScoreContradiction))

	semantic := response.Component(types.ComponentSemantic)
	require.NotNil(t, semantic)
	assert.LessOrEqual(t, semantic.Score, 0.3)
	assert.NotEmpty(t, response.Recommendations)
}

func TestMatch_IsDeterministicAcrossRuns(t *testing.T) {
	eng := newTestEngine()
	request := &types.MatchingRequest{
		Candidate: strongCandidate(),
		Job:       strongJob(),
		Options:   types.MatchOptions{AdaptiveWeighting: true},
	}

	first, err := eng.Match(context.Background(), request)
	require.NoError(t, err)
	second, err := eng.Match(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.Tier, second.Tier)
	assert.NotEqual(t, first.RequestID, second.RequestID)
	for i := range first.Components {
		assert.Equal(t, first.Components[i].Score, second.Components[i].Score,
			"component %s", first.Components[i].Name)
	}
}

func TestMatch_SlowComponentDegradesToFallback(t *testing.T) {
	eng := newTestEngine()
	eng.overrides = map[string]scoring.Func{
		types.ComponentSemantic: func(scoring.Input) scoring.Result {
			time.Sleep(500 * time.Millisecond)
			return scoring.Result{Name: types.ComponentSemantic, Kind: scoring.KindScored, Score: 1.0}
		},
	}

	response, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: strongCandidate(),
		Job:       strongJob(),
		Options: types.MatchOptions{
			AdaptiveWeighting:     true,
			PerComponentTimeoutMS: 30,
			GlobalTimeoutMS:       2000,
		},
	})
	require.NoError(t, err)

	require.Len(t, response.Components, 12)
	semantic := response.Component(types.ComponentSemantic)
	require.NotNil(t, semantic)
	assert.True(t, semantic.Fallback)
	assert.Equal(t, "timed out", semantic.FallbackReason)
	assert.Equal(t, scoring.NeutralScore(types.ComponentSemantic), semantic.Score)

	assert.Contains(t, response.Performance.DegradedComponents, types.ComponentSemantic)
	assert.False(t, response.Performance.TargetAchieved)
}

func TestMatch_PanickingComponentDegradesToFallback(t *testing.T) {
	eng := newTestEngine()
	eng.overrides = map[string]scoring.Func{
		types.ComponentSalary: func(scoring.Input) scoring.Result {
			panic("scorer bug")
		},
	}

	response, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: strongCandidate(),
		Job:       strongJob(),
	})
	require.NoError(t, err)

	salary := response.Component(types.ComponentSalary)
	require.NotNil(t, salary)
	assert.True(t, salary.Fallback)
	assert.Contains(t, salary.FallbackReason, "panicked")
	assert.Contains(t, response.Performance.DegradedComponents, types.ComponentSalary)
}

func TestMatch_LocationIntelligenceBundleFlowsToScorer(t *testing.T) {
	provider := location.NewStaticProvider()
	provider.Set("Lyon", "Paris", &location.Bundle{Modes: []location.ModeAssessment{
		{Mode: location.ModeTransit, Compatibility: 0.9, DurationMinutes: 35},
	}})
	eng := New(Config{Location: provider})

	candidate := strongCandidate()
	candidate.Location = types.Location{City: "Lyon", Country: "France"}
	job := strongJob()
	job.Modality = types.ModalityOnSite
	candidate.Modalities = []types.WorkModality{types.ModalityOnSite}

	response, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: candidate,
		Job:       job,
		Options:   types.MatchOptions{LocationIntelligence: true},
	})
	require.NoError(t, err)

	loc := response.Component(types.ComponentLocation)
	require.NotNil(t, loc)
	require.False(t, loc.Fallback)
	assert.InDelta(t, 0.9, loc.Score, 1e-9)
	assert.Equal(t, "location_intelligence", loc.Details["source"])
}

func TestMatch_SparseProfilesDegradeConfidence(t *testing.T) {
	eng := newTestEngine()

	response, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: &types.CandidateProfile{ID: "cand-sparse", CompletionRate: 0.2},
		Job:       &types.JobProfile{ID: "job-sparse", Title: "Generalist"},
	})
	require.NoError(t, err)

	fallbacks := 0
	for _, c := range response.Components {
		if c.Fallback {
			fallbacks++
		}
	}
	assert.GreaterOrEqual(t, fallbacks, 6)
	assert.Less(t, response.Confidence, 0.4)
	// Data-missing fallbacks are not degradation.
	assert.Empty(t, response.Performance.DegradedComponents)
}

func TestMatch_RequestValidation(t *testing.T) {
	eng := newTestEngine()

	tests := []struct {
		name    string
		request *types.MatchingRequest
		field   string
	}{
		{
			name:    "nil request",
			request: nil,
			field:   "request",
		},
		{
			name:    "missing job",
			request: &types.MatchingRequest{Candidate: strongCandidate()},
			field:   "request",
		},
		{
			name: "missing candidate id",
			request: &types.MatchingRequest{
				Candidate: &types.CandidateProfile{},
				Job:       strongJob(),
			},
		},
		{
			name: "unknown listening reason",
			request: func() *types.MatchingRequest {
				c := strongCandidate()
				c.ListeningReason = "bored"
				return &types.MatchingRequest{Candidate: c, Job: strongJob()}
			}(),
			field: "candidate.listening_reason",
		},
		{
			name: "unknown urgency",
			request: func() *types.MatchingRequest {
				j := strongJob()
				j.Urgency = "yesterday"
				return &types.MatchingRequest{Candidate: strongCandidate(), Job: j}
			}(),
			field: "job.urgency",
		},
		{
			name: "inverted salary expectation",
			request: func() *types.MatchingRequest {
				c := strongCandidate()
				c.SalaryExpectation = types.SalaryRange{Min: 50000, Max: 40000}
				return &types.MatchingRequest{Candidate: c, Job: strongJob()}
			}(),
			field: "candidate.salary_expectation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Match(context.Background(), tt.request)
			var cfgErr *types.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			if tt.field != "" {
				assert.Equal(t, tt.field, cfgErr.Field)
			}
		})
	}
}

func TestMatch_StrictModeRejectsMissingFields(t *testing.T) {
	eng := newTestEngine()

	candidate := strongCandidate()
	candidate.Skills = nil

	_, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: candidate,
		Job:       strongJob(),
		Options:   types.MatchOptions{StrictMode: true},
	})
	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "candidate.skills", cfgErr.Field)

	// The same profile scores with fallbacks outside strict mode.
	response, err := eng.Match(context.Background(), &types.MatchingRequest{
		Candidate: candidate,
		Job:       strongJob(),
	})
	require.NoError(t, err)
	assert.True(t, response.Component(types.ComponentSemantic).Fallback)
}

func TestWeights_ExposesResolvedVector(t *testing.T) {
	eng := newTestEngine()

	adapted, err := eng.Weights(types.ReasonSalaryBelowMarket, types.UrgencyNormal, true)
	require.NoError(t, err)
	plain, err := eng.Weights(types.ReasonSalaryBelowMarket, types.UrgencyNormal, false)
	require.NoError(t, err)

	assert.Greater(t, adapted.Salary, plain.Salary)
}
