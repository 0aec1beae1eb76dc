package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/engine"
	"github.com/jonathan/match-engine/internal/types"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	return New(cfg, engine.New(engine.Config{}), zap.NewNop())
}

func scoringRequestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	request := types.MatchingRequest{
		Candidate: &types.CandidateProfile{
			ID:                "cand-1",
			Skills:            []string{"accounting", "excel"},
			YearsExperience:   5,
			SalaryExpectation: types.SalaryRange{Min: 40000, Max: 50000},
			Location:          types.Location{City: "Paris"},
			Seniority:         types.SeniorityConfirmed,
			Domain:            types.DomainFinance,
			CompletionRate:    0.8,
		},
		Job: &types.JobProfile{
			ID:                "job-1",
			Title:             "Accountant",
			RequiredSkills:    []string{"accounting"},
			Experience:        types.ExperienceRange{MinYears: 3, MaxYears: 7},
			Salary:            types.SalaryRange{Min: 45000, Max: 52000},
			Location:          types.Location{City: "Paris"},
			RequiredSeniority: types.SeniorityConfirmed,
			RequiredDomain:    types.DomainFinance,
			CompletionRate:    0.8,
		},
		Options: types.MatchOptions{AdaptiveWeighting: true},
	}

	body := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(body).Encode(request))
	return body
}

func TestHandleMatch(t *testing.T) {
	srv := newTestServer(t, Config{Port: 8080})

	req := httptest.NewRequest(http.MethodPost, "/v1/match", scoringRequestBody(t))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response types.MatchingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "cand-1", response.CandidateID)
	assert.Equal(t, "job-1", response.JobID)
	assert.Len(t, response.Components, 12)
	assert.Greater(t, response.OverallScore, 0.0)
}

func TestHandleMatch_InvalidBody(t *testing.T) {
	srv := newTestServer(t, Config{Port: 8080})

	req := httptest.NewRequest(http.MethodPost, "/v1/match", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "configuration_error", response.Kind)
}

func TestHandleMatch_ConfigurationErrorMapsTo400(t *testing.T) {
	srv := newTestServer(t, Config{Port: 8080})

	body := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(body).Encode(types.MatchingRequest{
		Candidate: &types.CandidateProfile{ID: "c", ListeningReason: "bored"},
		Job:       &types.JobProfile{ID: "j", Title: "T"},
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/match", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "configuration_error", response.Kind)
	assert.Equal(t, "candidate.listening_reason", response.Field)
}

func TestHandleMatchBatch(t *testing.T) {
	srv := newTestServer(t, Config{Port: 8080})

	batch := map[string]any{
		"items": []map[string]any{
			{
				"candidate": map[string]any{"id": "c1", "completion_rate": 0.5},
				"job":       map[string]any{"id": "j1", "title": "Generalist"},
			},
			{
				"candidate": map[string]any{"id": "c2", "completion_rate": 0.5},
			},
		},
	}
	body := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(body).Encode(batch))

	req := httptest.NewRequest(http.MethodPost, "/v1/match/batch", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.BatchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.Len(t, result.Results, 2)
	assert.Equal(t, 1, result.Summary.Succeeded)
	assert.Equal(t, 1, result.Summary.Failed)
}

func TestHandleWeights(t *testing.T) {
	srv := newTestServer(t, Config{Port: 8080})

	req := httptest.NewRequest(http.MethodGet, "/v1/weights?reason=salary_below_market&urgency=normal", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resolved types.ComponentWeights
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resolved))
	assert.InDelta(t, 1.0, resolved.Sum(), types.WeightSumTolerance)
	assert.Greater(t, resolved.Salary, 0.15)
}

func TestHandleWeights_UnknownReason(t *testing.T) {
	srv := newTestServer(t, Config{Port: 8080})

	req := httptest.NewRequest(http.MethodGet, "/v1/weights?reason=bored", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, Config{Port: 8080})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestAuth_ProtectedEndpointsRequireToken(t *testing.T) {
	srv := newTestServer(t, Config{Port: 8080, AuthSecret: "test-secret"})

	// No token.
	req := httptest.NewRequest(http.MethodPost, "/v1/match", scoringRequestBody(t))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	req = httptest.NewRequest(http.MethodPost, "/v1/match", scoringRequestBody(t))
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token.
	token, err := srv.tokens.GenerateToken("tester")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/v1/match", scoringRequestBody(t))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays open.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplyDefaultOptions(t *testing.T) {
	defaults := types.MatchOptions{
		AdaptiveWeighting:     true,
		PerComponentTimeoutMS: 500,
		GlobalTimeoutMS:       2000,
	}

	opts := types.MatchOptions{}
	applyDefaultOptions(&opts, defaults)
	assert.True(t, opts.AdaptiveWeighting)
	assert.Equal(t, 500, opts.PerComponentTimeoutMS)
	assert.Equal(t, 2000, opts.GlobalTimeoutMS)

	// Explicit request values win.
	opts = types.MatchOptions{PerComponentTimeoutMS: 100, GlobalTimeoutMS: 900}
	applyDefaultOptions(&opts, defaults)
	assert.Equal(t, 100, opts.PerComponentTimeoutMS)
	assert.Equal(t, 900, opts.GlobalTimeoutMS)
}
