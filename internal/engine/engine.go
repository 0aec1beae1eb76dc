// Package engine provides the aggregator that fans the twelve component
// scorers out concurrently under a latency budget and combines them into one
// matching response.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/match-engine/internal/hierarchy"
	"github.com/jonathan/match-engine/internal/location"
	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/types"
	"github.com/jonathan/match-engine/internal/weights"
)

// criticalOverallCap bounds the overall score when the hierarchical mismatch
// is critical, so keyword overlap on the remaining components can never lift
// an incompatible pair above the poor tier.
const criticalOverallCap = 0.35

// Confidence blends how many components actually computed with how complete
// both intake questionnaires were.
const (
	confidenceComputedWeight   = 0.6
	confidenceCompletionWeight = 0.4
)

// Config wires the engine's collaborators. Selector and Classifier hold the
// only process-wide state, both read-only after startup.
type Config struct {
	Selector   *weights.Selector
	Classifier *hierarchy.Classifier
	Location   location.Provider
	Logger     *zap.Logger
}

// Engine scores one candidate against one job per call. It is stateless
// across requests and safe for concurrent use.
type Engine struct {
	selector   *weights.Selector
	classifier *hierarchy.Classifier
	location   location.Provider
	logger     *zap.Logger
	validate   *validator.Validate

	// overrides substitutes individual scorers in tests
	overrides map[string]scoring.Func
}

// New creates an engine. Missing collaborators get defaults; a nil Location
// provider disables location intelligence regardless of request flags.
func New(cfg Config) *Engine {
	if cfg.Selector == nil {
		cfg.Selector = weights.NewSelector(weights.DefaultTable())
	}
	if cfg.Classifier == nil {
		cfg.Classifier = hierarchy.NewClassifier(hierarchy.DefaultTables())
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{
		selector:   cfg.Selector,
		classifier: cfg.Classifier,
		location:   cfg.Location,
		logger:     cfg.Logger,
		validate:   validator.New(),
	}
}

// Weights exposes the resolved weight vector for a reason/urgency context
// without scoring anything.
func (e *Engine) Weights(reason types.ListeningReason, urgency types.Urgency, adaptive bool) (types.ComponentWeights, error) {
	return e.selector.Select(reason, urgency, adaptive)
}

// Match scores the request. Only structural/configuration problems surface as
// errors; every computational degradation is absorbed into the response.
func (e *Engine) Match(ctx context.Context, req *types.MatchingRequest) (*types.MatchingResponse, error) {
	start := time.Now()

	if err := e.validateRequest(req); err != nil {
		return nil, err
	}

	applied, err := e.selector.Select(req.Candidate.ListeningReason, req.Job.Urgency, req.Options.AdaptiveWeighting)
	if err != nil {
		return nil, err
	}

	assessment := e.classifier.Assess(req.Candidate, req.Job)

	globalBudget := req.Options.GlobalTimeout()
	ctx, cancel := context.WithTimeout(ctx, globalBudget)
	defer cancel()

	// Immutable snapshot shared by all scorer tasks.
	in := scoring.Input{
		Candidate: req.Candidate,
		Job:       req.Job,
		Hierarchy: assessment,
	}

	names := types.ComponentNames()
	registry := scoring.Registry()
	results := make([]scoring.Result, len(names))
	latencies := make([]time.Duration, len(names))
	degraded := make([]bool, len(names))

	group := new(errgroup.Group)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			taskStart := time.Now()
			results[i], degraded[i] = e.runComponent(ctx, name, registry[name], in, req.Options)
			latencies[i] = time.Since(taskStart)
			return nil
		})
	}
	// Tasks never return errors; the group is a barrier.
	_ = group.Wait()

	response := e.assemble(req, applied, assessment, names, results, latencies, degraded)
	response.Performance.TotalLatencyMS = float64(time.Since(start).Microseconds()) / 1000
	response.Performance.TargetAchieved = time.Since(start) <= globalBudget &&
		len(response.Performance.DegradedComponents) == 0

	e.logger.Debug("match completed",
		zap.String("request_id", response.RequestID),
		zap.String("candidate_id", response.CandidateID),
		zap.String("job_id", response.JobID),
		zap.Float64("overall_score", response.OverallScore),
		zap.String("tier", string(response.Tier)),
		zap.Int("degraded", len(response.Performance.DegradedComponents)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return response, nil
}

// runComponent executes one scorer with a per-task timeout and panic
// recovery. The second return value marks a degraded (timed out or panicked)
// component, as opposed to a scorer's own data-missing fallback.
func (e *Engine) runComponent(ctx context.Context, name string, fn scoring.Func, in scoring.Input, opts types.MatchOptions) (scoring.Result, bool) {
	if override, ok := e.overrides[name]; ok {
		fn = override
	}

	taskCtx, cancel := context.WithTimeout(ctx, opts.PerComponentTimeout())
	defer cancel()

	type outcome struct {
		result   scoring.Result
		degraded bool
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Warn("component scorer panicked",
					zap.String("component", name),
					zap.Any("panic", r),
				)
				done <- outcome{
					result:   scoring.Fallback(name, fmt.Sprintf("scorer panicked: %v", r)),
					degraded: true,
				}
			}
		}()

		// The location task awaits the external collaborator before scoring;
		// the scorer itself only consumes the precomputed bundle.
		if name == types.ComponentLocation && opts.LocationIntelligence && e.location != nil {
			bundle, err := e.location.Evaluate(taskCtx, in.Candidate.Location, in.Job.Location)
			if err != nil {
				e.logger.Warn("location intelligence unavailable",
					zap.String("component", name),
					zap.Error(err),
				)
			} else {
				in.Location = bundle
			}
		}

		done <- outcome{result: fn(in)}
	}()

	select {
	case out := <-done:
		return out.result, out.degraded
	case <-taskCtx.Done():
		// Best-effort cancel: the goroutine finishes into the buffered
		// channel and is discarded.
		return scoring.Fallback(name, "timed out"), true
	}
}

// validateRequest checks request shape, enum values, and — in strict mode —
// the presence of required scoring fields.
func (e *Engine) validateRequest(req *types.MatchingRequest) error {
	if req == nil || req.Candidate == nil || req.Job == nil {
		return &types.ConfigurationError{
			Field:   "request",
			Message: "candidate and job are required",
		}
	}

	if err := e.validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			return &types.ConfigurationError{
				Field:   invalid[0].Namespace(),
				Message: fmt.Sprintf("failed %q validation", invalid[0].Tag()),
				Cause:   err,
			}
		}
		return &types.ConfigurationError{Field: "request", Message: "invalid shape", Cause: err}
	}

	if err := validateEnums(req); err != nil {
		return err
	}

	if !req.Candidate.SalaryExpectation.IsValid() {
		return &types.ConfigurationError{Field: "candidate.salary_expectation", Message: "min exceeds max"}
	}
	if !req.Job.Salary.IsValid() {
		return &types.ConfigurationError{Field: "job.salary", Message: "min exceeds max"}
	}

	if req.Options.StrictMode {
		return validateStrict(req)
	}
	return nil
}

func validateEnums(req *types.MatchingRequest) error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"candidate.listening_reason", req.Candidate.ListeningReason.Valid()},
		{"candidate.status", req.Candidate.Status.Valid()},
		{"candidate.seniority", req.Candidate.Seniority.Valid()},
		{"candidate.domain", req.Candidate.Domain.Valid()},
		{"job.urgency", req.Job.Urgency.Valid()},
		{"job.contract", req.Job.Contract.Valid()},
		{"job.modality", req.Job.Modality.Valid()},
		{"job.sector", req.Job.Sector.Valid()},
		{"job.required_seniority", req.Job.RequiredSeniority.Valid()},
		{"job.required_domain", req.Job.RequiredDomain.Valid()},
	}
	for _, check := range checks {
		if !check.ok {
			return &types.ConfigurationError{Field: check.field, Message: "unknown enum value"}
		}
	}
	for _, c := range req.Candidate.AcceptedContracts {
		if !c.Valid() {
			return &types.ConfigurationError{Field: "candidate.accepted_contracts", Message: "unknown enum value"}
		}
	}
	for _, m := range req.Candidate.Modalities {
		if !m.Valid() {
			return &types.ConfigurationError{Field: "candidate.modalities", Message: "unknown enum value"}
		}
	}
	return nil
}

// validateStrict promotes missing required scoring fields to configuration
// errors instead of letting scorers degrade to fallbacks.
func validateStrict(req *types.MatchingRequest) error {
	switch {
	case len(req.Candidate.Skills) == 0:
		return &types.ConfigurationError{Field: "candidate.skills", Message: "required in strict mode"}
	case req.Candidate.SalaryExpectation.IsZero():
		return &types.ConfigurationError{Field: "candidate.salary_expectation", Message: "required in strict mode"}
	case req.Candidate.Location.IsZero():
		return &types.ConfigurationError{Field: "candidate.location", Message: "required in strict mode"}
	case len(req.Job.RequiredSkills) == 0:
		return &types.ConfigurationError{Field: "job.required_skills", Message: "required in strict mode"}
	case req.Job.Salary.IsZero():
		return &types.ConfigurationError{Field: "job.salary", Message: "required in strict mode"}
	case req.Job.Location.IsZero():
		return &types.ConfigurationError{Field: "job.location", Message: "required in strict mode"}
	}
	return nil
}

// assemble folds the twelve results into the final response.
func (e *Engine) assemble(
	req *types.MatchingRequest,
	applied types.ComponentWeights,
	assessment hierarchy.Assessment,
	names []string,
	results []scoring.Result,
	latencies []time.Duration,
	degraded []bool,
) *types.MatchingResponse {
	components := make([]types.ComponentScore, len(names))
	componentLatency := make(map[string]float64, len(names))
	degradedNames := make([]string, 0)

	overall := 0.0
	scoredCount := 0
	highRawCount := 0
	for i, result := range results {
		weight := applied.ForComponent(result.Name)
		overall += weight * result.Score

		if !result.IsFallback() {
			scoredCount++
			if result.Score >= 0.8 {
				highRawCount++
			}
		}
		if degraded[i] {
			degradedNames = append(degradedNames, result.Name)
		}

		elapsedMS := float64(latencies[i].Microseconds()) / 1000
		componentLatency[result.Name] = elapsedMS
		components[i] = types.ComponentScore{
			Name:           result.Name,
			Score:          result.Score,
			Confidence:     result.Confidence,
			Weight:         weight,
			Details:        result.Details,
			Fallback:       result.IsFallback(),
			FallbackReason: result.Reason,
			ElapsedMS:      elapsedMS,
		}
	}

	alerts := make([]types.Alert, 0)
	if assessment.Critical {
		if overall > criticalOverallCap {
			overall = criticalOverallCap
		}
		alerts = append(alerts, types.Alert{
			Type:     types.AlertCriticalMismatch,
			Severity: "critical",
			Message: fmt.Sprintf("seniority gap of %d levels between %s and %s",
				assessment.Gap, assessment.CandidateLevel, assessment.JobLevel),
		})
	}
	if overall < 0.4 && highRawCount >= 3 {
		alerts = append(alerts, types.Alert{
			Type:     types.AlertScoreContradiction,
			Severity: "warning",
			Message: fmt.Sprintf("overall score %.2f despite %d components scoring at or above 0.8",
				overall, highRawCount),
		})
	}

	confidence := confidenceComputedWeight*(float64(scoredCount)/float64(len(results))) +
		confidenceCompletionWeight*(req.Candidate.CompletionRate+req.Job.CompletionRate)/2
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}

	response := &types.MatchingResponse{
		RequestID:      uuid.NewString(),
		CandidateID:    req.Candidate.ID,
		JobID:          req.Job.ID,
		OverallScore:   overall,
		Confidence:     confidence,
		Tier:           types.TierForScore(overall),
		Components:     components,
		AppliedWeights: applied,
		Alerts:         alerts,
		Performance: types.Performance{
			ComponentLatencyMS: componentLatency,
			DegradedComponents: degradedNames,
		},
	}
	response.Recommendations = recommendations(response, assessment)
	return response
}
