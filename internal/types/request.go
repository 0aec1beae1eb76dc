//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Default latency budgets for the scoring fan-out
const (
	DefaultPerComponentTimeout = 800 * time.Millisecond
	DefaultGlobalTimeout       = 3 * time.Second
)

// MatchOptions holds per-request behavior flags recognized by the engine
type MatchOptions struct {
	// AdaptiveWeighting enables the reason/urgency delta lookup on top of the
	// default weight vector.
	AdaptiveWeighting bool `json:"adaptive_weighting"`
	// LocationIntelligence enables consumption of the precomputed transport
	// bundle from the location collaborator.
	LocationIntelligence bool `json:"location_intelligence"`
	// StrictMode fails the call on missing required fields instead of
	// degrading confidence.
	StrictMode bool `json:"strict_mode"`
	// PerComponentTimeoutMS bounds each scorer task. Zero uses the default.
	PerComponentTimeoutMS int `json:"per_component_timeout_ms,omitempty" validate:"gte=0"`
	// GlobalTimeoutMS bounds the whole fan-out/fan-in. Zero uses the default.
	GlobalTimeoutMS int `json:"global_timeout_ms,omitempty" validate:"gte=0"`
}

// PerComponentTimeout returns the effective per-scorer budget.
func (o MatchOptions) PerComponentTimeout() time.Duration {
	if o.PerComponentTimeoutMS > 0 {
		return time.Duration(o.PerComponentTimeoutMS) * time.Millisecond
	}
	return DefaultPerComponentTimeout
}

// GlobalTimeout returns the effective call-level budget.
func (o MatchOptions) GlobalTimeout() time.Duration {
	if o.GlobalTimeoutMS > 0 {
		return time.Duration(o.GlobalTimeoutMS) * time.Millisecond
	}
	return DefaultGlobalTimeout
}

// MatchingRequest represents one candidate/job pair to score
type MatchingRequest struct {
	Candidate *CandidateProfile `json:"candidate" validate:"required"`
	Job       *JobProfile       `json:"job" validate:"required"`
	Options   MatchOptions      `json:"options"`
}
