//nolint:revive // types is a standard Go package name pattern
package types

// CompatibilityTier represents the discrete bucket derived from the overall score
type CompatibilityTier string

// Compatibility tiers
const (
	TierExcellent    CompatibilityTier = "excellent"
	TierGood         CompatibilityTier = "good"
	TierAverage      CompatibilityTier = "average"
	TierPoor         CompatibilityTier = "poor"
	TierIncompatible CompatibilityTier = "incompatible"
)

// TierForScore maps an overall score to its compatibility tier using the
// fixed thresholds.
func TierForScore(score float64) CompatibilityTier {
	switch {
	case score >= 0.8:
		return TierExcellent
	case score >= 0.6:
		return TierGood
	case score >= 0.4:
		return TierAverage
	case score >= 0.2:
		return TierPoor
	default:
		return TierIncompatible
	}
}

// AlertType identifies a typed alert inside a successful response
type AlertType string

// Alert types
const (
	// AlertCriticalMismatch flags a severe seniority/domain gap between the
	// candidate and the job.
	AlertCriticalMismatch AlertType = "critical_mismatch"
	// AlertScoreContradiction flags a low overall score despite individually
	// high raw component scores.
	AlertScoreContradiction AlertType = "score_contradiction"
)

// Alert represents a domain-level inconsistency surfaced alongside the score.
// Alerts are data, never errors; they are always included in a successful
// response and never suppressed.
type Alert struct {
	Type      AlertType `json:"type"`
	Severity  string    `json:"severity"` // "critical" or "warning"
	Message   string    `json:"message"`
	Component string    `json:"component,omitempty"`
}

// ComponentScore represents one component's contribution to the match
type ComponentScore struct {
	Name           string         `json:"name"`
	Score          float64        `json:"score"`
	Confidence     float64        `json:"confidence"`
	Weight         float64        `json:"weight"`
	Details        map[string]any `json:"details,omitempty"`
	Fallback       bool           `json:"fallback"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
	ElapsedMS      float64        `json:"elapsed_ms"`
}

// Performance holds latency metadata for one matching call
type Performance struct {
	ComponentLatencyMS map[string]float64 `json:"component_latency_ms"`
	TotalLatencyMS     float64            `json:"total_latency_ms"`
	TargetAchieved     bool               `json:"target_achieved"`
	DegradedComponents []string           `json:"degraded_components,omitempty"`
}

// MatchingResponse represents the full result of scoring one candidate
// against one job
type MatchingResponse struct {
	RequestID       string            `json:"request_id"`
	CandidateID     string            `json:"candidate_id"`
	JobID           string            `json:"job_id"`
	OverallScore    float64           `json:"overall_score"`
	Confidence      float64           `json:"confidence"`
	Tier            CompatibilityTier `json:"tier"`
	Components      []ComponentScore  `json:"components"`
	AppliedWeights  ComponentWeights  `json:"applied_weights"`
	Alerts          []Alert           `json:"alerts,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Performance     Performance       `json:"performance"`
}

// Component returns the named component entry, or nil if absent.
func (r *MatchingResponse) Component(name string) *ComponentScore {
	for i := range r.Components {
		if r.Components[i].Name == name {
			return &r.Components[i]
		}
	}
	return nil
}

// HasAlert reports whether the response carries an alert of the given type.
func (r *MatchingResponse) HasAlert(t AlertType) bool {
	for _, a := range r.Alerts {
		if a.Type == t {
			return true
		}
	}
	return false
}
