package scoring

import "github.com/jonathan/match-engine/internal/types"

// statusFit maps candidate search status against company urgency. An urgent
// seat and a passive candidate rarely work out.
var statusFit = map[types.CandidateStatus]map[types.Urgency]float64{
	types.StatusAvailableNow: {
		types.UrgencyImmediate: 1.0,
		types.UrgencyHigh:      1.0,
		types.UrgencyNormal:    0.9,
		types.UrgencyLow:       0.8,
	},
	types.StatusActive: {
		types.UrgencyImmediate: 0.9,
		types.UrgencyHigh:      0.9,
		types.UrgencyNormal:    1.0,
		types.UrgencyLow:       0.9,
	},
	types.StatusEmployedLooking: {
		types.UrgencyImmediate: 0.5,
		types.UrgencyHigh:      0.7,
		types.UrgencyNormal:    0.9,
		types.UrgencyLow:       1.0,
	},
	types.StatusPassive: {
		types.UrgencyImmediate: 0.3,
		types.UrgencyHigh:      0.4,
		types.UrgencyNormal:    0.6,
		types.UrgencyLow:       0.8,
	},
}

// ScoreStatus rates how the candidate's search status fits the company's
// urgency.
func ScoreStatus(in Input) Result {
	status := in.Candidate.Status
	if status == "" {
		return Fallback(types.ComponentStatus, "candidate status not stated")
	}
	row, ok := statusFit[status]
	if !ok {
		return Fallback(types.ComponentStatus, "unknown candidate status")
	}

	urgency := in.Job.Urgency
	if urgency == "" {
		urgency = types.UrgencyNormal
	}

	return scored(types.ComponentStatus, row[urgency], 0.85, map[string]any{
		"status":  string(status),
		"urgency": string(urgency),
	})
}
