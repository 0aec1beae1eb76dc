package scoring

import (
	"math"

	"github.com/jonathan/match-engine/internal/types"
)

// ScoreAvailability compares when the candidate can start against the hiring
// timeline. Lateness is penalized harder under high urgency.
func ScoreAvailability(in Input) Result {
	available := in.Candidate.AvailabilityWeeks
	timeline := in.Job.HiringTimelineWeeks
	if available < 0 || timeline < 0 {
		return Fallback(types.ComponentAvailability, "negative timing value")
	}

	details := map[string]any{
		"availability_weeks": available,
		"timeline_weeks":     timeline,
	}

	if available <= timeline {
		details["relation"] = "on_time"
		return scored(types.ComponentAvailability, 1.0, 0.9, details)
	}

	lateWeeks := float64(available - timeline)
	score := math.Max(0, 1.0-lateWeeks/8.0)
	switch in.Job.Urgency {
	case types.UrgencyImmediate:
		score *= 0.6
	case types.UrgencyHigh:
		score *= 0.8
	}

	details["relation"] = "late"
	details["late_weeks"] = lateWeeks
	return scored(types.ComponentAvailability, score, 0.9, details)
}
