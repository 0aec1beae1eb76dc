package scoring

import (
	"math"

	"github.com/jonathan/match-engine/internal/types"
)

// ScoreExperience compares candidate years of experience against the job's
// required range. Under-qualification decays with the deficit;
// over-qualification decays gently. Capped by the hierarchy ceiling.
func ScoreExperience(in Input) Result {
	years := in.Candidate.YearsExperience
	required := in.Job.Experience
	if years < 0 {
		return Fallback(types.ComponentExperience, "negative years of experience")
	}
	if required.IsZero() {
		return Fallback(types.ComponentExperience, "no experience requirement stated")
	}

	var raw float64
	details := map[string]any{
		"candidate_years": years,
		"required_min":    required.MinYears,
		"required_max":    required.MaxYears,
	}

	switch {
	case years < required.MinYears:
		// Under-qualified: proportional to how close they get.
		raw = 0.8 * (years / required.MinYears)
		details["relation"] = "under_qualified"
	case required.MaxYears > 0 && years > required.MaxYears:
		// Over-qualified: 5% per surplus year, floored at 0.5 before capping.
		surplus := years - required.MaxYears
		raw = math.Max(0.5, 1.0-0.05*surplus)
		details["relation"] = "over_qualified"
		details["surplus_years"] = surplus
	default:
		raw = 1.0
		details["relation"] = "in_range"
	}

	score := capped(raw, in.Hierarchy)
	details["raw_score"] = raw
	return scored(types.ComponentExperience, score, 0.9, details)
}
