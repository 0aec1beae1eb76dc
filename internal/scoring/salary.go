package scoring

import (
	"math"

	"github.com/jonathan/match-engine/internal/types"
)

// ScoreSalary computes the fit between the candidate's expectation range and
// the job's offer range. Overlapping ranges score by overlap ratio; a job
// paying above expectations is near-perfect; an offer below expectations
// decays with the relative gap. The raw score is capped by the hierarchy
// ceiling.
func ScoreSalary(in Input) Result {
	expectation := in.Candidate.SalaryExpectation
	offer := in.Job.Salary
	if expectation.IsZero() || offer.IsZero() {
		return Fallback(types.ComponentSalary, "salary range missing")
	}
	if !expectation.IsValid() || !offer.IsValid() {
		return Fallback(types.ComponentSalary, "salary range malformed")
	}

	var raw float64
	details := map[string]any{
		"expectation_mid": expectation.Mid(),
		"offer_mid":       offer.Mid(),
	}

	switch {
	case offer.Min > expectation.Max:
		// Offer entirely above expectations.
		raw = 0.95
		details["relation"] = "above_expectation"
	case offer.Max < expectation.Min:
		// Offer entirely below expectations; decay with the relative gap.
		gap := (expectation.Min - offer.Max) / expectation.Min
		raw = math.Max(0, 0.5-1.5*gap)
		details["relation"] = "below_expectation"
		details["relative_gap"] = gap
	default:
		overlap := math.Min(expectation.Max, offer.Max) - math.Max(expectation.Min, offer.Min)
		width := math.Min(expectation.Max-expectation.Min, offer.Max-offer.Min)
		ratio := 1.0
		if width > 0 {
			ratio = overlap / width
		}
		raw = 0.7 + 0.3*ratio
		details["relation"] = "overlap"
		details["overlap_ratio"] = ratio
	}

	score := capped(raw, in.Hierarchy)
	details["raw_score"] = raw
	return scored(types.ComponentSalary, score, 0.9, details)
}
