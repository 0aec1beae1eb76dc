package scoring

import (
	"math"

	"github.com/jonathan/match-engine/internal/types"
)

// ScoreProgression rates the offered salary against the candidate's salary
// trajectory: a raise above recent growth is ideal, a cut scores poorly.
func ScoreProgression(in Input) Result {
	reference := latestSalary(in.Candidate)
	if reference == 0 || in.Job.Salary.IsZero() {
		return Fallback(types.ComponentProgression, "salary history missing")
	}

	growth := (in.Job.Salary.Mid() - reference) / reference
	details := map[string]any{
		"reference_salary": reference,
		"offered_growth":   growth,
	}

	var score float64
	switch {
	case growth >= 0.10:
		score = 1.0
	case growth >= 0:
		score = 0.7 + 3*growth
	case growth >= -0.05:
		score = 0.5
	default:
		score = math.Max(0, 0.4+2*growth)
	}

	// A flat or declining history makes any raise count more.
	if len(in.Candidate.SalaryHistory) >= 2 {
		if slope := historySlope(in.Candidate.SalaryHistory); slope <= 0 && growth > 0 {
			score = math.Min(1.0, score+0.1)
			details["history_trend"] = "flat_or_declining"
		}
	}

	return scored(types.ComponentProgression, score, 0.8, details)
}

func latestSalary(c *types.CandidateProfile) float64 {
	if n := len(c.SalaryHistory); n > 0 {
		return c.SalaryHistory[n-1]
	}
	return c.CurrentSalary
}

// historySlope returns the mean year-over-year relative change, or 0 for a
// history shorter than two points.
func historySlope(history []float64) float64 {
	if len(history) < 2 {
		return 0
	}
	total := 0.0
	steps := 0
	for i := 1; i < len(history); i++ {
		if history[i-1] <= 0 {
			continue
		}
		total += (history[i] - history[i-1]) / history[i-1]
		steps++
	}
	if steps == 0 {
		return 0
	}
	return total / float64(steps)
}
