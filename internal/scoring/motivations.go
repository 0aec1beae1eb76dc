package scoring

import (
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

// ScoreMotivations matches the candidate's ranked motivations against what
// the role offers. Higher-ranked motivations weigh more: with n motivations,
// rank i carries weight n-i.
func ScoreMotivations(in Input) Result {
	motivations := in.Candidate.Motivations
	offered := in.Job.Motivators
	if len(motivations) == 0 || len(offered) == 0 {
		return Fallback(types.ComponentMotivations, "motivations not stated")
	}

	offeredSet := make(map[string]bool, len(offered))
	for _, m := range offered {
		offeredSet[normalizeSkill(m)] = true
	}

	n := len(motivations)
	totalWeight := 0.0
	matchedWeight := 0.0
	matched := make([]string, 0)
	for i, motivation := range motivations {
		weight := float64(n - i)
		totalWeight += weight
		if offeredSet[normalizeSkill(motivation)] {
			matchedWeight += weight
			matched = append(matched, strings.ToLower(motivation))
		}
	}

	return scored(types.ComponentMotivations, matchedWeight/totalWeight, 0.8, map[string]any{
		"matched": matched,
	})
}
