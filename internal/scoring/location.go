package scoring

import (
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

// ScoreLocation consumes the precomputed transport bundle from the location
// intelligence collaborator. When no bundle is available it falls back to a
// coarse same-city/region/country heuristic; a fully remote job is a perfect
// fit regardless of addresses.
func ScoreLocation(in Input) Result {
	if in.Job.Modality == types.ModalityRemote {
		return scored(types.ComponentLocation, 1.0, 0.95, map[string]any{
			"relation": "remote",
		})
	}

	if best := in.Location.Best(); best != nil {
		return scored(types.ComponentLocation, best.Compatibility, 0.95, map[string]any{
			"source":           "location_intelligence",
			"best_mode":        string(best.Mode),
			"duration_minutes": best.DurationMinutes,
			"monthly_cost":     best.MonthlyCost,
		})
	}

	from := in.Candidate.Location
	to := in.Job.Location
	if from.IsZero() || to.IsZero() {
		return Fallback(types.ComponentLocation, "location missing on one side")
	}

	var score float64
	var relation string
	switch {
	case equalFold(from.City, to.City):
		score, relation = 1.0, "same_city"
	case from.Region != "" && equalFold(from.Region, to.Region):
		score, relation = 0.7, "same_region"
	case from.Country != "" && equalFold(from.Country, to.Country):
		score, relation = 0.4, "same_country"
	default:
		score, relation = 0.2, "distant"
	}
	if in.Job.Modality == types.ModalityHybrid && score < 0.9 {
		// Hybrid softens the commute requirement.
		score += 0.1
	}

	return scored(types.ComponentLocation, score, 0.7, map[string]any{
		"source":   "heuristic",
		"relation": relation,
	})
}

func equalFold(a, b string) bool {
	return a != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
