package scoring

import "github.com/jonathan/match-engine/internal/types"

// ScoreModality compares the offered work modality against the candidate's
// preferences. Adjacent modalities on the on-site/hybrid/remote scale get
// partial credit.
func ScoreModality(in Input) Result {
	offered := in.Job.Modality
	preferred := in.Candidate.Modalities
	if offered == "" || len(preferred) == 0 {
		return Fallback(types.ComponentModality, "work modality preference missing")
	}

	best := 0.0
	relation := "mismatch"
	for _, m := range preferred {
		if m == offered {
			best = 1.0
			relation = "preferred"
			break
		}
		distance := m.Rank() - offered.Rank()
		if distance < 0 {
			distance = -distance
		}
		var partial float64
		switch distance {
		case 1:
			partial = 0.6
		case 2:
			partial = 0.2
		}
		if partial > best {
			best = partial
			relation = "adjacent"
		}
	}

	return scored(types.ComponentModality, best, 0.85, map[string]any{
		"offered":  string(offered),
		"relation": relation,
	})
}
