package scoring

import "github.com/jonathan/match-engine/internal/types"

// relatedContracts gives partial credit between contract types a candidate
// did not list but plausibly accepts.
var relatedContracts = map[types.ContractType]map[types.ContractType]float64{
	types.ContractPermanent: {
		types.ContractFixedTerm: 0.6,
	},
	types.ContractFixedTerm: {
		types.ContractPermanent: 0.8,
		types.ContractFreelance: 0.4,
	},
	types.ContractFreelance: {
		types.ContractFixedTerm: 0.4,
	},
	types.ContractInternship: {
		types.ContractApprentice: 0.7,
	},
	types.ContractApprentice: {
		types.ContractInternship: 0.7,
	},
}

// ScoreContract checks whether the offered contract type is in the
// candidate's accepted set, with partial credit for related types.
func ScoreContract(in Input) Result {
	offered := in.Job.Contract
	accepted := in.Candidate.AcceptedContracts
	if offered == "" || len(accepted) == 0 {
		return Fallback(types.ComponentContract, "contract preference missing")
	}

	best := 0.1
	relation := "mismatch"
	for _, c := range accepted {
		if c == offered {
			best = 1.0
			relation = "accepted"
			break
		}
		if related, ok := relatedContracts[c][offered]; ok && related > best {
			best = related
			relation = "related"
		}
	}

	return scored(types.ComponentContract, best, 0.9, map[string]any{
		"offered":  string(offered),
		"relation": relation,
	})
}
