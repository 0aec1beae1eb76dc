package scoring

import "github.com/jonathan/match-engine/internal/types"

// ScoreListening answers one question: does this job fix the reason the
// candidate is listening to the market?
func ScoreListening(in Input) Result {
	reason := in.Candidate.ListeningReason
	if reason == "" {
		return Fallback(types.ComponentListening, "listening reason not stated")
	}

	details := map[string]any{"reason": string(reason)}
	var score float64

	switch reason {
	case types.ReasonSalaryBelowMarket:
		score = salaryReliefScore(in, details)
	case types.ReasonGeographicConstraints:
		score = geographicReliefScore(in, details)
	case types.ReasonSkillsMismatch:
		score = skillUseScore(in, details)
	case types.ReasonLackOfGrowth:
		score = growthScore(in, details)
	case types.ReasonCareerChange:
		if in.Hierarchy.CandidateDomain != "" && in.Hierarchy.JobDomain != "" &&
			in.Hierarchy.CandidateDomain != in.Hierarchy.JobDomain {
			score = 1.0
		} else {
			score = 0.4
		}
	case types.ReasonContractInstability:
		switch in.Job.Contract {
		case types.ContractPermanent:
			score = 1.0
		case types.ContractFixedTerm:
			score = 0.4
		default:
			score = 0.3
		}
	case types.ReasonWorkload:
		score = workloadReliefScore(in)
	case types.ReasonOpenToMarket:
		// No pain point to fix; mild positive signal either way.
		score = 0.6
	default:
		return Fallback(types.ComponentListening, "unknown listening reason")
	}

	return scored(types.ComponentListening, score, 0.8, details)
}

// salaryReliefScore checks whether the offer improves on the candidate's
// current situation.
func salaryReliefScore(in Input, details map[string]any) float64 {
	reference := in.Candidate.CurrentSalary
	if reference == 0 {
		reference = in.Candidate.SalaryExpectation.Mid()
	}
	if reference == 0 || in.Job.Salary.IsZero() {
		return 0.5
	}
	improvement := (in.Job.Salary.Mid() - reference) / reference
	details["salary_improvement"] = improvement
	switch {
	case improvement >= 0.10:
		return 1.0
	case improvement > 0:
		return 0.6 + 4*improvement
	default:
		return 0.2
	}
}

func geographicReliefScore(in Input, details map[string]any) float64 {
	if in.Job.Modality == types.ModalityRemote {
		details["relief"] = "remote"
		return 1.0
	}
	if equalFold(in.Candidate.Location.City, in.Job.Location.City) {
		details["relief"] = "same_city"
		return 1.0
	}
	if in.Job.Modality == types.ModalityHybrid {
		details["relief"] = "hybrid"
		return 0.7
	}
	return 0.4
}

// skillUseScore approximates how much the new role would use the skills the
// candidate feels are wasted today.
func skillUseScore(in Input, details map[string]any) float64 {
	if len(in.Candidate.Skills) == 0 || len(in.Job.RequiredSkills) == 0 {
		return 0.5
	}
	candidateSet := tokenSet(in.Candidate.Skills)
	hits := 0
	for _, skill := range in.Job.RequiredSkills {
		if overlaps(candidateSet, skill) {
			hits++
		}
	}
	ratio := float64(hits) / float64(len(in.Job.RequiredSkills))
	details["skill_use_ratio"] = ratio
	return ratio
}

func growthScore(in Input, details map[string]any) float64 {
	candidateRank := in.Hierarchy.CandidateLevel.Rank()
	jobRank := in.Hierarchy.JobLevel.Rank()
	if candidateRank < 0 || jobRank < 0 {
		return 0.5
	}
	switch {
	case jobRank > candidateRank:
		details["growth"] = "step_up"
		return 1.0
	case jobRank == candidateRank:
		for _, m := range in.Job.Motivators {
			if normalizeSkill(m) == "growth" {
				details["growth"] = "lateral_with_growth"
				return 0.7
			}
		}
		details["growth"] = "lateral"
		return 0.5
	default:
		details["growth"] = "step_down"
		return 0.2
	}
}

func workloadReliefScore(in Input) float64 {
	for _, m := range in.Job.Motivators {
		if normalizeSkill(m) == "balance" || normalizeSkill(m) == "work-life balance" {
			return 1.0
		}
	}
	switch in.Job.Modality {
	case types.ModalityRemote, types.ModalityHybrid:
		return 0.8
	default:
		return 0.5
	}
}
