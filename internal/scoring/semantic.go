package scoring

import (
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

// Skill match weights: required skills count double relative to preferred.
const (
	requiredSkillWeight  = 1.0
	preferredSkillWeight = 0.5
)

// ScoreSemantic computes the normalized token-set overlap between candidate
// skills and the job's required/preferred skills, then caps the raw score by
// the hierarchy ceiling so keyword overlap alone never bridges a severe
// seniority gap.
func ScoreSemantic(in Input) Result {
	if len(in.Candidate.Skills) == 0 || len(in.Job.RequiredSkills)+len(in.Job.PreferredSkills) == 0 {
		return Fallback(types.ComponentSemantic, "no skills to compare")
	}

	candidateSet := tokenSet(in.Candidate.Skills)

	totalWeight := 0.0
	matchedWeight := 0.0
	matched := make([]string, 0)
	missing := make([]string, 0)

	for _, skill := range in.Job.RequiredSkills {
		totalWeight += requiredSkillWeight
		if overlaps(candidateSet, skill) {
			matchedWeight += requiredSkillWeight
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for _, skill := range in.Job.PreferredSkills {
		totalWeight += preferredSkillWeight
		if overlaps(candidateSet, skill) {
			matchedWeight += preferredSkillWeight
			matched = append(matched, skill)
		}
	}

	raw := 0.0
	if totalWeight > 0 {
		raw = matchedWeight / totalWeight
	}
	score := capped(raw, in.Hierarchy)

	return scored(types.ComponentSemantic, score, 0.9, map[string]any{
		"raw_score":      raw,
		"ceiling":        in.Hierarchy.Ceiling(),
		"matched_skills": matched,
		"missing_skills": missing,
	})
}

// tokenSet lowercases and splits skill phrases into a token lookup.
func tokenSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := normalizeSkill(skill)
		if normalized == "" {
			continue
		}
		set[normalized] = true
		for _, token := range strings.Fields(normalized) {
			set[token] = true
		}
	}
	return set
}

// overlaps reports whether any token of the skill appears in the set, or the
// whole normalized phrase does.
func overlaps(set map[string]bool, skill string) bool {
	normalized := normalizeSkill(skill)
	if normalized == "" {
		return false
	}
	if set[normalized] {
		return true
	}
	tokens := strings.Fields(normalized)
	if len(tokens) < 2 {
		return false
	}
	hits := 0
	for _, token := range tokens {
		if set[token] {
			hits++
		}
	}
	// A multi-word skill counts when most of its tokens are present.
	return hits*2 > len(tokens)
}

func normalizeSkill(skill string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(skill))), " ")
}
