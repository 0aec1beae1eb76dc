package scoring

import (
	"github.com/jonathan/match-engine/internal/hierarchy"
	"github.com/jonathan/match-engine/internal/types"
)

// ScoreSector rates candidate domain against job sector through the static
// compatibility matrix. Capped by the hierarchy ceiling.
func ScoreSector(in Input) Result {
	candidateDomain := in.Hierarchy.CandidateDomain
	jobDomain := in.Hierarchy.JobDomain
	if candidateDomain == "" || jobDomain == "" {
		return Fallback(types.ComponentSector, "domain unknown on one side")
	}

	var raw float64
	switch {
	case candidateDomain == jobDomain:
		raw = 1.0
	case candidateDomain == types.DomainGeneral || jobDomain == types.DomainGeneral:
		raw = 0.6
	default:
		raw = hierarchy.SectorBaseline
		if related, ok := hierarchy.CompatibilityMatrix()[candidateDomain][jobDomain]; ok {
			raw = related
		}
	}

	score := capped(raw, in.Hierarchy)
	return scored(types.ComponentSector, score, 0.85, map[string]any{
		"candidate_domain": string(candidateDomain),
		"job_domain":       string(jobDomain),
		"raw_score":        raw,
	})
}
