package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/match-engine/internal/hierarchy"
	"github.com/jonathan/match-engine/internal/types"
)

// humanNames maps component identifiers to reader-facing labels.
var humanNames = map[string]string{
	types.ComponentSemantic:     "skill overlap",
	types.ComponentSalary:       "salary fit",
	types.ComponentExperience:   "experience fit",
	types.ComponentLocation:     "commute",
	types.ComponentAvailability: "start date",
	types.ComponentContract:     "contract type",
	types.ComponentModality:     "work modality",
	types.ComponentMotivations:  "motivations",
	types.ComponentListening:    "reason for listening",
	types.ComponentSector:       "sector",
	types.ComponentProgression:  "salary progression",
	types.ComponentStatus:       "search status",
}

// recommendations produces a short human-readable action list from the
// strongest and weakest weighted components.
func recommendations(response *types.MatchingResponse, assessment hierarchy.Assessment) []string {
	recs := make([]string, 0, 3)

	if assessment.Critical {
		recs = append(recs, fmt.Sprintf(
			"Do not shortlist on keyword overlap: candidate is %s-level, role requires %s.",
			assessment.CandidateLevel, assessment.JobLevel))
	}

	switch response.Tier {
	case types.TierExcellent:
		recs = append(recs, "Strong match on all major dimensions; move to interview.")
	case types.TierGood:
		recs = append(recs, "Good match; verify the weaker dimensions in a screening call.")
	}

	// Weakest meaningful components, by weighted impact.
	weak := make([]types.ComponentScore, 0)
	for _, c := range response.Components {
		if !c.Fallback && c.Score < 0.5 && c.Weight >= 0.05 {
			weak = append(weak, c)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		return weak[i].Weight*(1-weak[i].Score) > weak[j].Weight*(1-weak[j].Score)
	})
	for i, c := range weak {
		if i >= 2 {
			break
		}
		recs = append(recs, fmt.Sprintf("Weak %s (%.2f); discuss before proceeding.",
			humanName(c.Name), c.Score))
	}

	if n := len(response.Performance.DegradedComponents); n > 0 {
		labels := make([]string, 0, n)
		for _, name := range response.Performance.DegradedComponents {
			labels = append(labels, humanName(name))
		}
		recs = append(recs, fmt.Sprintf("Score computed with degraded inputs (%s); treat with reduced confidence.",
			strings.Join(labels, ", ")))
	}

	return recs
}

func humanName(component string) string {
	if label, ok := humanNames[component]; ok {
		return label
	}
	return component
}
