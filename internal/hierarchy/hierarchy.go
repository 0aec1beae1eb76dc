// Package hierarchy classifies seniority level and functional domain from
// profile text and derives the compatibility ceiling used by the semantic,
// experience, salary, and sector scorers.
package hierarchy

import (
	"math"
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

// Decay curve constants. Hand-tuned; shipped as data so they can be re-tuned
// without a release (see DefaultTables).
const (
	// decayPerStep is the multiplicative penalty per seniority level of distance
	decayPerStep = 0.75
	// criticalGap is the level distance at which the mismatch becomes critical
	criticalGap = 4
	// criticalCeiling is the hard cap applied to the four capped components
	// when the mismatch is critical
	criticalCeiling = 0.3
	// domainMismatchPenalty scales the ceiling when both domains are known
	// and different
	domainMismatchPenalty = 0.85
)

// Assessment represents the seniority/domain compatibility between a
// candidate and a job
type Assessment struct {
	CandidateLevel  types.SeniorityLevel   `json:"candidate_level"`
	JobLevel        types.SeniorityLevel   `json:"job_level"`
	Gap             int                    `json:"gap"`
	Factor          float64                `json:"factor"`
	Critical        bool                   `json:"critical"`
	CandidateDomain types.FunctionalDomain `json:"candidate_domain"`
	JobDomain       types.FunctionalDomain `json:"job_domain"`
	DomainAligned   bool                   `json:"domain_aligned"`
}

// Ceiling returns the maximum score the capped components may report. A
// non-critical gap decays multiplicatively per step; a critical gap hard-caps
// at criticalCeiling regardless of the raw computation.
func (a Assessment) Ceiling() float64 {
	if a.Critical {
		return criticalCeiling
	}
	ceiling := a.Factor
	if !a.DomainAligned && a.CandidateDomain != "" && a.JobDomain != "" {
		ceiling *= domainMismatchPenalty
	}
	return ceiling
}

// Classifier places profiles on the seniority scale and into functional
// domains using static keyword tables. The tables are read-only after
// construction and safe for concurrent use.
type Classifier struct {
	tables Tables
}

// NewClassifier creates a classifier backed by the given tables.
func NewClassifier(tables Tables) *Classifier {
	return &Classifier{tables: tables}
}

// Assess computes the hierarchical compatibility between candidate and job.
// Explicit seniority/domain fields win over text classification.
func (c *Classifier) Assess(candidate *types.CandidateProfile, job *types.JobProfile) Assessment {
	candidateLevel := candidate.Seniority
	if candidateLevel == "" {
		candidateLevel = c.ClassifySeniority(candidate.CurrentTitle, candidate.YearsExperience)
	}

	jobLevel := job.RequiredSeniority
	if jobLevel == "" {
		jobLevel = c.ClassifySeniority(job.Title, job.Experience.MinYears)
	}

	candidateDomain := candidate.Domain
	if candidateDomain == "" {
		candidateDomain = c.ClassifyDomain(candidate.CurrentTitle, candidate.Skills)
	}

	jobDomain := job.RequiredDomain
	if jobDomain == "" {
		jobDomain = job.Sector
	}
	if jobDomain == "" {
		jobDomain = c.ClassifyDomain(job.Title, job.RequiredSkills)
	}

	gap := 0
	if candidateLevel.Rank() >= 0 && jobLevel.Rank() >= 0 {
		gap = candidateLevel.Rank() - jobLevel.Rank()
		if gap < 0 {
			gap = -gap
		}
	}

	aligned := candidateDomain == jobDomain ||
		candidateDomain == "" || jobDomain == "" ||
		candidateDomain == types.DomainGeneral || jobDomain == types.DomainGeneral

	return Assessment{
		CandidateLevel:  candidateLevel,
		JobLevel:        jobLevel,
		Gap:             gap,
		Factor:          math.Pow(decayPerStep, float64(gap)),
		Critical:        gap >= criticalGap,
		CandidateDomain: candidateDomain,
		JobDomain:       jobDomain,
		DomainAligned:   aligned,
	}
}

// ClassifySeniority places a title on the ordered seniority scale. Keyword
// hits win; otherwise years of experience decide.
func (c *Classifier) ClassifySeniority(title string, years float64) types.SeniorityLevel {
	lowered := strings.ToLower(title)
	for _, entry := range c.tables.Seniority {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lowered, keyword) {
				return entry.Level
			}
		}
	}

	switch {
	case years >= 15:
		return types.SeniorityManagement
	case years >= 8:
		return types.SenioritySenior
	case years >= 4:
		return types.SeniorityConfirmed
	case years >= 1.5:
		return types.SeniorityJunior
	default:
		return types.SeniorityEntry
	}
}

// ClassifyDomain maps a title and skill set onto a functional domain by
// counting keyword hits. Ties resolve to the first table entry; no hits
// resolve to general.
func (c *Classifier) ClassifyDomain(title string, skills []string) types.FunctionalDomain {
	var haystack strings.Builder
	haystack.WriteString(strings.ToLower(title))
	for _, skill := range skills {
		haystack.WriteString(" ")
		haystack.WriteString(strings.ToLower(skill))
	}
	text := haystack.String()

	best := types.DomainGeneral
	bestHits := 0
	for _, entry := range c.tables.Domains {
		hits := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			best = entry.Domain
			bestHits = hits
		}
	}
	return best
}
