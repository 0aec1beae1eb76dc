package hierarchy

import "github.com/jonathan/match-engine/internal/types"

// SeniorityEntry maps keywords to a seniority level
type SeniorityEntry struct {
	Level    types.SeniorityLevel `json:"level"`
	Keywords []string             `json:"keywords"`
}

// DomainEntry maps keywords to a functional domain
type DomainEntry struct {
	Domain   types.FunctionalDomain `json:"domain"`
	Keywords []string               `json:"keywords"`
}

// Tables holds the static classification lookups. Loaded once at startup and
// never mutated afterwards.
type Tables struct {
	Version   string           `json:"version"`
	Seniority []SeniorityEntry `json:"seniority"`
	Domains   []DomainEntry    `json:"domains"`
}

// DefaultTables returns the compiled-in classification tables. More specific
// seniority keywords come first so "senior manager" classifies as management
// rather than senior.
func DefaultTables() Tables {
	return Tables{
		Version: "v1",
		Seniority: []SeniorityEntry{
			{Level: types.SeniorityDirection, Keywords: []string{
				"director", "directeur", "directrice", "vp ", "vice president",
				"chief", "ceo", "cfo", "cto", "coo", "executive", "partner",
			}},
			{Level: types.SeniorityManagement, Keywords: []string{
				"manager", "head of", "lead ", "team lead", "responsable",
				"supervisor", "principal",
			}},
			{Level: types.SenioritySenior, Keywords: []string{
				"senior", "sr.", "sr ", "expert", "staff",
			}},
			{Level: types.SeniorityJunior, Keywords: []string{
				"junior", "jr.", "jr ", "assistant",
			}},
			{Level: types.SeniorityEntry, Keywords: []string{
				"intern", "trainee", "apprentice", "stagiaire", "graduate", "entry",
			}},
		},
		Domains: []DomainEntry{
			{Domain: types.DomainFinance, Keywords: []string{
				"accounting", "accountant", "comptable", "finance", "financial",
				"audit", "treasury", "payroll", "controller", "bookkeeping",
			}},
			{Domain: types.DomainEngineering, Keywords: []string{
				"engineer", "engineering", "mechanical", "electrical", "civil",
				"manufacturing", "maintenance",
			}},
			{Domain: types.DomainIT, Keywords: []string{
				"software", "developer", "devops", "data", "cloud", "backend",
				"frontend", "fullstack", "sysadmin", "cybersecurity",
			}},
			{Domain: types.DomainSales, Keywords: []string{
				"sales", "account executive", "business development", "commercial",
			}},
			{Domain: types.DomainMarketing, Keywords: []string{
				"marketing", "seo", "content", "brand", "communication",
			}},
			{Domain: types.DomainOperations, Keywords: []string{
				"operations", "logistics", "supply chain", "procurement", "warehouse",
			}},
			{Domain: types.DomainHR, Keywords: []string{
				"recruiter", "recruitment", "talent", "human resources", "people ops",
			}},
			{Domain: types.DomainLegal, Keywords: []string{
				"legal", "lawyer", "counsel", "juriste", "compliance",
			}},
			{Domain: types.DomainHealthcare, Keywords: []string{
				"nurse", "medical", "healthcare", "clinical", "pharma",
			}},
		},
	}
}

// CompatibilityMatrix returns the static cross-domain compatibility scores
// used by the sector scorer. Same-domain pairs score 1.0 implicitly; pairs
// absent from the matrix score the baseline.
func CompatibilityMatrix() map[types.FunctionalDomain]map[types.FunctionalDomain]float64 {
	return map[types.FunctionalDomain]map[types.FunctionalDomain]float64{
		types.DomainFinance: {
			types.DomainOperations: 0.6,
			types.DomainLegal:      0.5,
			types.DomainIT:         0.4,
		},
		types.DomainEngineering: {
			types.DomainIT:         0.7,
			types.DomainOperations: 0.6,
		},
		types.DomainIT: {
			types.DomainEngineering: 0.7,
			types.DomainMarketing:   0.4,
			types.DomainFinance:     0.4,
		},
		types.DomainSales: {
			types.DomainMarketing:  0.7,
			types.DomainOperations: 0.4,
		},
		types.DomainMarketing: {
			types.DomainSales: 0.7,
		},
		types.DomainOperations: {
			types.DomainEngineering: 0.6,
			types.DomainFinance:     0.6,
			types.DomainSales:       0.4,
		},
		types.DomainHR: {
			types.DomainOperations: 0.5,
		},
		types.DomainLegal: {
			types.DomainFinance: 0.5,
			types.DomainHR:      0.4,
		},
	}
}

// SectorBaseline is the score for unrelated domain pairs.
const SectorBaseline = 0.3
