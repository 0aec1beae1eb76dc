//nolint:revive // types is a standard Go package name pattern
package types

// SalaryRange represents an annual gross salary interval
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IsZero reports whether the range carries no information.
func (r SalaryRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// IsValid reports whether the range is well-formed (non-negative, min <= max).
func (r SalaryRange) IsValid() bool {
	return r.Min >= 0 && r.Max >= r.Min
}

// Mid returns the midpoint of the range.
func (r SalaryRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// ExperienceRange represents a required experience interval in years
type ExperienceRange struct {
	MinYears float64 `json:"min_years"`
	MaxYears float64 `json:"max_years"`
}

// IsZero reports whether the range carries no information.
func (r ExperienceRange) IsZero() bool {
	return r.MinYears == 0 && r.MaxYears == 0
}

// Location represents a place of work or residence
type Location struct {
	City    string `json:"city"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
}

// IsZero reports whether the location is empty.
func (l Location) IsZero() bool {
	return l.City == "" && l.Region == "" && l.Country == ""
}

// CandidateProfile represents a structured candidate as supplied by the
// document parser collaborator. The engine trusts structural completeness
// only; optional fields degrade individual scorer confidence when absent.
type CandidateProfile struct {
	ID                string           `json:"id" validate:"required"`
	FullName          string           `json:"full_name,omitempty"`
	CurrentTitle      string           `json:"current_title,omitempty"`
	Skills            []string         `json:"skills"`
	YearsExperience   float64          `json:"years_experience" validate:"gte=0"`
	SalaryExpectation SalaryRange      `json:"salary_expectation"`
	CurrentSalary     float64          `json:"current_salary,omitempty"`
	SalaryHistory     []float64        `json:"salary_history,omitempty"`
	Location          Location         `json:"location"`
	AcceptedContracts []ContractType   `json:"accepted_contracts,omitempty"`
	Modalities        []WorkModality   `json:"modalities,omitempty"`
	Motivations       []string         `json:"motivations,omitempty"` // ranked, most important first
	ListeningReason   ListeningReason  `json:"listening_reason,omitempty"`
	AvailabilityWeeks int              `json:"availability_weeks"` // weeks until the candidate can start
	Status            CandidateStatus  `json:"status,omitempty"`
	Seniority         SeniorityLevel   `json:"seniority,omitempty"` // classified from title when absent
	Domain            FunctionalDomain `json:"domain,omitempty"`    // classified from title/skills when absent
	CompletionRate    float64          `json:"completion_rate" validate:"gte=0,lte=1"`
}

// JobProfile represents a structured job posting joined with company context
type JobProfile struct {
	ID                  string           `json:"id" validate:"required"`
	Title               string           `json:"title" validate:"required"`
	Company             string           `json:"company,omitempty"`
	RequiredSkills      []string         `json:"required_skills"`
	PreferredSkills     []string         `json:"preferred_skills,omitempty"`
	Experience          ExperienceRange  `json:"experience"`
	Salary              SalaryRange      `json:"salary"`
	Location            Location         `json:"location"`
	Contract            ContractType     `json:"contract,omitempty"`
	Modality            WorkModality     `json:"modality,omitempty"`
	Urgency             Urgency          `json:"urgency,omitempty"`
	HiringTimelineWeeks int              `json:"hiring_timeline_weeks"` // weeks until the seat must be filled
	Sector              FunctionalDomain `json:"sector,omitempty"`
	Motivators          []string         `json:"motivators,omitempty"` // what the role offers (growth, impact, ...)
	RequiredSeniority   SeniorityLevel   `json:"required_seniority,omitempty"`
	RequiredDomain      FunctionalDomain `json:"required_domain,omitempty"`
	CompletionRate      float64          `json:"completion_rate" validate:"gte=0,lte=1"`
}
