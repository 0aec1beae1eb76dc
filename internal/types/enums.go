// Package types provides type definitions for structured data used throughout the match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ListeningReason represents why a candidate is open to new opportunities
type ListeningReason string

// Valid listening reasons
const (
	ReasonSalaryBelowMarket     ListeningReason = "salary_below_market"
	ReasonGeographicConstraints ListeningReason = "geographic_constraints"
	ReasonSkillsMismatch        ListeningReason = "skills_mismatch"
	ReasonLackOfGrowth          ListeningReason = "lack_of_growth"
	ReasonCareerChange          ListeningReason = "career_change"
	ReasonContractInstability   ListeningReason = "contract_instability"
	ReasonWorkload              ListeningReason = "workload"
	ReasonOpenToMarket          ListeningReason = "open_to_market"
)

// Valid reports whether the listening reason is a known value. Empty is valid
// and treated as open_to_market.
func (r ListeningReason) Valid() bool {
	switch r {
	case "", ReasonSalaryBelowMarket, ReasonGeographicConstraints, ReasonSkillsMismatch,
		ReasonLackOfGrowth, ReasonCareerChange, ReasonContractInstability,
		ReasonWorkload, ReasonOpenToMarket:
		return true
	}
	return false
}

// Urgency represents how quickly a company needs to fill a position
type Urgency string

// Valid urgency levels
const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyHigh      Urgency = "high"
	UrgencyNormal    Urgency = "normal"
	UrgencyLow       Urgency = "low"
)

// Valid reports whether the urgency is a known value. Empty defaults to normal.
func (u Urgency) Valid() bool {
	switch u {
	case "", UrgencyImmediate, UrgencyHigh, UrgencyNormal, UrgencyLow:
		return true
	}
	return false
}

// SeniorityLevel represents a position on the ordered seniority scale
type SeniorityLevel string

// Seniority levels, ordered from entry to direction
const (
	SeniorityEntry      SeniorityLevel = "entry"
	SeniorityJunior     SeniorityLevel = "junior"
	SeniorityConfirmed  SeniorityLevel = "confirmed"
	SenioritySenior     SeniorityLevel = "senior"
	SeniorityManagement SeniorityLevel = "management"
	SeniorityDirection  SeniorityLevel = "direction"
)

var seniorityRanks = map[SeniorityLevel]int{
	SeniorityEntry:      0,
	SeniorityJunior:     1,
	SeniorityConfirmed:  2,
	SenioritySenior:     3,
	SeniorityManagement: 4,
	SeniorityDirection:  5,
}

// Rank returns the numeric position of the level on the ordered scale.
// Unknown or empty levels return -1.
func (s SeniorityLevel) Rank() int {
	if rank, ok := seniorityRanks[s]; ok {
		return rank
	}
	return -1
}

// Valid reports whether the seniority level is a known value or empty.
func (s SeniorityLevel) Valid() bool {
	return s == "" || s.Rank() >= 0
}

// FunctionalDomain represents the functional area of a role or candidate
type FunctionalDomain string

// Functional domains
const (
	DomainFinance     FunctionalDomain = "finance"
	DomainEngineering FunctionalDomain = "engineering"
	DomainSales       FunctionalDomain = "sales"
	DomainMarketing   FunctionalDomain = "marketing"
	DomainOperations  FunctionalDomain = "operations"
	DomainHR          FunctionalDomain = "hr"
	DomainLegal       FunctionalDomain = "legal"
	DomainIT          FunctionalDomain = "it"
	DomainHealthcare  FunctionalDomain = "healthcare"
	DomainGeneral     FunctionalDomain = "general"
)

// Valid reports whether the domain is a known value or empty.
func (d FunctionalDomain) Valid() bool {
	switch d {
	case "", DomainFinance, DomainEngineering, DomainSales, DomainMarketing,
		DomainOperations, DomainHR, DomainLegal, DomainIT, DomainHealthcare, DomainGeneral:
		return true
	}
	return false
}

// ContractType represents an employment contract type
type ContractType string

// Contract types
const (
	ContractPermanent  ContractType = "permanent"
	ContractFixedTerm  ContractType = "fixed_term"
	ContractFreelance  ContractType = "freelance"
	ContractInternship ContractType = "internship"
	ContractApprentice ContractType = "apprenticeship"
)

// Valid reports whether the contract type is a known value or empty.
func (c ContractType) Valid() bool {
	switch c {
	case "", ContractPermanent, ContractFixedTerm, ContractFreelance,
		ContractInternship, ContractApprentice:
		return true
	}
	return false
}

// WorkModality represents where the work happens
type WorkModality string

// Work modalities, ordered from fully on-site to fully remote
const (
	ModalityOnSite WorkModality = "on_site"
	ModalityHybrid WorkModality = "hybrid"
	ModalityRemote WorkModality = "remote"
)

var modalityRanks = map[WorkModality]int{
	ModalityOnSite: 0,
	ModalityHybrid: 1,
	ModalityRemote: 2,
}

// Rank returns the numeric position on the on-site to remote scale, or -1.
func (m WorkModality) Rank() int {
	if rank, ok := modalityRanks[m]; ok {
		return rank
	}
	return -1
}

// Valid reports whether the modality is a known value or empty.
func (m WorkModality) Valid() bool {
	return m == "" || m.Rank() >= 0
}

// CandidateStatus represents how actively a candidate is searching
type CandidateStatus string

// Candidate statuses
const (
	StatusActive          CandidateStatus = "active"
	StatusPassive         CandidateStatus = "passive"
	StatusEmployedLooking CandidateStatus = "employed_looking"
	StatusAvailableNow    CandidateStatus = "available_now"
)

// Valid reports whether the status is a known value or empty.
func (s CandidateStatus) Valid() bool {
	switch s {
	case "", StatusActive, StatusPassive, StatusEmployedLooking, StatusAvailableNow:
		return true
	}
	return false
}
