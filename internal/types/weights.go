//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math"
)

// Component names, one per scoring dimension
const (
	ComponentSemantic     = "semantic"
	ComponentSalary       = "salary"
	ComponentExperience   = "experience"
	ComponentLocation     = "location"
	ComponentAvailability = "availability"
	ComponentContract     = "contract"
	ComponentModality     = "modality"
	ComponentMotivations  = "motivations"
	ComponentListening    = "listening"
	ComponentSector       = "sector"
	ComponentProgression  = "progression"
	ComponentStatus       = "status"
)

// Weight invariant bounds
const (
	// WeightSumTolerance is the allowed deviation of the weight sum from 1.0
	WeightSumTolerance = 0.01
	// MaxComponentWeight is the upper bound for any single component weight
	MaxComponentWeight = 0.40
)

// ComponentNames returns the twelve component names in canonical order.
func ComponentNames() []string {
	return []string{
		ComponentSemantic,
		ComponentSalary,
		ComponentExperience,
		ComponentLocation,
		ComponentAvailability,
		ComponentContract,
		ComponentModality,
		ComponentMotivations,
		ComponentListening,
		ComponentSector,
		ComponentProgression,
		ComponentStatus,
	}
}

// ComponentWeights holds exactly twelve named weights, one per scoring
// dimension. A valid vector sums to 1.0 within WeightSumTolerance and keeps
// every entry in [0, MaxComponentWeight].
type ComponentWeights struct {
	Semantic     float64 `json:"semantic"`
	Salary       float64 `json:"salary"`
	Experience   float64 `json:"experience"`
	Location     float64 `json:"location"`
	Availability float64 `json:"availability"`
	Contract     float64 `json:"contract"`
	Modality     float64 `json:"modality"`
	Motivations  float64 `json:"motivations"`
	Listening    float64 `json:"listening"`
	Sector       float64 `json:"sector"`
	Progression  float64 `json:"progression"`
	Status       float64 `json:"status"`
}

// AsMap returns the weights keyed by component name.
func (w ComponentWeights) AsMap() map[string]float64 {
	return map[string]float64{
		ComponentSemantic:     w.Semantic,
		ComponentSalary:       w.Salary,
		ComponentExperience:   w.Experience,
		ComponentLocation:     w.Location,
		ComponentAvailability: w.Availability,
		ComponentContract:     w.Contract,
		ComponentModality:     w.Modality,
		ComponentMotivations:  w.Motivations,
		ComponentListening:    w.Listening,
		ComponentSector:       w.Sector,
		ComponentProgression:  w.Progression,
		ComponentStatus:       w.Status,
	}
}

// ForComponent returns the weight for the named component, or 0 for an
// unknown name.
func (w ComponentWeights) ForComponent(name string) float64 {
	return w.AsMap()[name]
}

// Sum returns the total of all twelve weights.
func (w ComponentWeights) Sum() float64 {
	total := 0.0
	for _, v := range w.AsMap() {
		total += v
	}
	return total
}

// Apply adds a delta to the named component. Unknown names are ignored.
func (w *ComponentWeights) Apply(name string, delta float64) {
	switch name {
	case ComponentSemantic:
		w.Semantic += delta
	case ComponentSalary:
		w.Salary += delta
	case ComponentExperience:
		w.Experience += delta
	case ComponentLocation:
		w.Location += delta
	case ComponentAvailability:
		w.Availability += delta
	case ComponentContract:
		w.Contract += delta
	case ComponentModality:
		w.Modality += delta
	case ComponentMotivations:
		w.Motivations += delta
	case ComponentListening:
		w.Listening += delta
	case ComponentSector:
		w.Sector += delta
	case ComponentProgression:
		w.Progression += delta
	case ComponentStatus:
		w.Status += delta
	}
}

// Normalize scales the vector so it sums to exactly 1.0. A zero vector is
// returned unchanged.
func (w ComponentWeights) Normalize() ComponentWeights {
	sum := w.Sum()
	if sum == 0 {
		return w
	}
	return ComponentWeights{
		Semantic:     w.Semantic / sum,
		Salary:       w.Salary / sum,
		Experience:   w.Experience / sum,
		Location:     w.Location / sum,
		Availability: w.Availability / sum,
		Contract:     w.Contract / sum,
		Modality:     w.Modality / sum,
		Motivations:  w.Motivations / sum,
		Listening:    w.Listening / sum,
		Sector:       w.Sector / sum,
		Progression:  w.Progression / sum,
		Status:       w.Status / sum,
	}
}

// Validate checks the sum and per-entry range invariants. A failing vector is
// reported as a ConfigurationError and is never silently corrected.
func (w ComponentWeights) Validate() error {
	sum := w.Sum()
	if math.Abs(sum-1.0) > WeightSumTolerance {
		return &ConfigurationError{
			Field:   "weights",
			Message: fmt.Sprintf("component weights must sum to 1.0, got %.3f", sum),
		}
	}
	for name, v := range w.AsMap() {
		if v < 0 || v > MaxComponentWeight {
			return &ConfigurationError{
				Field:   "weights." + name,
				Message: fmt.Sprintf("component weight %.3f outside [0, %.2f]", v, MaxComponentWeight),
			}
		}
	}
	return nil
}
