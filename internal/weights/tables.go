// Package weights resolves the twelve-entry component weight vector, applying
// context-dependent deltas on top of a static default table.
package weights

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/match-engine/internal/schemas"
	"github.com/jonathan/match-engine/internal/types"
)

// Table holds the default vector and the adaptive delta lookups. It is loaded
// once at startup and never mutated; hand-tuned values ship as versioned data
// so they can be re-tuned without a release.
type Table struct {
	Version       string                                       `json:"version"`
	Defaults      types.ComponentWeights                       `json:"defaults"`
	ReasonDeltas  map[types.ListeningReason]map[string]float64 `json:"reason_deltas"`
	UrgencyDeltas map[types.Urgency]map[string]float64         `json:"urgency_deltas"`
}

// DefaultTable returns the compiled-in weight table.
func DefaultTable() Table {
	return Table{
		Version: "v1",
		Defaults: types.ComponentWeights{
			Semantic:     0.22,
			Salary:       0.15,
			Experience:   0.13,
			Location:     0.10,
			Availability: 0.06,
			Contract:     0.06,
			Modality:     0.06,
			Motivations:  0.06,
			Listening:    0.05,
			Sector:       0.05,
			Progression:  0.03,
			Status:       0.03,
		},
		ReasonDeltas: map[types.ListeningReason]map[string]float64{
			types.ReasonSalaryBelowMarket: {
				types.ComponentSalary: 0.10,
			},
			types.ReasonGeographicConstraints: {
				types.ComponentLocation: 0.10,
			},
			types.ReasonSkillsMismatch: {
				types.ComponentSemantic: 0.08,
			},
			types.ReasonLackOfGrowth: {
				types.ComponentMotivations: 0.05,
				types.ComponentProgression: 0.04,
			},
			types.ReasonCareerChange: {
				types.ComponentSector: 0.06,
			},
			types.ReasonContractInstability: {
				types.ComponentContract: 0.06,
			},
			types.ReasonWorkload: {
				types.ComponentModality: 0.05,
			},
		},
		UrgencyDeltas: map[types.Urgency]map[string]float64{
			types.UrgencyImmediate: {
				types.ComponentAvailability: 0.06,
				types.ComponentStatus:       0.03,
			},
			types.UrgencyHigh: {
				types.ComponentAvailability: 0.04,
			},
			types.UrgencyLow: {
				types.ComponentAvailability: -0.02,
			},
		},
	}
}

// LoadTable reads a weight table from a JSON file, validating it against the
// weight-table JSON Schema when one can be resolved. The loaded defaults must
// satisfy the weight invariants.
func LoadTable(path string) (Table, error) {
	if schemaPath := schemas.ResolvePath("schemas/weight_table.schema.json"); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			return Table{}, &types.ConfigurationError{
				Field:   "weight_table",
				Message: "schema validation failed",
				Cause:   err,
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, &types.ConfigurationError{
			Field:   "weight_table",
			Message: fmt.Sprintf("failed to read %s", path),
			Cause:   err,
		}
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return Table{}, &types.ConfigurationError{
			Field:   "weight_table",
			Message: "failed to parse weight table JSON",
			Cause:   err,
		}
	}

	if err := table.Defaults.Validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}
