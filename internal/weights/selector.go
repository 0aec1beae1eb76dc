package weights

import (
	"fmt"

	"github.com/jonathan/match-engine/internal/types"
)

// Selector resolves the applied weight vector for one matching call. It is
// read-only after construction and safe for concurrent use.
type Selector struct {
	table Table
}

// NewSelector creates a selector backed by the given table.
func NewSelector(table Table) *Selector {
	return &Selector{table: table}
}

// Select returns the weight vector for the given context. With adaptive
// weighting disabled the defaults are returned unchanged; otherwise the
// reason and urgency deltas are applied and the vector renormalized. A vector
// failing the invariants is reported as a ConfigurationError, never clamped.
func (s *Selector) Select(reason types.ListeningReason, urgency types.Urgency, adaptive bool) (types.ComponentWeights, error) {
	if !reason.Valid() {
		return types.ComponentWeights{}, &types.ConfigurationError{
			Field:   "listening_reason",
			Message: fmt.Sprintf("unknown listening reason %q", reason),
		}
	}
	if !urgency.Valid() {
		return types.ComponentWeights{}, &types.ConfigurationError{
			Field:   "urgency",
			Message: fmt.Sprintf("unknown urgency %q", urgency),
		}
	}

	resolved := s.table.Defaults
	if adaptive {
		for component, delta := range s.table.ReasonDeltas[reason] {
			resolved.Apply(component, delta)
		}
		for component, delta := range s.table.UrgencyDeltas[urgency] {
			resolved.Apply(component, delta)
		}
		resolved = resolved.Normalize()
	}

	if err := resolved.Validate(); err != nil {
		return types.ComponentWeights{}, err
	}
	return resolved, nil
}

// Defaults exposes the unmodified default vector.
func (s *Selector) Defaults() types.ComponentWeights {
	return s.table.Defaults
}
