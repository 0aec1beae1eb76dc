// Package location provides the client for the location intelligence
// collaborator. The engine consumes its precomputed compatibility/time/cost
// bundle opaquely; no routing or geocoding happens here.
package location

import (
	"context"
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

// TransportMode identifies one way of commuting between two addresses
type TransportMode string

// Transport modes
const (
	ModeDriving TransportMode = "driving"
	ModeTransit TransportMode = "transit"
	ModeCycling TransportMode = "cycling"
	ModeWalking TransportMode = "walking"
)

// ModeAssessment holds the collaborator's precomputed figures for one mode
type ModeAssessment struct {
	Mode            TransportMode `json:"mode"`
	Compatibility   float64       `json:"compatibility"` // [0,1]
	DurationMinutes float64       `json:"duration_minutes"`
	MonthlyCost     float64       `json:"monthly_cost"`
}

// Bundle holds the per-mode assessments for one candidate/job address pair
type Bundle struct {
	Modes []ModeAssessment `json:"modes"`
}

// Best returns the mode with the highest compatibility, or nil for an empty
// bundle.
func (b *Bundle) Best() *ModeAssessment {
	if b == nil || len(b.Modes) == 0 {
		return nil
	}
	best := &b.Modes[0]
	for i := range b.Modes {
		if b.Modes[i].Compatibility > best.Compatibility {
			best = &b.Modes[i]
		}
	}
	return best
}

// Provider supplies precomputed location intelligence for an address pair
type Provider interface {
	Evaluate(ctx context.Context, from, to types.Location) (*Bundle, error)
}

// StaticProvider serves bundles from an in-memory table, keyed by city pair.
// Useful for tests and offline runs.
type StaticProvider struct {
	bundles map[string]*Bundle
}

// NewStaticProvider creates an empty static provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{bundles: make(map[string]*Bundle)}
}

// Set registers a bundle for a city pair.
func (p *StaticProvider) Set(fromCity, toCity string, bundle *Bundle) {
	p.bundles[pairKey(fromCity, toCity)] = bundle
}

// Evaluate returns the registered bundle for the pair, or nil when unknown.
func (p *StaticProvider) Evaluate(_ context.Context, from, to types.Location) (*Bundle, error) {
	return p.bundles[pairKey(from.City, to.City)], nil
}

func pairKey(from, to string) string {
	return strings.ToLower(from) + "|" + strings.ToLower(to)
}
