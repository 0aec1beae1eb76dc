// Package scoring implements the twelve component scorers of the matching
// engine. Every scorer is a pure function over an immutable snapshot of the
// candidate/job pair: no I/O, no shared state, and a documented neutral
// fallback instead of an error on missing input.
package scoring

import (
	"github.com/jonathan/match-engine/internal/hierarchy"
	"github.com/jonathan/match-engine/internal/location"
	"github.com/jonathan/match-engine/internal/types"
)

// Kind distinguishes a computed score from a substituted neutral default
type Kind string

// Result kinds
const (
	KindScored   Kind = "scored"
	KindFallback Kind = "fallback"
)

// Result represents one component's outcome. The aggregator pattern-matches
// on Kind instead of inspecting score values.
type Result struct {
	Name       string
	Kind       Kind
	Score      float64
	Confidence float64
	Details    map[string]any
	Reason     string // populated for fallbacks
}

// IsFallback reports whether the result is a substituted neutral default.
func (r Result) IsFallback() bool {
	return r.Kind == KindFallback
}

// Input is the immutable snapshot every scorer receives. The location bundle
// is precomputed by the collaborator and may be nil.
type Input struct {
	Candidate *types.CandidateProfile
	Job       *types.JobProfile
	Hierarchy hierarchy.Assessment
	Location  *location.Bundle
}

// Func is the generic component scorer contract.
type Func func(in Input) Result

// Neutral fallback defaults per component. 0.5 marks a genuinely unknown
// dimension; 0.6-0.7 marks optional dimensions where absence is weak signal.
var neutralDefaults = map[string]float64{
	types.ComponentSemantic:     0.5,
	types.ComponentSalary:       0.5,
	types.ComponentExperience:   0.5,
	types.ComponentLocation:     0.6,
	types.ComponentAvailability: 0.7,
	types.ComponentContract:     0.6,
	types.ComponentModality:     0.6,
	types.ComponentMotivations:  0.6,
	types.ComponentListening:    0.6,
	types.ComponentSector:       0.5,
	types.ComponentProgression:  0.6,
	types.ComponentStatus:       0.7,
}

// NeutralScore returns the documented fallback default for the component.
func NeutralScore(name string) float64 {
	if v, ok := neutralDefaults[name]; ok {
		return v
	}
	return 0.5
}

// Registry returns the twelve scorers keyed by component name.
func Registry() map[string]Func {
	return map[string]Func{
		types.ComponentSemantic:     ScoreSemantic,
		types.ComponentSalary:       ScoreSalary,
		types.ComponentExperience:   ScoreExperience,
		types.ComponentLocation:     ScoreLocation,
		types.ComponentAvailability: ScoreAvailability,
		types.ComponentContract:     ScoreContract,
		types.ComponentModality:     ScoreModality,
		types.ComponentMotivations:  ScoreMotivations,
		types.ComponentListening:    ScoreListening,
		types.ComponentSector:       ScoreSector,
		types.ComponentProgression:  ScoreProgression,
		types.ComponentStatus:       ScoreStatus,
	}
}

// scored builds a computed result, clamping the score into [0,1].
func scored(name string, score, confidence float64, details map[string]any) Result {
	return Result{
		Name:       name,
		Kind:       KindScored,
		Score:      clamp(score),
		Confidence: clamp(confidence),
		Details:    details,
	}
}

// Fallback builds a neutral-default result for the component.
func Fallback(name, reason string) Result {
	return Result{
		Name:       name,
		Kind:       KindFallback,
		Score:      NeutralScore(name),
		Confidence: 0.3,
		Reason:     reason,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// capped applies the hierarchy ceiling to a raw score. Used by the semantic,
// salary, experience, and sector scorers.
func capped(raw float64, assessment hierarchy.Assessment) float64 {
	ceiling := assessment.Ceiling()
	if raw > ceiling {
		return ceiling
	}
	return raw
}
