package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func TestBundle_Best(t *testing.T) {
	var nilBundle *Bundle
	assert.Nil(t, nilBundle.Best())
	assert.Nil(t, (&Bundle{}).Best())

	bundle := &Bundle{Modes: []ModeAssessment{
		{Mode: ModeDriving, Compatibility: 0.5},
		{Mode: ModeTransit, Compatibility: 0.9},
		{Mode: ModeCycling, Compatibility: 0.7},
	}}
	best := bundle.Best()
	require.NotNil(t, best)
	assert.Equal(t, ModeTransit, best.Mode)
	assert.Equal(t, 0.9, best.Compatibility)
}

func TestStaticProvider(t *testing.T) {
	provider := NewStaticProvider()
	provider.Set("Lyon", "Paris", &Bundle{Modes: []ModeAssessment{
		{Mode: ModeTransit, Compatibility: 0.8},
	}})

	bundle, err := provider.Evaluate(context.Background(),
		types.Location{City: "lyon"}, types.Location{City: "PARIS"})
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, 0.8, bundle.Best().Compatibility)

	unknown, err := provider.Evaluate(context.Background(),
		types.Location{City: "Nice"}, types.Location{City: "Paris"})
	require.NoError(t, err)
	assert.Nil(t, unknown)
}
