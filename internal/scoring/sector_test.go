package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/hierarchy"
	"github.com/jonathan/match-engine/internal/types"
)

func TestScoreSector(t *testing.T) {
	tests := []struct {
		name      string
		candidate types.FunctionalDomain
		job       types.FunctionalDomain
		wantScore float64
	}{
		{"same domain", types.DomainFinance, types.DomainFinance, 1.0},
		{"general candidate", types.DomainGeneral, types.DomainSales, 0.6},
		{"general job", types.DomainIT, types.DomainGeneral, 0.6},
		{"related via matrix", types.DomainEngineering, types.DomainIT, 0.7},
		{"unrelated baseline", types.DomainHealthcare, types.DomainSales, hierarchy.SectorBaseline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := alignedInput()
			in.Hierarchy.CandidateDomain = tt.candidate
			in.Hierarchy.JobDomain = tt.job

			result := ScoreSector(in)
			require.False(t, result.IsFallback())
			assert.InDelta(t, tt.wantScore, result.Score, 1e-9)
		})
	}
}

func TestScoreSector_UnknownDomain_FallsBack(t *testing.T) {
	in := alignedInput()
	in.Hierarchy.CandidateDomain = ""

	result := ScoreSector(in)
	assert.True(t, result.IsFallback())
	assert.Equal(t, NeutralScore(types.ComponentSector), result.Score)
}

func TestScoreSector_CriticalGapCapsScore(t *testing.T) {
	in := alignedInput()
	in.Hierarchy = criticalAssessment()

	result := ScoreSector(in)
	require.False(t, result.IsFallback())
	assert.InDelta(t, 0.3, result.Score, 1e-9)
}
