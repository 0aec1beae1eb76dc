package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func TestScoreModality(t *testing.T) {
	tests := []struct {
		name      string
		preferred []types.WorkModality
		offered   types.WorkModality
		wantScore float64
		wantRel   string
	}{
		{
			name:      "exact preference",
			preferred: []types.WorkModality{types.ModalityRemote},
			offered:   types.ModalityRemote,
			wantScore: 1.0,
			wantRel:   "preferred",
		},
		{
			name:      "adjacent modality",
			preferred: []types.WorkModality{types.ModalityRemote},
			offered:   types.ModalityHybrid,
			wantScore: 0.6,
			wantRel:   "adjacent",
		},
		{
			name:      "opposite ends of the scale",
			preferred: []types.WorkModality{types.ModalityRemote},
			offered:   types.ModalityOnSite,
			wantScore: 0.2,
			wantRel:   "adjacent",
		},
		{
			name:      "best of several preferences wins",
			preferred: []types.WorkModality{types.ModalityOnSite, types.ModalityHybrid},
			offered:   types.ModalityRemote,
			wantScore: 0.6,
			wantRel:   "adjacent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := alignedInput()
			in.Candidate.Modalities = tt.preferred
			in.Job.Modality = tt.offered

			result := ScoreModality(in)
			require.False(t, result.IsFallback())
			assert.InDelta(t, tt.wantScore, result.Score, 1e-9)
			assert.Equal(t, tt.wantRel, result.Details["relation"])
		})
	}
}

func TestScoreModality_MissingPreference_FallsBack(t *testing.T) {
	in := alignedInput()
	in.Job.Modality = types.ModalityRemote

	result := ScoreModality(in)
	assert.True(t, result.IsFallback())
	assert.Equal(t, NeutralScore(types.ComponentModality), result.Score)
}
