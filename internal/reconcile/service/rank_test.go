package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-recon/internal/reconcile/model"
)

func cand(target string, score int, tier model.Tier) model.Candidate {
	return model.Candidate{SourceKey: "src", TargetKey: target, TargetName: target + "-name", Score: score, Tier: tier}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		cands      []model.Candidate
		wantTarget string
		wantScore  int
		wantTier   model.Tier
	}{
		{
			name:       "exact beats a perfect clean listed first",
			cands:      []model.Candidate{cand("A", 100, model.TierClean), cand("B", 101, model.TierExact)},
			wantTarget: "B", wantScore: 101, wantTier: model.TierExact,
		},
		{
			name: "last exact wins",
			cands: []model.Candidate{
				cand("A", 101, model.TierExact), cand("B", 91, model.TierClean), cand("C", 101, model.TierExact),
			},
			wantTarget: "C", wantScore: 101, wantTier: model.TierExact,
		},
		{
			name:       "highest score",
			cands:      []model.Candidate{cand("A", 75, model.TierSubstring), cand("B", 91, model.TierClean)},
			wantTarget: "B", wantScore: 91, wantTier: model.TierClean,
		},
		{
			name: "tie keeps first seen",
			cands: []model.Candidate{
				cand("A", 80, model.TierClean), cand("B", 90, model.TierClean), cand("C", 90, model.TierPartialForward),
			},
			wantTarget: "B", wantScore: 90, wantTier: model.TierClean,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve("src", tt.cands)
			require.True(t, r.Matched())
			assert.Equal(t, "src", r.SourceKey)
			assert.Equal(t, tt.wantTarget, r.Target())
			assert.Equal(t, tt.wantTarget+"-name", r.Name())
			require.NotNil(t, r.Score)
			assert.Equal(t, tt.wantScore, *r.Score)
			assert.Equal(t, tt.wantTier, r.Tier)
		})
	}
}

func TestResolve_NoCandidates(t *testing.T) {
	r := Resolve("src", nil)
	assert.False(t, r.Matched())
	assert.Nil(t, r.TargetName)
	assert.Nil(t, r.Score)
	assert.Equal(t, model.TierNone, r.Tier)
}

func TestResolve_ResultDoesNotAliasCandidates(t *testing.T) {
	cands := []model.Candidate{cand("A", 90, model.TierClean)}
	r := Resolve("src", cands)
	cands[0].TargetKey = "changed"
	assert.Equal(t, "A", r.Target())
}

func TestFirst(t *testing.T) {
	r := First("src", []model.Candidate{cand("A", 100, model.TierPartial), cand("B", 100, model.TierClean)})
	assert.Equal(t, "A", r.Target())
	assert.Equal(t, model.TierPartial, r.Tier)
	assert.False(t, First("src", nil).Matched())
}
