package service

import "catalog-recon/internal/reconcile/model"

// Resolve picks the winner among the candidates of one source key.
// An EXACT candidate always wins; with several, the last one listed is kept.
// Otherwise the highest score wins and the first one seen wins a tie.
// No candidates yields an unmatched result.
func Resolve(sourceKey string, cands []model.Candidate) model.Result {
	if len(cands) == 0 {
		return model.Result{SourceKey: sourceKey}
	}

	exact := -1
	for i, c := range cands {
		if c.Tier == model.TierExact {
			exact = i
		}
	}
	if exact >= 0 {
		cands = cands[exact : exact+1]
	}

	best := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].Score > cands[best].Score {
			best = i
		}
	}
	return resultOf(sourceKey, cands[best])
}

// First keeps the first accepted candidate, for stages that do not rank.
func First(sourceKey string, cands []model.Candidate) model.Result {
	if len(cands) == 0 {
		return model.Result{SourceKey: sourceKey}
	}
	return resultOf(sourceKey, cands[0])
}

func resultOf(sourceKey string, c model.Candidate) model.Result {
	target, name, score := c.TargetKey, c.TargetName, c.Score
	return model.Result{
		SourceKey:  sourceKey,
		TargetKey:  &target,
		TargetName: &name,
		Score:      &score,
		Tier:       c.Tier,
	}
}
