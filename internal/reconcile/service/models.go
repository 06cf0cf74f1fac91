package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"catalog-recon/internal/reconcile/model"
)

const (
	modelCleanRatio     = 84 // raw ratio for CLEAN
	modelPartialRatio   = 95 // token-set ratio for PARTIAL_FWD / PARTIAL_REV
	modelPartialPenalty = 15 // a full token overlap must not look like an exact hit
	modelPartialMinLen  = 3
	modelSubstringScore = 75
	modelSubstringMin   = 2 // reference designation must be longer than this
)

// ModelCandidates scores one customer model string against the reference models of
// its resolved manufacturer. Every tier is checked on its own, so a pair can yield
// several candidates. Order: reference order, then EXACT, CLEAN, PARTIAL_FWD,
// PARTIAL_REV, SUBSTRING.
func ModelCandidates(customerModel string, refs []model.ReferenceItem) []model.Candidate {
	if customerModel == "" {
		return nil
	}
	custKey := ModelKey(customerModel)

	var out []model.Candidate
	add := func(ref model.ReferenceItem, score int, tier model.Tier) {
		out = append(out, model.Candidate{
			SourceKey:  customerModel,
			TargetKey:  ref.ReferenceID,
			TargetName: ref.Designation,
			Score:      score,
			Tier:       tier,
		})
	}

	for _, ref := range refs {
		refName := ref.Designation
		if refName == "" {
			continue
		}
		refKey := ModelKey(refName)
		refLen := utf8.RuneCountInString(refName)
		twoChars := samePrefix(customerModel, refName, 2)

		if custKey != "" && custKey == refKey {
			add(ref, model.ExactScore, model.TierExact)
		}
		if r := Ratio(customerModel, refName); r >= modelCleanRatio && samePrefix(customerModel, refName, 1) && twoChars {
			add(ref, r, model.TierClean)
		}
		if ts := TokenSetRatio(customerModel, refName); ts >= modelPartialRatio && refLen >= modelPartialMinLen && twoChars {
			add(ref, ts-modelPartialPenalty, model.TierPartialForward)
		}
		if ts := TokenSetRatio(refName, customerModel); ts >= modelPartialRatio && refLen >= modelPartialMinLen && twoChars {
			add(ref, ts-modelPartialPenalty, model.TierPartialReverse)
		}
		if refKey != "" && strings.Contains(custKey, refKey) && refLen > modelSubstringMin && samePrefix(custKey, refKey, 1) {
			add(ref, modelSubstringScore, model.TierSubstring)
		}
	}
	return out
}

// MatchModels resolves every (manufacturer, customer model) key against the models
// listed under exactly that manufacturer name.
func MatchModels(ctx context.Context, keys []model.PairKey, idx *Index, workers int) (map[model.PairKey]model.Result, error) {
	results := make([]model.Result, len(keys))
	err := forEachKey(ctx, workers, len(keys), func(i int) {
		k := keys[i]
		results[i] = Resolve(k.String(), ModelCandidates(k.Value, idx.modelsFor(k.Manufacturer)))
	})
	if err != nil {
		return nil, err
	}
	return collect(keys, results), nil
}

func collect(keys []model.PairKey, results []model.Result) map[model.PairKey]model.Result {
	out := make(map[model.PairKey]model.Result, len(keys))
	for i, k := range keys {
		out[k] = results[i]
	}
	return out
}
