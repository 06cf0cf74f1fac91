package service

import (
	"context"

	"catalog-recon/internal/reconcile/model"
)

// PartCandidates returns the reference parts whose generic key equals the customer's.
// Part matching is binary: there is no partial credit.
func PartCandidates(customerPart string, refs []model.ReferenceItem) []model.Candidate {
	key := GenericKey(customerPart)
	if key == "" {
		return nil
	}
	var out []model.Candidate
	for _, ref := range refs {
		if GenericKey(ref.Designation) != key {
			continue
		}
		out = append(out, model.Candidate{
			SourceKey:  customerPart,
			TargetKey:  ref.ReferenceID,
			TargetName: ref.Designation,
			Score:      model.ExactScore,
			Tier:       model.TierExact,
		})
	}
	return out
}

// MatchParts resolves every (manufacturer, customer part) key. When several reference
// parts normalize to the same key the first one in catalog order wins.
func MatchParts(ctx context.Context, keys []model.PairKey, idx *Index, workers int) (map[model.PairKey]model.Result, error) {
	results := make([]model.Result, len(keys))
	err := forEachKey(ctx, workers, len(keys), func(i int) {
		k := keys[i]
		refs := idx.partsFor(k.Manufacturer, GenericKey(k.Value))
		results[i] = First(k.String(), PartCandidates(k.Value, refs))
	})
	if err != nil {
		return nil, err
	}
	return collect(keys, results), nil
}
