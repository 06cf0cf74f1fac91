package service

import (
	"context"

	"catalog-recon/internal/reconcile/model"
)

const (
	mfgCleanRatio   = 90  // ratio needed for a CLEAN manufacturer match
	mfgPartialScore = 100 // token-set score needed for a PARTIAL match
)

// ManufacturerCandidates lists every reference manufacturer accepted for one
// customer name, in reference order. First letters must agree for CLEAN;
// PARTIAL only needs a full token-set overlap.
func ManufacturerCandidates(customer NamedKey, refs []NamedKey) []model.Candidate {
	if customer.Key == "" {
		return nil
	}
	var out []model.Candidate
	for _, ref := range refs {
		if ref.Key == "" {
			continue
		}
		if r := Ratio(ref.Key, customer.Key); r >= mfgCleanRatio && samePrefix(customer.Key, ref.Key, 1) {
			out = append(out, mfgCandidate(customer, ref, r, model.TierClean))
		} else if ts := TokenSetRatio(ref.Key, customer.Key); ts == mfgPartialScore {
			out = append(out, mfgCandidate(customer, ref, ts, model.TierPartial))
		}
	}
	return out
}

// MatchManufacturers resolves each distinct customer manufacturer to the first
// accepted reference manufacturer. Keys of the returned map are the customer names as given.
func MatchManufacturers(ctx context.Context, customers []string, refs []model.ReferenceManufacturer, workers int) (map[string]model.Result, error) {
	refKeys := make([]NamedKey, len(refs))
	for i, r := range refs {
		refKeys[i] = NormalizeManufacturer(r.Name)
	}

	results := make([]model.Result, len(customers))
	err := forEachKey(ctx, workers, len(customers), func(i int) {
		c := NormalizeManufacturer(customers[i])
		results[i] = First(customers[i], ManufacturerCandidates(c, refKeys))
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string]model.Result, len(customers))
	for i, name := range customers {
		out[name] = results[i]
	}
	return out, nil
}

func mfgCandidate(customer, ref NamedKey, score int, tier model.Tier) model.Candidate {
	return model.Candidate{
		SourceKey:  customer.Original,
		TargetKey:  ref.Original,
		TargetName: ref.Original,
		Score:      score,
		Tier:       tier,
	}
}
