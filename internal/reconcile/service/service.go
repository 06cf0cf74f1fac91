package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"catalog-recon/internal/reconcile/model"
)

// Input holds the materialized datasets for one run. They are read-only for its duration.
type Input struct {
	Customers     []model.CustomerRecord
	Manufacturers []model.ReferenceManufacturer
	Items         []model.ReferenceItem
}

// Run reconciles the customer rows against the reference catalog:
// manufacturers first, then models and parts scoped to the resolved manufacturer,
// then the left join back onto the customer rows. It only fails when ctx is done.
func Run(ctx context.Context, in Input, opt model.Options) (model.Report, error) {
	start := time.Now()
	log := zerolog.Ctx(ctx)
	if opt.CategoryTag == "" {
		opt.CategoryTag = model.DefaultCategoryTag
	}
	if opt.Workers < 1 {
		opt.Workers = 1
	}

	// 1) manufacturers
	mfgNames := distinctManufacturers(in.Customers)
	mfg, err := MatchManufacturers(ctx, mfgNames, in.Manufacturers, opt.Workers)
	if err != nil {
		return model.Report{}, err
	}
	resolved := resolvedNames(mfgNames, mfg)
	log.Debug().
		Int("distinct", len(mfgNames)).
		Int("matched", len(resolved)).
		Msg("manufacturers resolved")

	// 2) models and parts, only under a resolved manufacturer
	idx := buildIndex(in.Items, opt.CategoryTag)
	modelKeys, partKeys := scopedKeys(in.Customers, mfg)

	models, err := MatchModels(ctx, modelKeys, idx, opt.Workers)
	if err != nil {
		return model.Report{}, err
	}
	parts, err := MatchParts(ctx, partKeys, idx, opt.Workers)
	if err != nil {
		return model.Report{}, err
	}
	log.Debug().
		Int("model_keys", len(modelKeys)).
		Int("part_keys", len(partKeys)).
		Int("ref_models", idx.nModels).
		Int("ref_parts", idx.nParts).
		Msg("models and parts resolved")

	// 3) codes handed to the retrieval side
	byName, codes := ManufacturerCodes(resolved, in.Manufacturers, opt.SisterBrands)

	// 4) join, dedupe, sentinels last
	joined := Join(in.Customers, mfg, models, parts)
	if opt.Dedupe {
		joined = Dedupe(joined)
	}
	rows := Render(joined, byName)

	rep := model.Report{
		Rows:              rows,
		ManufacturerCodes: codes,
		Issues:            customerIssues(in.Customers),
		Opts:              opt,
	}
	for _, c := range in.Customers {
		if c.PartFromModel {
			rep.PartFromModel = true
			break
		}
	}
	if rep.PartFromModel {
		log.Warn().Msg("no part column: customer model names are used as part numbers")
	}
	rep.Stats = model.Stats{
		Customers:             len(in.Customers),
		DistinctManufacturers: len(mfgNames),
		ManufacturersMatched:  len(resolved),
		ModelKeys:             len(modelKeys),
		ModelsMatched:         countMatched(models),
		PartKeys:              len(partKeys),
		PartsMatched:          countMatched(parts),
		ReferenceModels:       idx.nModels,
		ReferenceParts:        idx.nParts,
		OutputRows:            len(rows),
	}

	log.Info().
		Int("customers", rep.Stats.Customers).
		Int("rows", rep.Stats.OutputRows).
		Int("models_matched", rep.Stats.ModelsMatched).
		Int("parts_matched", rep.Stats.PartsMatched).
		Dur("elapsed", time.Since(start)).
		Msg("match run done")

	return rep, nil
}

// distinct trimmed customer manufacturer names in first-seen order
func distinctManufacturers(customers []model.CustomerRecord) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range customers {
		n := strings.TrimSpace(c.ManufacturerName)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func resolvedNames(names []string, mfg map[string]model.Result) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, n := range names {
		r := mfg[n]
		if !r.Matched() {
			continue
		}
		if _, ok := seen[r.Target()]; ok {
			continue
		}
		seen[r.Target()] = struct{}{}
		out = append(out, r.Target())
	}
	return out
}

// scopedKeys builds the distinct (resolved manufacturer, string) keys for the
// model and part stages, in first-seen order.
func scopedKeys(customers []model.CustomerRecord, mfg map[string]model.Result) (models, parts []model.PairKey) {
	seenModel := make(map[model.PairKey]struct{})
	seenPart := make(map[model.PairKey]struct{})
	for _, c := range customers {
		r, ok := mfg[strings.TrimSpace(c.ManufacturerName)]
		if !ok || !r.Matched() {
			continue
		}
		if c.ModelName != "" {
			k := model.PairKey{Manufacturer: r.Target(), Value: c.ModelName}
			if _, dup := seenModel[k]; !dup {
				seenModel[k] = struct{}{}
				models = append(models, k)
			}
		}
		if c.PartNumber != "" {
			k := model.PairKey{Manufacturer: r.Target(), Value: c.PartNumber}
			if _, dup := seenPart[k]; !dup {
				seenPart[k] = struct{}{}
				parts = append(parts, k)
			}
		}
	}
	return models, parts
}

func customerIssues(customers []model.CustomerRecord) []model.RowIssue {
	var out []model.RowIssue
	for _, c := range customers {
		if strings.TrimSpace(c.ManufacturerName) == "" {
			out = append(out, model.RowIssue{Dataset: "customers", Line: c.Line, Message: errEmptyManufacturer})
		}
	}
	return out
}

func countMatched(m map[model.PairKey]model.Result) int {
	n := 0
	for _, r := range m {
		if r.Matched() {
			n++
		}
	}
	return n
}
