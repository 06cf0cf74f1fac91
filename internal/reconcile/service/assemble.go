package service

import (
	"sort"
	"strings"

	"catalog-recon/internal/reconcile/model"
)

const errEmptyManufacturer = "empty manufacturer name"

// Joined holds one customer row with its stage results before sentinels are applied.
// A nil pointer means the stage had nothing to say for this row.
type Joined struct {
	Customer model.CustomerRecord
	Mfg      *model.Result
	Model    *model.Result
	Part     *model.Result
}

// Join left-joins the stage results onto the customer rows. Model and part lookups
// are keyed by (resolved manufacturer, customer string) so equal strings under
// different manufacturers never share a result.
func Join(customers []model.CustomerRecord, mfg map[string]model.Result, models, parts map[model.PairKey]model.Result) []Joined {
	out := make([]Joined, 0, len(customers))
	for _, c := range customers {
		j := Joined{Customer: c}
		if r, ok := mfg[strings.TrimSpace(c.ManufacturerName)]; ok {
			j.Mfg = &r
		}
		if j.Mfg != nil && j.Mfg.Matched() {
			name := j.Mfg.Target()
			if r, ok := models[model.PairKey{Manufacturer: name, Value: c.ModelName}]; ok {
				j.Model = &r
			}
			if r, ok := parts[model.PairKey{Manufacturer: name, Value: c.PartNumber}]; ok {
				j.Part = &r
			}
		}
		out = append(out, j)
	}
	return out
}

// Dedupe keeps one row per customer model string, preferring a row with a model
// match. Rows without a model string are all kept. Survivors keep their input order.
func Dedupe(rows []Joined) []Joined {
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return hasModel(rows[order[a]]) && !hasModel(rows[order[b]])
	})

	seen := make(map[string]struct{}, len(rows))
	keep := make([]int, 0, len(rows))
	for _, i := range order {
		m := rows[i].Customer.ModelName
		if m != "" {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
		}
		keep = append(keep, i)
	}
	sort.Ints(keep)

	out := make([]Joined, len(keep))
	for n, i := range keep {
		out[n] = rows[i]
	}
	return out
}

// Render substitutes sentinels for every unresolved slot. It runs after all joins.
func Render(rows []Joined, codes map[string]string) []model.OutputRow {
	out := make([]model.OutputRow, 0, len(rows))
	for _, j := range rows {
		c := j.Customer
		row := model.OutputRow{
			Line:               c.Line,
			CustomerMfgName:    c.ManufacturerName,
			CustomerModelName:  c.ModelName,
			CustomerPartNumber: c.PartNumber,
			MfgName:            model.NoManufacturerMatch,
			MfgQuality:         model.NoQuality(model.NoManufacturerMatch),
			CategoryID:         model.NoModelMatch,
			ModelMatch:         model.NoModelMatch,
			ModelQuality:       model.NoQuality(model.NoModelMatch),
			PartNumber:         model.NoPartMatch,
			MfgPartNumber:      model.NoPartMatch,
		}
		if strings.TrimSpace(c.ManufacturerName) == "" {
			row.Error = errEmptyManufacturer
		}
		if j.Mfg != nil && j.Mfg.Matched() {
			row.MfgName = j.Mfg.Target()
			row.MfgCode = codes[row.MfgName]
			row.MfgQuality = model.QualityFrom(j.Mfg.Score, model.NoManufacturerMatch)
		}
		if j.Model != nil && j.Model.Matched() {
			row.CategoryID = j.Model.Target()
			row.ModelMatch = j.Model.Name()
			row.ModelTier = j.Model.Tier.String()
			row.ModelQuality = model.QualityFrom(j.Model.Score, model.NoModelMatch)
		}
		if j.Part != nil && j.Part.Matched() {
			row.PartNumber = j.Part.Target()
			row.MfgPartNumber = j.Part.Name()
		}
		out = append(out, row)
	}
	return out
}

func hasModel(j Joined) bool { return j.Model != nil && j.Model.Matched() }
