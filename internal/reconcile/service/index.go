package service

import "catalog-recon/internal/reconcile/model"

// index over the reference items, scoped by exact manufacturer name
type Index struct {
	models  map[string][]model.ReferenceItem        // manufacturer -> models, catalog order
	parts   map[model.PairKey][]model.ReferenceItem // (manufacturer, generic key) -> parts
	nModels int
	nParts  int
}

func buildIndex(items []model.ReferenceItem, tag string) *Index {
	idx := &Index{
		models: make(map[string][]model.ReferenceItem),
		parts:  make(map[model.PairKey][]model.ReferenceItem),
	}
	for _, it := range items {
		if it.IsModel(tag) {
			idx.models[it.ManufacturerName] = append(idx.models[it.ManufacturerName], it)
			idx.nModels++
			continue
		}
		key := GenericKey(it.Designation)
		if key == "" {
			continue
		}
		pk := model.PairKey{Manufacturer: it.ManufacturerName, Value: key}
		idx.parts[pk] = append(idx.parts[pk], it)
		idx.nParts++
	}
	return idx
}

func (idx *Index) modelsFor(manufacturer string) []model.ReferenceItem {
	return idx.models[manufacturer]
}

func (idx *Index) partsFor(manufacturer, partKey string) []model.ReferenceItem {
	return idx.parts[model.PairKey{Manufacturer: manufacturer, Value: partKey}]
}
