package service

import (
	"sort"

	"catalog-recon/internal/reconcile/model"
)

// ManufacturerCodes maps resolved manufacturer names to catalog codes for the
// retrieval side. With sisters set, codes of every manufacturer sharing a
// non-empty parent with a resolved one are added too. The first code listed for
// a name is the one reported per row.
func ManufacturerCodes(resolved []string, refs []model.ReferenceManufacturer, sisters bool) (byName map[string]string, codes []string) {
	wanted := make(map[string]struct{}, len(resolved))
	for _, n := range resolved {
		wanted[n] = struct{}{}
	}

	byName = make(map[string]string, len(resolved))
	seen := make(map[string]struct{})
	parents := make(map[string]struct{})
	addCode := func(code string) {
		if code == "" {
			return
		}
		if _, ok := seen[code]; !ok {
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}

	for _, r := range refs {
		if _, ok := wanted[r.Name]; !ok {
			continue
		}
		if _, ok := byName[r.Name]; !ok && r.Code != "" {
			byName[r.Name] = r.Code
		}
		addCode(r.Code)
		if r.ParentName != "" {
			parents[r.ParentName] = struct{}{}
		}
	}

	if sisters && len(parents) > 0 {
		for _, r := range refs {
			if _, ok := parents[r.ParentName]; ok && r.ParentName != "" {
				addCode(r.Code)
			}
		}
	}

	sort.Strings(codes)
	return byName, codes
}
