// Package dataset turns parsed tables into typed pipeline records.
// A missing required column fails the whole dataset; a bad row is skipped and flagged.
package dataset

import (
	"catalog-recon/internal/fileio"
	"catalog-recon/internal/reconcile/model"
)

const (
	Customers     = "customers"
	Manufacturers = "manufacturers"
	Items         = "items"
)

// columns resolves every required column or reports the first one missing.
func columns(t fileio.Table, dataset string, wants ...string) ([]string, error) {
	out := make([]string, len(wants))
	for i, w := range wants {
		h, ok := resolveColumn(t.Headers, w)
		if !ok {
			return nil, model.NewMissingColumnError(dataset, primary(w), t.Headers)
		}
		out[i] = h
	}
	return out, nil
}

// ToCustomers needs Customer_Mfg_Name and Customer_Model_Name. Customer_Part_Number
// is optional; without it the model column doubles as the part source and every
// record is marked PartFromModel.
func ToCustomers(t fileio.Table) ([]model.CustomerRecord, error) {
	cols, err := columns(t, Customers, ColCustomerMfg, ColCustomerModel)
	if err != nil {
		return nil, err
	}
	mfgCol, modelCol := cols[0], cols[1]
	partCol, hasPart := resolveColumn(t.Headers, ColCustomerPart)

	out := make([]model.CustomerRecord, 0, len(t.Rows))
	for _, r := range t.Rows {
		c := model.CustomerRecord{
			Line:             r.Line,
			ManufacturerName: r.Cells[mfgCol],
			ModelName:        r.Cells[modelCol],
		}
		if hasPart {
			c.PartNumber = r.Cells[partCol]
		} else {
			c.PartNumber = c.ModelName
			c.PartFromModel = true
		}
		out = append(out, c)
	}
	return out, nil
}

// ToManufacturers reads Name, Code and Parent Manufacturer. Rows without a name are flagged.
func ToManufacturers(t fileio.Table) ([]model.ReferenceManufacturer, []model.RowIssue, error) {
	cols, err := columns(t, Manufacturers, ColMfgName, ColMfgCode, ColMfgParent)
	if err != nil {
		return nil, nil, err
	}
	var (
		out    = make([]model.ReferenceManufacturer, 0, len(t.Rows))
		issues []model.RowIssue
	)
	for _, r := range t.Rows {
		m := model.ReferenceManufacturer{
			Name:       r.Cells[cols[0]],
			Code:       r.Cells[cols[1]],
			ParentName: r.Cells[cols[2]],
		}
		if m.Name == "" {
			issues = append(issues, model.RowIssue{Dataset: Manufacturers, Line: r.Line, Message: "empty manufacturer name"})
			continue
		}
		out = append(out, m)
	}
	return out, issues, nil
}

// ToItems reads primaryId, manufacturerPartNumber and manufacturerName.
// Rows missing any of them are flagged and skipped.
func ToItems(t fileio.Table) ([]model.ReferenceItem, []model.RowIssue, error) {
	cols, err := columns(t, Items, ColItemID, ColItemPart, ColItemMfg)
	if err != nil {
		return nil, nil, err
	}
	var (
		out    = make([]model.ReferenceItem, 0, len(t.Rows))
		issues []model.RowIssue
	)
	for _, r := range t.Rows {
		it := model.ReferenceItem{
			ReferenceID:      r.Cells[cols[0]],
			Designation:      r.Cells[cols[1]],
			ManufacturerName: r.Cells[cols[2]],
		}
		switch {
		case it.ReferenceID == "":
			issues = append(issues, model.RowIssue{Dataset: Items, Line: r.Line, Message: "empty primaryId"})
			continue
		case it.Designation == "":
			issues = append(issues, model.RowIssue{Dataset: Items, Line: r.Line, Message: "empty manufacturerPartNumber"})
			continue
		case it.ManufacturerName == "":
			issues = append(issues, model.RowIssue{Dataset: Items, Line: r.Line, Message: "empty manufacturerName"})
			continue
		}
		out = append(out, it)
	}
	return out, issues, nil
}
