package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-recon/internal/fileio"
	"catalog-recon/internal/reconcile/model"
)

func table(headers []string, rows ...[]string) fileio.Table {
	t := fileio.Table{Headers: headers}
	for i, r := range rows {
		cells := make(map[string]string, len(headers))
		for c, h := range headers {
			if c < len(r) {
				cells[h] = r[c]
			}
		}
		t.Rows = append(t.Rows, fileio.Row{Line: i + 2, Cells: cells})
	}
	return t
}

func TestResolveColumn(t *testing.T) {
	headers := []string{"customer mfg name", "Customer-Model-Name", "Customer_Part_Name"}

	h, ok := resolveColumn(headers, ColCustomerMfg)
	assert.True(t, ok)
	assert.Equal(t, "customer mfg name", h)

	h, ok = resolveColumn(headers, ColCustomerModel)
	assert.True(t, ok)
	assert.Equal(t, "Customer-Model-Name", h)

	// second alternative
	h, ok = resolveColumn(headers, ColCustomerPart)
	assert.True(t, ok)
	assert.Equal(t, "Customer_Part_Name", h)

	// no guessing on near misses
	_, ok = resolveColumn([]string{"Customer_Mfg"}, ColCustomerMfg)
	assert.False(t, ok)
}

func TestToCustomers(t *testing.T) {
	tbl := table(
		[]string{"Customer_Mfg_Name", "Customer_Model_Name", "Customer_Part_Number"},
		[]string{"Acme", "AC-100", "00123"},
		[]string{"", "X", ""},
	)
	got, err := ToCustomers(tbl)
	require.NoError(t, err)
	assert.Equal(t, []model.CustomerRecord{
		{Line: 2, ManufacturerName: "Acme", ModelName: "AC-100", PartNumber: "00123"},
		{Line: 3, ManufacturerName: "", ModelName: "X", PartNumber: ""},
	}, got)
}

func TestToCustomers_PartFromModel(t *testing.T) {
	tbl := table(
		[]string{"Customer_Mfg_Name", "Customer_Model_Name"},
		[]string{"Acme", "AC-100"},
	)
	got, err := ToCustomers(tbl)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AC-100", got[0].PartNumber)
	assert.True(t, got[0].PartFromModel)
}

func TestToCustomers_MissingColumn(t *testing.T) {
	tbl := table([]string{"Customer_Mfg_Name", "Model"}, []string{"Acme", "AC-100"})
	_, err := ToCustomers(tbl)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMissingColumn)

	var colErr *model.MissingColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, Customers, colErr.Dataset)
	assert.Equal(t, "Customer_Model_Name", colErr.Column)
	assert.Contains(t, err.Error(), "Customer_Model_Name")
	assert.Contains(t, err.Error(), "Model")
}

func TestToManufacturers(t *testing.T) {
	tbl := table(
		[]string{"Name", "Code", "Parent Manufacturer"},
		[]string{"Acme", "ACM", "Holding X"},
		[]string{"", "ZZZ", ""},
		[]string{"Beta", "", ""},
	)
	got, issues, err := ToManufacturers(tbl)
	require.NoError(t, err)
	assert.Equal(t, []model.ReferenceManufacturer{
		{Name: "Acme", Code: "ACM", ParentName: "Holding X"},
		{Name: "Beta"},
	}, got)
	assert.Equal(t, []model.RowIssue{{Dataset: Manufacturers, Line: 3, Message: "empty manufacturer name"}}, issues)
}

func TestToManufacturers_MissingParent(t *testing.T) {
	_, _, err := ToManufacturers(table([]string{"Name", "Code"}))
	var colErr *model.MissingColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "Parent Manufacturer", colErr.Column)
}

func TestToItems(t *testing.T) {
	tbl := table(
		[]string{"primaryId", "manufacturerPartNumber", "manufacturerName"},
		[]string{"PT_CAT_1", "AC100", "Acme"},
		[]string{"", "AC200", "Acme"},
		[]string{"P-2", "", "Acme"},
		[]string{"P-3", "0042", ""},
		[]string{"P-4", "0042", "Acme"},
	)
	got, issues, err := ToItems(tbl)
	require.NoError(t, err)
	assert.Equal(t, []model.ReferenceItem{
		{ReferenceID: "PT_CAT_1", Designation: "AC100", ManufacturerName: "Acme"},
		{ReferenceID: "P-4", Designation: "0042", ManufacturerName: "Acme"},
	}, got)
	assert.Equal(t, []model.RowIssue{
		{Dataset: Items, Line: 3, Message: "empty primaryId"},
		{Dataset: Items, Line: 4, Message: "empty manufacturerPartNumber"},
		{Dataset: Items, Line: 5, Message: "empty manufacturerName"},
	}, issues)
}
