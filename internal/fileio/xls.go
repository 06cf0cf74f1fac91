// .xls reader: the table width is fixed up front and every cell up to it is read.
package fileio

import (
	"bytes"
	"errors"
	"io"

	xls "github.com/extrame/xls"
)

// sheetRow returns nil for a row index the sheet holds no record for. The xls
// package dereferences the missing row instead of returning nil.
func sheetRow(sheet *xls.WorkSheet, i int) (r *xls.Row) {
	defer func() {
		if recover() != nil {
			r = nil
		}
	}()
	return sheet.Row(i)
}

// computeMaxCols scans a bounded number of columns per row for the widest non-empty one.
func computeMaxCols(sheet *xls.WorkSheet) int {
	const scanMax = 512
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheetRow(sheet, i)
		if r == nil {
			continue
		}
		for j := maxCols; j < scanMax; j++ {
			if normalizeCell(r.Col(j)) != "" {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func readXLS(r io.Reader, headerRow int) (Table, error) {
	if headerRow <= 0 {
		return Table{}, errors.New("headerRow must be 1-based and >= 1")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return Table{}, err
	}

	// legacy exports are usually cp1252, sometimes UTF-8
	var wb *xls.WorkBook
	var lastErr error
	for _, ch := range []string{"windows-1252", "utf-8", "windows-1251"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return Table{}, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return Table{}, nil
	}

	maxCols := computeMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = normalizeCell(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}

	h := pickHeader(rows, headerRow)
	return toTable(rows, h, headerRow), nil
}
