package fileio

import (
	"io"

	excelize "github.com/xuri/excelize/v2"
)

// readXLSX streams the first sheet row by row. Cells come back as their formatted
// text, so a part number stored as text keeps its leading zeros.
func readXLSX(r io.Reader, headerRow int) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	it, err := f.Rows(f.GetSheetName(0))
	if err != nil {
		return Table{}, err
	}
	defer it.Close()

	var rows [][]string
	for it.Next() {
		cols, err := it.Columns()
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, cols)
	}
	if err := it.Error(); err != nil {
		return Table{}, err
	}
	return toTable(rows, pickHeader(rows, headerRow), headerRow), nil
}
