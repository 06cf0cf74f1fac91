package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"catalog-recon/internal/reconcile/model"
	"catalog-recon/internal/utils"
)

// Table is a parsed sheet: the header row and the data rows keyed by header.
type Table struct {
	Headers []string
	Rows    []Row
}

type Row struct {
	Line  int               // 1-based line in the source file
	Cells map[string]string // header -> cell text
}

// ReadTable picks a parser by extension. headerRow is 1-based.
func ReadTable(r io.Reader, filename string, headerRow int) (Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return Table{}, fmt.Errorf("%w: %s", model.ErrUnsupportedFile, filename)
	}
}

func normalizeCell(s string) string { return utils.CleanCell(s) }

// pickHeader takes the header row and fills blanks with "Column N".
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		return nil
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = normalizeCell(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// toTable maps the rows under the header, skipping rows that are entirely empty.
func toTable(rows [][]string, headers []string, headerRow int) Table {
	t := Table{Headers: headers}
	start := max(headerRow, 1) // first row after the headers
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = normalizeCell(rec[c])
			}
			if v != "" {
				empty = false
			}
			m[headers[c]] = v
		}
		if !empty {
			t.Rows = append(t.Rows, Row{Line: r + 1, Cells: m})
		}
	}
	return t
}
