package fileio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const sniffBytes = 4096

// single-byte charsets chardet reports on spreadsheet exports; anything else is read as UTF-8
var decoders = map[string]encoding.Encoding{
	"windows-1251": charmap.Windows1251,
	"cp1251":       charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

// utf8Reader sniffs the head of br and wraps it in a decoder when the text is
// not UTF-8.
func utf8Reader(br *bufio.Reader) io.Reader {
	head, _ := br.Peek(sniffBytes)
	if len(head) == 0 {
		return br
	}
	det, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil || det == nil {
		return br
	}
	if enc, ok := decoders[strings.ToLower(det.Charset)]; ok {
		return transform.NewReader(br, enc.NewDecoder())
	}
	return br
}

// readCSV reads every record as text, so "00123" stays "00123". Ragged rows and
// stray quotes are tolerated.
func readCSV(r io.Reader, headerRow int) (Table, error) {
	cr := csv.NewReader(utf8Reader(bufio.NewReaderSize(r, sniffBytes)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, rec)
	}
	return toTable(rows, pickHeader(rows, headerRow), headerRow), nil
}
