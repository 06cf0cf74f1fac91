package dataset

import (
	"errors"
	"fmt"
	"io"

	"catalog-recon/internal/fileio"
	"catalog-recon/internal/reconcile/model"
	"catalog-recon/internal/reconcile/service"
)

// Source is one uploaded or local file.
type Source struct {
	Filename  string
	Reader    io.Reader
	HeaderRow int // 1-based, 0 means 1
}

type Sources struct {
	Customers     Source
	Manufacturers Source
	Items         Source
}

// ReadError wraps a failure to parse one of the input files.
type ReadError struct {
	Dataset string
	Err     error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Dataset, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// Load parses the three datasets and converts them into pipeline input.
// Row issues from the reference tables are returned alongside.
func Load(src Sources) (service.Input, []model.RowIssue, error) {
	var in service.Input

	ct, err := read(Customers, src.Customers)
	if err != nil {
		return in, nil, err
	}
	mt, err := read(Manufacturers, src.Manufacturers)
	if err != nil {
		return in, nil, err
	}
	it, err := read(Items, src.Items)
	if err != nil {
		return in, nil, err
	}

	if in.Customers, err = ToCustomers(ct); err != nil {
		return in, nil, err
	}
	mfgs, mfgIssues, err := ToManufacturers(mt)
	if err != nil {
		return in, nil, err
	}
	items, itemIssues, err := ToItems(it)
	if err != nil {
		return in, nil, err
	}
	in.Manufacturers, in.Items = mfgs, items
	return in, append(mfgIssues, itemIssues...), nil
}

func read(dataset string, s Source) (fileio.Table, error) {
	if s.Reader == nil {
		return fileio.Table{}, &ReadError{Dataset: dataset, Err: errors.New("no file")}
	}
	hr := s.HeaderRow
	if hr <= 0 {
		hr = 1
	}
	t, err := fileio.ReadTable(s.Reader, s.Filename, hr)
	if err != nil {
		return fileio.Table{}, &ReadError{Dataset: dataset, Err: err}
	}
	return t, nil
}
