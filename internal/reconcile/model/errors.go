package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumn is matched by every *MissingColumnError.
	ErrMissingColumn = errors.New("missing column")

	// ErrUnsupportedFile is returned for input files with an unknown extension.
	ErrUnsupportedFile = errors.New("unsupported file")
)

// MissingColumnError is fatal for the run: the dataset lacks a required column.
type MissingColumnError struct {
	Dataset   string
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("%s: required column %q not found (no header row)", e.Dataset, e.Column)
	}
	return fmt.Sprintf("%s: required column %q not found (have: %s)", e.Dataset, e.Column, strings.Join(e.Available, ", "))
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }

func NewMissingColumnError(dataset, column string, available []string) *MissingColumnError {
	return &MissingColumnError{Dataset: dataset, Column: column, Available: available}
}
