package dataprocessing

import (
	"fmt"
	"strings"
)

// SheetNotFoundError is returned when a workbook has no LibRes sheet.
// It carries the sheet names that were actually present so the caller can
// show the user what the file contained.
type SheetNotFoundError struct {
	Sheet  string
	Sheets []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no %q sheet found in workbook, available sheets: [%s]",
		e.Sheet, strings.Join(e.Sheets, ", "))
}

// MissingColumnError is returned when the LibRes sheet has no column whose
// name contains the expected substring. It carries all column names seen.
type MissingColumnError struct {
	Substring string
	Columns   []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no column containing %q found, available columns: [%s]",
		e.Substring, strings.Join(e.Columns, ", "))
}

// KeyLookupError is returned when a column that must be present under an
// exact name (such as "Quality") is absent or misnamed.
type KeyLookupError struct {
	Key     string
	Columns []string
}

func (e *KeyLookupError) Error() string {
	return fmt.Sprintf("column %q not found, available columns: [%s]",
		e.Key, strings.Join(e.Columns, ", "))
}

// FormatError is returned when a workbook cannot be read at all: corrupt
// content, an unsupported binary format, or a sheet with no header row.
type FormatError struct {
	File    string
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable workbook %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("unreadable workbook %s: %s", e.File, e.Message)
}

// Unwrap returns the underlying reader error.
func (e *FormatError) Unwrap() error {
	return e.Cause
}
