package dataprocessing

import (
	"strconv"
	"strings"
)

// Table is an ordered set of named columns with string cells. The empty
// string is the null cell: instrument exports arrive as text and excelize
// reports missing cells as "". Table serves every stage of the pipeline,
// from the raw LibRes sheet to the final cleaned output.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates a table with the given columns and no rows.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// ColumnIndex returns the index of the column with the exact given name,
// or -1 when no such column exists.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell at (row, col), or "" when the row is shorter than
// the declared column set.
func (t *Table) Cell(row, col int) string {
	if col < len(t.Rows[row]) {
		return t.Rows[row][col]
	}
	return ""
}

// AppendRow adds a row, padding it with null cells up to the column count.
func (t *Table) AppendRow(row []string) {
	for len(row) < len(t.Columns) {
		row = append(row, "")
	}
	t.Rows = append(t.Rows, row)
}

// isEmptyRow reports whether every cell of the row is null or whitespace.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// SampleMetadata holds the sample attributes recoverable from a file name.
// String fields are "" and Sample is nil when the corresponding signal is
// absent from the name; that is not an error.
type SampleMetadata struct {
	Group      string `json:"group,omitempty"`
	Timepoint  string `json:"timepoint,omitempty"`
	Adsorbent  string `json:"adsorbent,omitempty"`
	Sample     *int   `json:"sample,omitempty"`
	SourceFile string `json:"source_file"`
}

// metadataColumns is the order in which metadata fields are appended to a
// cleaned table. Kept in lockstep with SampleMetadata.values.
var metadataColumns = []string{"group", "timepoint", "adsorbent", "sample", "source_file"}

// values returns the metadata fields as cells, in metadataColumns order.
func (m SampleMetadata) values() []string {
	sample := ""
	if m.Sample != nil {
		sample = strconv.Itoa(*m.Sample)
	}
	return []string{m.Group, m.Timepoint, m.Adsorbent, sample, m.SourceFile}
}
