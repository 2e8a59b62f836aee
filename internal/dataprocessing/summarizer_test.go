package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanedTable(meta SampleMetadata, compounds ...string) *Table {
	t := NewTable(append([]string{"compound_number", "quality"}, metadataColumns...))
	for _, c := range compounds {
		t.AppendRow(append([]string{c, "90"}, meta.values()...))
	}
	return t
}

func TestCombinePreservesAllRows(t *testing.T) {
	a := cleanedTable(ParseFilenameMetadata("Healthy_24h_char-1.xlsx"), "1", "2")
	b := cleanedTable(ParseFilenameMetadata("Infested_24h_char-2.xlsx"), "1", "3", "4")

	combined := Combine([]*Table{a, b})

	require.Len(t, combined.Rows, 5)
	assert.Equal(t, a.Columns, combined.Columns)

	src := combined.ColumnIndex("source_file")
	assert.Equal(t, "Healthy_24h_char-1.xlsx", combined.Cell(0, src))
	assert.Equal(t, "Infested_24h_char-2.xlsx", combined.Cell(2, src))
}

func TestCombineUnionsDisjointColumns(t *testing.T) {
	a := NewTable([]string{"compound_number", "quality"})
	a.AppendRow([]string{"1", "90"})

	b := NewTable([]string{"compound_number", "cas_number"})
	b.AppendRow([]string{"2", "000127-91-3"})

	combined := Combine([]*Table{a, b})

	assert.Equal(t, []string{"compound_number", "quality", "cas_number"}, combined.Columns)
	assert.Equal(t, []string{"1", "90", ""}, combined.Rows[0])
	assert.Equal(t, []string{"2", "", "000127-91-3"}, combined.Rows[1])
}

func TestCombineSkipsNilTables(t *testing.T) {
	a := cleanedTable(ParseFilenameMetadata("Healthy_24h_char-1.xlsx"), "1")
	combined := Combine([]*Table{nil, a, nil})
	assert.Len(t, combined.Rows, 1)
}

func TestSummarize(t *testing.T) {
	tables := []*Table{
		cleanedTable(ParseFilenameMetadata("Healthy_24h_char-1.xlsx"), "1", "2"),
		cleanedTable(ParseFilenameMetadata("Healthy_24h_char-2.xlsx"), "1"),
		cleanedTable(ParseFilenameMetadata("Infested_72h_dvb-1.xlsx"), "1", "2", "3"),
	}

	summary := Summarize(Combine(tables))

	require.Len(t, summary, 2)
	assert.Equal(t, GroupCount{Timepoint: "24h", Group: "healthy", Adsorbent: "char", Compounds: 3}, summary[0])
	assert.Equal(t, GroupCount{Timepoint: "72h", Group: "infested", Adsorbent: "dvb", Compounds: 3}, summary[1])
}

func TestSummarizeWithoutMetadataColumns(t *testing.T) {
	combined := NewTable([]string{"compound_number"})
	combined.AppendRow([]string{"1"})
	combined.AppendRow([]string{"2"})

	summary := Summarize(combined)
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].Compounds)
	assert.Empty(t, summary[0].Timepoint)
}
