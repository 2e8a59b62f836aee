package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    []string
	}{
		{
			name:    "full header names",
			columns: []string{"Compound number (#)", "RT (min)", "Scan number (#)", "Area (Ab*s)", "Hit Name", "Quality"},
			want:    []string{"compound_number", "rt_min", "scan_number", "area_abs", "hit_name", "quality"},
		},
		{
			name:    "truncated export variants",
			columns: []string{"Compound", "Scan numb", "Baseline H", "Absolute H", "Peak Widt", "Hit Numbe", "Entry Numb"},
			want:    []string{"compound_number", "scan_number", "baseline_height", "absolute_height", "peak_width_50", "hit_number", "entry_number"},
		},
		{
			name:    "unknown columns pass through",
			columns: []string{"Quality", "Operator Notes"},
			want:    []string{"quality", "Operator Notes"},
		},
		{
			name:    "collision keeps first match",
			columns: []string{"Compound number (#)", "Compound"},
			want:    []string{"compound_number", "Compound"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewTable(tt.columns)
			out := NormalizeColumns(in)
			assert.Equal(t, tt.want, out.Columns)
			// Renaming never touches the data rows.
			assert.Equal(t, in.Rows, out.Rows)
		})
	}
}
