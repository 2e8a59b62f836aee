package dataprocessing

// columnRenames maps the header variants observed across instrument exports,
// including the truncated forms some export versions produce, to the
// canonical output schema. Configuration data, not logic: extend it here
// when a new export variant shows up.
var columnRenames = map[string]string{
	// both spellings of the leading compound column
	"Compound number (#)": "compound_number",
	"Compound":            "compound_number",

	"RT (min)":        "rt_min",
	"Scan number (#)": "scan_number",
	"Scan numb":       "scan_number",
	"Area (Ab*s)":     "area_abs",

	"Baseline Heigth (Ab)": "baseline_height",
	"Baseline H":           "baseline_height",
	"Absolute Heigth (Ab)": "absolute_height",
	"Absolute H":           "absolute_height",

	"Peak Width 50% (min)": "peak_width_50",
	"Peak Widt":            "peak_width_50",

	"Hit Number":       "hit_number",
	"Hit Numbe":        "hit_number",
	"Hit Name":         "hit_name",
	"Quality":          "quality",
	"Mol Weight (amu)": "mol_weight_amu",
	"CAS Number":       "cas_number",
	"Library":          "library",
	"Entry Number":     "entry_number",
	"Entry Numb":       "entry_number",
}

// NormalizeColumns renames known header variants to the canonical
// snake_case schema. Unknown columns pass through unchanged; when two
// source columns map to the same canonical name the earlier column keeps
// it and the later one passes through unrenamed (first match wins).
func NormalizeColumns(t *Table) *Table {
	out := &Table{Columns: make([]string, len(t.Columns)), Rows: t.Rows}
	taken := make(map[string]bool, len(t.Columns))
	for i, c := range t.Columns {
		renamed, ok := columnRenames[c]
		if ok && !taken[renamed] {
			out.Columns[i] = renamed
			taken[renamed] = true
		} else {
			out.Columns[i] = c
		}
	}
	return out
}
