package dataprocessing

import (
	"sort"
)

// GroupCount is one row of the batch summary: how many compounds were
// retained for a (timepoint, group, adsorbent) combination.
type GroupCount struct {
	Timepoint string `json:"timepoint"`
	Group     string `json:"group"`
	Adsorbent string `json:"adsorbent"`
	Compounds int    `json:"n_compounds"`
}

// Combine concatenates cleaned per-file tables row-wise. The column set is
// the union of all inputs in first-seen order; cells for columns a file did
// not produce stay null. The normalizer makes the schemas identical in
// practice, so the union only matters when export variants disagree.
func Combine(tables []*Table) *Table {
	combined := &Table{}
	index := make(map[string]int)

	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.Columns {
			if _, ok := index[c]; !ok {
				index[c] = len(combined.Columns)
				combined.Columns = append(combined.Columns, c)
			}
		}
	}

	for _, t := range tables {
		if t == nil {
			continue
		}
		for i := range t.Rows {
			row := make([]string, len(combined.Columns))
			for c, name := range t.Columns {
				row[index[name]] = t.Cell(i, c)
			}
			combined.Rows = append(combined.Rows, row)
		}
	}

	return combined
}

// SummaryColumns is the header of the summary table written next to the
// combined CSV.
var SummaryColumns = []string{"timepoint", "group", "adsorbent", "n_compounds"}

// Summarize counts combined rows per (timepoint, group, adsorbent), sorted
// ascending on the triple. Files whose names carried no metadata land in a
// bucket with empty keys rather than being dropped.
func Summarize(combined *Table) []GroupCount {
	timepointIdx := combined.ColumnIndex("timepoint")
	groupIdx := combined.ColumnIndex("group")
	adsorbentIdx := combined.ColumnIndex("adsorbent")

	counts := make(map[[3]string]int)
	for i := range combined.Rows {
		key := [3]string{
			cellOrEmpty(combined, i, timepointIdx),
			cellOrEmpty(combined, i, groupIdx),
			cellOrEmpty(combined, i, adsorbentIdx),
		}
		counts[key]++
	}

	summary := make([]GroupCount, 0, len(counts))
	for key, n := range counts {
		summary = append(summary, GroupCount{
			Timepoint: key[0],
			Group:     key[1],
			Adsorbent: key[2],
			Compounds: n,
		})
	}

	sort.Slice(summary, func(i, j int) bool {
		a, b := summary[i], summary[j]
		if a.Timepoint != b.Timepoint {
			return a.Timepoint < b.Timepoint
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Adsorbent < b.Adsorbent
	})

	return summary
}

func cellOrEmpty(t *Table, row, col int) string {
	if col < 0 {
		return ""
	}
	return t.Cell(row, col)
}
