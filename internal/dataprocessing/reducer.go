package dataprocessing

import (
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
)

// qualityColumn must match the sheet header exactly; the instrument never
// truncates this one.
const qualityColumn = "Quality"

// compoundSubstring identifies the compound column, whose full name varies
// across exports ("Compound", "Compound number (#)", ...).
const compoundSubstring = "compound"

// ReduceTopHits collapses a raw LibRes table to one row per compound: the
// library match with the highest quality score. Hit candidates for one
// compound appear as consecutive rows with the compound cell written only
// on the first, so the compound column is forward-filled before grouping.
// Ties on quality keep the earliest row. The result is ordered by compound
// identifier, numerically when the identifiers are numbers.
func ReduceTopHits(raw *Table) (*Table, error) {
	compoundIdx := -1
	for i, c := range raw.Columns {
		if strings.Contains(strings.ToLower(c), compoundSubstring) {
			compoundIdx = i
			break
		}
	}
	if compoundIdx == -1 {
		return nil, &MissingColumnError{Substring: compoundSubstring, Columns: raw.Columns}
	}

	qualityIdx := raw.ColumnIndex(qualityColumn)
	if qualityIdx == -1 {
		return nil, &KeyLookupError{Key: qualityColumn, Columns: raw.Columns}
	}

	// Drop all-empty rows, then forward-fill the compound column. Rows whose
	// compound is still empty afterwards are header or footer artifacts.
	filled := NewTable(raw.Columns)
	lastCompound := ""
	for i := range raw.Rows {
		if isEmptyRow(raw.Rows[i]) {
			continue
		}
		row := make([]string, len(raw.Columns))
		for c := range raw.Columns {
			row[c] = raw.Cell(i, c)
		}
		if strings.TrimSpace(row[compoundIdx]) == "" {
			row[compoundIdx] = lastCompound
		} else {
			lastCompound = row[compoundIdx]
		}
		if strings.TrimSpace(row[compoundIdx]) == "" {
			continue
		}
		filled.Rows = append(filled.Rows, row)
	}

	// Pick the highest-quality row per compound; strict greater-than keeps
	// the first row on ties.
	best := make(map[string]int)
	var compounds []string
	for i, row := range filled.Rows {
		id := row[compoundIdx]
		current, seen := best[id]
		if !seen {
			best[id] = i
			compounds = append(compounds, id)
			continue
		}
		if parseQuality(row[qualityIdx]) > parseQuality(filled.Rows[current][qualityIdx]) {
			best[id] = i
		}
	}

	sort.Slice(compounds, func(i, j int) bool {
		return compareCompoundIDs(compounds[i], compounds[j])
	})

	top := NewTable(raw.Columns)
	for _, id := range compounds {
		top.Rows = append(top.Rows, filled.Rows[best[id]])
	}

	slog.Debug("reduced to top hits",
		slog.String("compound_column", raw.Columns[compoundIdx]),
		slog.Int("input_rows", len(raw.Rows)),
		slog.Int("compounds", len(top.Rows)))

	return top, nil
}

// parseQuality converts a quality cell to a comparable score. Cells that do
// not parse rank below every parsable score, so a lone malformed candidate
// never wins a group.
func parseQuality(cell string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(cell), ",", ""), 64)
	if err != nil {
		return math.Inf(-1)
	}
	return v
}

// compareCompoundIDs orders identifiers numerically when both sides are
// numbers and lexicographically otherwise.
func compareCompoundIDs(a, b string) bool {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}
