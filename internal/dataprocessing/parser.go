package dataprocessing

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// libResSheet is the instrument-export subsheet holding library-search hits.
const libResSheet = "LibRes"

// headerRowIndex is the 0-based index of the header row inside the LibRes
// sheet. The instrument always writes eight rows of acquisition metadata
// above it (Excel row 9 carries the column names).
const headerRowIndex = 8

// ExtractLibResSheet reads a raw GC-MS workbook and returns the LibRes sheet
// as a table. The file name selects the reader: ".xls" is the legacy BIFF
// format, everything else is read as a modern zip-based workbook. The sheet
// is matched case-insensitively, first match in workbook order wins.
func ExtractLibResSheet(r io.Reader, filename string) (*Table, error) {
	var (
		sheets map[string][][]string
		order  []string
		err    error
	)

	if strings.EqualFold(filepath.Ext(filename), ".xls") {
		sheets, order, err = readLegacyWorkbook(r)
	} else {
		sheets, order, err = readModernWorkbook(r)
	}
	if err != nil {
		return nil, &FormatError{File: filename, Message: "failed to open workbook", Cause: err}
	}

	name := ""
	for _, s := range order {
		if strings.EqualFold(s, libResSheet) {
			name = s
			break
		}
	}
	if name == "" {
		return nil, &SheetNotFoundError{Sheet: libResSheet, Sheets: order}
	}

	rows := sheets[name]
	if len(rows) <= headerRowIndex {
		return nil, &FormatError{File: filename, Message: "LibRes sheet has no header row"}
	}

	header := rows[headerRowIndex]
	table := NewTable(trimTrailingEmpty(header))
	for _, row := range rows[headerRowIndex+1:] {
		if len(row) > len(table.Columns) {
			row = row[:len(table.Columns)]
		}
		table.AppendRow(row)
	}

	slog.Debug("extracted LibRes sheet",
		slog.String("file", filename),
		slog.String("sheet", name),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)))

	return table, nil
}

// readModernWorkbook loads every sheet of a zip-based (.xlsx) workbook.
func readModernWorkbook(r io.Reader) (map[string][][]string, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	order := f.GetSheetList()
	sheets := make(map[string][][]string, len(order))
	for _, name := range order {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, nil, err
		}
		sheets[name] = rows
	}
	return sheets, order, nil
}

// readLegacyWorkbook loads every sheet of a BIFF (.xls) workbook. The xls
// reader needs random access, so the stream is buffered first.
func readLegacyWorkbook(r io.Reader) (map[string][][]string, []string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	wb, err := xls.OpenReader(bytes.NewReader(buf), "utf-8")
	if err != nil {
		return nil, nil, err
	}

	var order []string
	sheets := make(map[string][][]string, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		order = append(order, sheet.Name)

		var rows [][]string
		for rowIdx := 0; rowIdx <= int(sheet.MaxRow); rowIdx++ {
			row := sheet.Row(rowIdx)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for colIdx := row.FirstCol(); colIdx < row.LastCol(); colIdx++ {
				cells[colIdx] = row.Col(colIdx)
			}
			rows = append(rows, cells)
		}
		sheets[sheet.Name] = rows
	}
	return sheets, order, nil
}

// trimTrailingEmpty drops empty trailing header cells so that padding added
// by the reader does not become anonymous columns.
func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
		end--
	}
	out := make([]string, end)
	copy(out, cells[:end])
	return out
}
