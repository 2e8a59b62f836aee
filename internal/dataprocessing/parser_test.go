package dataprocessing

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a minimal instrument export: a named subsheet with
// eight rows of acquisition metadata, the header on Excel row 9 and data
// rows below it. Returns the file path.
func writeWorkbook(t *testing.T, sheetName string, header []string, data [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheetName)

	for i := 1; i <= 8; i++ {
		require.NoError(t, f.SetCellValue(sheetName, "A"+strconv.Itoa(i), "acquisition metadata"))
	}
	writeRow := func(rowNum int, cells []string) {
		for colIdx, val := range cells {
			col, err := excelize.ColumnNumberToName(colIdx + 1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, col+strconv.Itoa(rowNum), val))
		}
	}
	writeRow(9, header)
	for i, row := range data {
		writeRow(10+i, row)
	}

	path := filepath.Join(t.TempDir(), "Healthy_24h_char-1.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func openFixture(t *testing.T, path string) *os.File {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file
}

func TestExtractLibResSheet(t *testing.T) {
	path := writeWorkbook(t, "LibRes",
		[]string{"Compound number (#)", "RT (min)", "Hit Name", "Quality"},
		[][]string{
			{"1", "5.2", "alpha-pinene", "80"},
			{"", "5.2", "beta-pinene", "95"},
		})

	table, err := ExtractLibResSheet(openFixture(t, path), filepath.Base(path))
	require.NoError(t, err)

	assert.Equal(t, []string{"Compound number (#)", "RT (min)", "Hit Name", "Quality"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "alpha-pinene", table.Cell(0, 2))
	assert.Equal(t, "", table.Cell(1, 0), "continuation row keeps its empty compound cell")
}

func TestExtractLibResSheetCaseInsensitiveMatch(t *testing.T) {
	path := writeWorkbook(t, "LIBRES",
		[]string{"Compound", "Quality"},
		[][]string{{"1", "80"}})

	table, err := ExtractLibResSheet(openFixture(t, path), filepath.Base(path))
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestExtractLibResSheetNotFound(t *testing.T) {
	path := writeWorkbook(t, "IntRes",
		[]string{"Compound", "Quality"},
		[][]string{{"1", "80"}})

	_, err := ExtractLibResSheet(openFixture(t, path), filepath.Base(path))

	var notFound *SheetNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"IntRes"}, notFound.Sheets)
	assert.True(t, strings.Contains(err.Error(), "IntRes"),
		"error should name the sheets that were present: %v", err)
}

func TestExtractLibResSheetNoHeaderRow(t *testing.T) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), "LibRes")
	require.NoError(t, f.SetCellValue("LibRes", "A1", "only one row"))

	path := filepath.Join(t.TempDir(), "short.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := ExtractLibResSheet(openFixture(t, path), "short.xlsx")
	var format *FormatError
	require.ErrorAs(t, err, &format)
}

func TestExtractLibResSheetCorruptWorkbook(t *testing.T) {
	_, err := ExtractLibResSheet(bytes.NewReader([]byte("not a workbook")), "broken.xlsx")

	var format *FormatError
	require.ErrorAs(t, err, &format)
	assert.Equal(t, "broken.xlsx", format.File)
	assert.Error(t, format.Unwrap())
}

func TestExtractLibResSheetCorruptLegacyWorkbook(t *testing.T) {
	_, err := ExtractLibResSheet(bytes.NewReader([]byte("not a workbook")), "broken.xls")

	var format *FormatError
	require.ErrorAs(t, err, &format)
}
