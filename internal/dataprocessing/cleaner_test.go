package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFile(t *testing.T) {
	path := writeWorkbook(t, "LibRes",
		[]string{"Compound number (#)", "RT (min)", "Hit Name", "Quality"},
		[][]string{
			{"1", "5.2", "alpha-pinene", "80"},
			{"", "5.2", "beta-pinene", "95"},
			{"2", "7.1", "limonene", "60"},
		})

	table, err := CleanFile(openFixture(t, path), filepath.Base(path))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"compound_number", "rt_min", "hit_name", "quality",
		"group", "timepoint", "adsorbent", "sample", "source_file",
	}, table.Columns)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1", "5.2", "beta-pinene", "95", "healthy", "24h", "char", "1", "Healthy_24h_char-1.xlsx"}, table.Rows[0])
	assert.Equal(t, []string{"2", "7.1", "limonene", "60", "healthy", "24h", "char", "1", "Healthy_24h_char-1.xlsx"}, table.Rows[1])
}

func TestCleanFilePropagatesSheetError(t *testing.T) {
	path := writeWorkbook(t, "QRes",
		[]string{"Compound", "Quality"},
		[][]string{{"1", "80"}})

	table, err := CleanFile(openFixture(t, path), filepath.Base(path))

	var notFound *SheetNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Nil(t, table, "a failing file yields no partial rows")
}
