package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestValidateInputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	dir := t.TempDir()
	assert.NoError(t, v.ValidateInputDirectory(dir))
	assert.Error(t, v.ValidateInputDirectory(filepath.Join(dir, "missing")))

	file := filepath.Join(dir, "plain.txt")
	touch(t, file)
	assert.Error(t, v.ValidateInputDirectory(file))
}

func TestValidateOutputDirectoryCreates(t *testing.T) {
	v := NewFileValidator(nil)

	dir := filepath.Join(t.TempDir(), "out", "nested")
	require.NoError(t, v.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestValidateWorkbookFile(t *testing.T) {
	v := NewFileValidator(nil)
	dir := t.TempDir()

	xlsx := filepath.Join(dir, "Healthy_24h_char-1.xlsx")
	touch(t, xlsx)
	assert.NoError(t, v.ValidateWorkbookFile(xlsx))

	xls := filepath.Join(dir, "legacy.xls")
	touch(t, xls)
	assert.NoError(t, v.ValidateWorkbookFile(xls))

	txt := filepath.Join(dir, "notes.txt")
	touch(t, txt)
	assert.Error(t, v.ValidateWorkbookFile(txt))

	lock := filepath.Join(dir, "~$Healthy_24h_char-1.xlsx")
	touch(t, lock)
	assert.Error(t, v.ValidateWorkbookFile(lock))

	assert.Error(t, v.ValidateWorkbookFile(filepath.Join(dir, "missing.xlsx")))
	assert.Error(t, v.ValidateWorkbookFile(dir))
}

func TestListWorkbooks(t *testing.T) {
	v := NewFileValidator(nil)
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "b.xlsx"))
	touch(t, filepath.Join(dir, "a.xls"))
	touch(t, filepath.Join(dir, "~$b.xlsx"))
	touch(t, filepath.Join(dir, "notes.txt"))

	paths, err := v.ListWorkbooks(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.xls"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.xlsx"), paths[1])
}
