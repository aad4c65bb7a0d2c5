package semchart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "marks.csv", "Class 10B\nID,SEM 1,SEM 2,SEM 3\nS1,7.5,,8\nS2,,,\n,6,\"1,000\",N/A\n")

	doc, err := Load(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "marks.csv", doc.Source)
	assert.Equal(t, "", doc.Sheet)
	assert.Equal(t, 1, doc.HeaderRow)
	assert.Equal(t, "A1:D5", doc.UsedRange)
	assert.Equal(t, []string{"SEM 1", "SEM 2", "SEM 3"}, doc.Labels)
	assert.Equal(t, []models.Entity{
		{ID: "S1", Values: []models.Value{models.Present(7.5), models.Absent(), models.Present(8)}},
		{ID: "Row 3", Values: []models.Value{models.Present(6), models.Present(1000), models.Absent()}},
	}, doc.Entities)
}

func TestLoadWorkbookSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Marks")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Marks", "A1", &[]interface{}{"Roll", "SEM I", "SEM II"}))
	require.NoError(t, f.SetSheetRow("Marks", "A2", &[]interface{}{"R1", 9.1, 8.7}))

	path := filepath.Join(t.TempDir(), "marks.xlsx")
	require.NoError(t, f.SaveAs(path))

	opts := DefaultOptions()
	opts.Sheet = "Marks"
	doc, err := Load(path, opts)
	require.NoError(t, err)
	assert.Equal(t, "Marks", doc.Sheet)
	assert.Equal(t, []string{"SEM I", "SEM II"}, doc.Labels)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, "R1", doc.Entities[0].ID)

	// The default sheet is empty.
	_, err = Load(path, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestLoadEmptyResult(t *testing.T) {
	path := writeFile(t, "ids.csv", "ID\nS1\nS2\n")

	doc, err := Load(path, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyResult))
	require.NotNil(t, doc)
	assert.True(t, doc.IsEmpty())

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "extract", loadErr.Stage)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadInvalidWorkbook(t *testing.T) {
	path := writeFile(t, "broken.xlsx", "not a zip archive")

	_, err := Load(path, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadGridEmpty(t *testing.T) {
	doc, err := LoadGrid(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyResult)
	assert.Equal(t, -1, doc.HeaderRow)
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format Format
		path   string
		want   Format
	}{
		{FormatAuto, "a.CSV", FormatCSV},
		{FormatAuto, "a.xlsx", FormatXLSX},
		{"", "a.txt", FormatXLSX},
		{FormatCSV, "a.txt", FormatCSV},
		{FormatXLSX, "a.csv", FormatXLSX},
	}

	for _, tt := range tests {
		opts := Options{Format: tt.format}
		assert.Equal(t, tt.want, opts.ResolveFormat(tt.path), "%s %s", tt.format, tt.path)
	}
}

func TestSheetNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Marks")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	names, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sheet1", "Marks"}, names)

	_, err = SheetNames(filepath.Join(t.TempDir(), "none.xlsx"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadRange(t *testing.T) {
	path := writeFile(t, "block.csv", "School report,,\n,ID,SEM1\n,S1,7\n,S2,8\nTotal,,15\n")

	opts := DefaultOptions()
	opts.Range = "B2:C4"
	doc, err := Load(path, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"SEM1"}, doc.Labels)
	require.Len(t, doc.Entities, 2)
	assert.Equal(t, "S2", doc.Entities[1].ID)

	opts.Range = "B2"
	_, err = Load(path, opts)
	assert.Error(t, err)
}

func TestLoadPrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Report"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "B3", &[]interface{}{"ID", "SEM1", "SEM2"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "B4", &[]interface{}{"S1", 5, 6}))
	require.NoError(t, f.SetSheetRow("Sheet1", "B6", &[]interface{}{"Total", 5, 6}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$B$3:$D$4",
		Scope:    "Sheet1",
	}))

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, f.SaveAs(path))

	opts := DefaultOptions()
	opts.Range = RangePrintArea
	doc, err := Load(path, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.HeaderRow)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, "S1", doc.Entities[0].ID)
}
