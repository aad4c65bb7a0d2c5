package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"github.com/xuri/excelize/v2"
)

func TestReadWorkbook(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "ID"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "SEM 1"))
	require.NoError(t, f.SetCellValue(sheetName, "C1", "SEM 2"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", "007"))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 8.5))
	require.NoError(t, f.SetCellValue(sheetName, "C2", "1,234"))
	require.NoError(t, f.SetCellValue(sheetName, "A4", "S2"))
	require.NoError(t, f.SetCellValue(sheetName, "C4", 7))

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	grid, sheet, err := ReadWorkbook(f2, "")
	require.NoError(t, err)
	assert.Equal(t, sheetName, sheet)
	require.Len(t, grid, 4)

	assert.Equal(t, models.String("ID"), grid[0][0])
	assert.Equal(t, models.String("007"), grid[1][0], "text ids keep leading zeros")
	assert.Equal(t, models.Number(8.5), grid[1][1])
	assert.Equal(t, models.String("1,234"), grid[1][2])
	assert.False(t, grid[2].HasData())
	assert.Equal(t, models.Null(), grid[3][1])
	assert.Equal(t, models.Number(7), grid[3][2])

	res := Extract(grid)
	parsed, ok := res.(*Parsed)
	require.True(t, ok, "expected *Parsed, got %T", res)
	assert.Equal(t, []string{"SEM 1", "SEM 2"}, parsed.Labels)
	require.Len(t, parsed.Entities, 2)
	assert.Equal(t, "007", parsed.Entities[0].ID)
	assert.Equal(t, []models.Value{models.Present(8.5), models.Present(1234)}, parsed.Entities[0].Values)
	assert.Equal(t, []models.Value{models.Absent(), models.Present(7)}, parsed.Entities[1].Values)
}

func TestReadWorkbookUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, _, err := ReadWorkbook(f, "Missing")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"hello", models.String("hello")},
		{"NaN", models.String("NaN")},
		{"", models.Null()},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}
