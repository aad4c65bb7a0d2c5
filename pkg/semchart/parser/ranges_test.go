package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	rng, err := ParseRange("$B$2:$D$10")
	require.NoError(t, err)
	assert.Equal(t, models.CellRange{R1: 2, C1: 2, R2: 10, C2: 4}, rng)

	rng, err = ParseRange("D10:B2")
	require.NoError(t, err)
	assert.Equal(t, models.CellRange{R1: 2, C1: 2, R2: 10, C2: 4}, rng)

	_, err = ParseRange("B2")
	assert.Error(t, err)
	_, err = ParseRange("B2:??")
	assert.Error(t, err)
}

func TestParsePrintAreaReference(t *testing.T) {
	sheet, areas := parsePrintAreaReference("'Marks 2024'!$A$1:$C$5,'Marks 2024'!$E$1:$F$2")
	assert.Equal(t, "Marks 2024", sheet)
	assert.Equal(t, []models.CellRange{
		{R1: 1, C1: 1, R2: 5, C2: 3},
		{R1: 1, C1: 5, R2: 2, C2: 6},
	}, areas)
}

func TestCropGrid(t *testing.T) {
	grid := models.Grid{
		row("title"),
		row(nil, "ID", "SEM1", "junk"),
		row(nil, "S1", 5),
		row(nil),
	}

	got := CropGrid(grid, models.CellRange{R1: 2, C1: 2, R2: 9, C2: 3})
	assert.Equal(t, models.Grid{
		row("ID", "SEM1"),
		row("S1", 5),
		nil,
	}, got)

	parsed := mustParse(t, got)
	assert.Equal(t, []string{"SEM1"}, parsed.Labels)
}

func TestPrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$B$2:$D$9",
		Scope:    "Sheet1",
	}))

	area, ok := PrintArea(f, "Sheet1")
	require.True(t, ok)
	assert.Equal(t, models.CellRange{R1: 2, C1: 2, R2: 9, C2: 4}, *area)

	_, ok = PrintArea(f, "Other")
	assert.False(t, ok)
}
