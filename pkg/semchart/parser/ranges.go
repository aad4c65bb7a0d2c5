package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"github.com/xuri/excelize/v2"
)

// PrintArea returns the first print area defined for sheetName, if any.
func PrintArea(f *excelize.File, sheetName string) (*models.CellRange, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet == sheetName && len(areas) > 0 {
			return &areas[0], true
		}
	}
	return nil, false
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.CellRange) {
	var areas []models.CellRange

	// Split by comma for multiple print areas
	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area, err := ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// ParseRange parses a range such as "B2:F30" or "$A$1:$D$10".
func ParseRange(ref string) (models.CellRange, error) {
	parts := strings.Split(strings.ReplaceAll(ref, "$", ""), ":")
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	return models.CellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// CropGrid returns the part of grid inside rng. Rows and columns outside
// the grid are simply absent from the result.
func CropGrid(grid models.Grid, rng models.CellRange) models.Grid {
	var out models.Grid
	for r := rng.R1 - 1; r < rng.R2 && r < len(grid); r++ {
		row := grid[r]
		var cropped models.Row
		if rng.C1-1 < len(row) {
			end := rng.C2
			if end > len(row) {
				end = len(row)
			}
			cropped = append(models.Row(nil), row[rng.C1-1:end]...)
		}
		out = append(out, cropped)
	}
	return out
}
