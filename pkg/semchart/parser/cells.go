package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads a sheet into a grid. An empty sheetName selects the
// first sheet. It returns the grid and the name of the sheet read.
func ReadWorkbook(f *excelize.File, sheetName string) (models.Grid, string, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, "", fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, sheetName, err
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, cellValue := range row {
			cell := parseValue(cellValue)
			// Numeric-looking text such as "007" keeps its text form.
			if cell.Kind == models.CellNumber && !isNumberCell(f, sheetName, colIdx+1, rowIdx+1) {
				cell = models.String(cellValue)
			}
			cells[colIdx] = cell
		}
		grid[rowIdx] = cells
	}

	return grid, sheetName, nil
}

// parseValue converts a raw cell string to a grid cell.
// Empty strings become null, numbers become numeric cells, anything else
// stays text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Null()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	return models.String(s)
}

// isNumberCell reports whether the stored cell type is numeric. Numbers are
// usually written without a type attribute.
func isNumberCell(f *excelize.File, sheetName string, col, row int) bool {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return false
	}
	return cellType == excelize.CellTypeUnset || cellType == excelize.CellTypeNumber
}
