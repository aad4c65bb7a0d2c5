package parser

import (
	"strings"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
)

// HeaderScanRows is how many leading rows are considered as header candidates.
const HeaderScanRows = 6

// SemMarker marks a column holding one measurement period.
const SemMarker = "SEM"

// FindHeaderRow returns the 0-based index of the row most likely to be the
// header. The first candidate row that either carries a SEM marker or looks
// like "label, num, num, ..." wins; row 0 is the default.
func FindHeaderRow(grid models.Grid) int {
	limit := len(grid)
	if limit > HeaderScanRows {
		limit = HeaderScanRows
	}
	for i := 0; i < limit; i++ {
		row := grid[i]
		if hasSemMarker(row) {
			return i
		}
		if countNumeric(row) >= 2 && firstNonEmpty(row) > 0 {
			return i
		}
	}
	return 0
}

func hasSemMarker(row models.Row) bool {
	for _, c := range row {
		if c.IsEmpty() {
			continue
		}
		if strings.Contains(strings.ToUpper(c.Text()), SemMarker) {
			return true
		}
	}
	return false
}

func countNumeric(row models.Row) int {
	n := 0
	for _, c := range row {
		if !c.IsEmpty() && isNumeric(c) {
			n++
		}
	}
	return n
}

// firstNonEmpty returns the index of the first non-empty cell, or -1.
func firstNonEmpty(row models.Row) int {
	for i, c := range row {
		if !c.IsEmpty() {
			return i
		}
	}
	return -1
}
