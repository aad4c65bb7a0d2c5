package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
)

// CoerceNumber parses text as a finite number after stripping thousands
// separators and surrounding whitespace.
func CoerceNumber(text string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isNumeric reports whether a non-empty cell coerces to a number.
func isNumeric(c models.Cell) bool {
	switch c.Kind {
	case models.CellNumber:
		return !math.IsNaN(c.Num) && !math.IsInf(c.Num, 0)
	case models.CellString:
		_, ok := CoerceNumber(c.Str)
		return ok
	default:
		return false
	}
}

// cellValue converts a data cell to a series value.
func cellValue(c models.Cell) models.Value {
	if c.IsEmpty() {
		return models.Absent()
	}
	if c.Kind == models.CellNumber {
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return models.Absent()
		}
		return models.Present(c.Num)
	}
	if f, ok := CoerceNumber(c.Str); ok {
		return models.Present(f)
	}
	return models.Absent()
}

// NormalizeLabel returns the trimmed text of a header cell. Null cells yield "".
func NormalizeLabel(c models.Cell) string {
	return strings.TrimSpace(c.Text())
}

// collapseSpaces replaces runs of whitespace with a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
