// Package models defines data structures for semester series extraction.
package models

import (
	"strconv"
)

// CellKind identifies which variant a Cell holds.
type CellKind uint8

const (
	// CellNull is an empty cell.
	CellNull CellKind = iota
	// CellString is a text cell.
	CellString
	// CellNumber is a numeric cell.
	CellNumber
)

// Cell is a single grid value: null, string or number.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
}

// Null returns an empty cell.
func Null() Cell { return Cell{} }

// String returns a text cell.
func String(s string) Cell { return Cell{Kind: CellString, Str: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: CellNumber, Num: f} }

// IsEmpty reports whether the cell is null or the empty string.
// Whitespace-only text is not empty.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellNull || (c.Kind == CellString && c.Str == "")
}

// Text returns the string form of the cell. Null cells yield "".
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Row is an ordered sequence of cells.
type Row []Cell

// At returns the cell at col, or a null cell when the row is too short.
func (r Row) At(col int) Cell {
	if col < 0 || col >= len(r) {
		return Null()
	}
	return r[col]
}

// HasData reports whether at least one cell is non-empty.
func (r Row) HasData() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return true
		}
	}
	return false
}

// Grid is the raw, possibly ragged, cell matrix of one sheet.
type Grid []Row
