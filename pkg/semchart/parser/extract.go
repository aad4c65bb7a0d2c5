package parser

import (
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
)

// Result is the outcome of Extract: either *Parsed or *Empty.
type Result interface {
	// HeaderRow is the detected header index; -1 when the grid had no rows.
	HeaderRow() int
	// Series returns the extracted, possibly partial, series.
	Series() models.SeriesSet

	result()
}

// Parsed holds a series set with at least one label and one entity.
type Parsed struct {
	models.SeriesSet
	Header int
}

// Empty means nothing plottable was found. Partial carries whatever labels
// or entities were recovered.
type Empty struct {
	Partial models.SeriesSet
	Header  int
}

func (p *Parsed) HeaderRow() int           { return p.Header }
func (p *Parsed) Series() models.SeriesSet { return p.SeriesSet }
func (*Parsed) result()                    {}

func (e *Empty) HeaderRow() int           { return e.Header }
func (e *Empty) Series() models.SeriesSet { return e.Partial }
func (*Empty) result()                    {}

// Extract runs header detection, series column detection and entity
// extraction over grid. It never fails; sparse or malformed input degrades
// to an *Empty result. The grid is not modified.
func Extract(grid models.Grid) Result {
	if len(grid) == 0 {
		return &Empty{
			Partial: models.SeriesSet{Labels: []string{}, Entities: []models.Entity{}},
			Header:  -1,
		}
	}

	headerIdx := FindHeaderRow(grid)
	dataRows := DataRows(grid, headerIdx)
	cols := DetectSeriesColumns(grid[headerIdx], dataRows)
	entities := ExtractEntities(dataRows, cols)

	set := models.SeriesSet{
		Labels:   Labels(cols),
		Entities: entities,
	}
	if set.IsEmpty() {
		return &Empty{Partial: set, Header: headerIdx}
	}
	return &Parsed{SeriesSet: set, Header: headerIdx}
}

// DataRows returns the rows after headerIdx that hold at least one
// non-empty cell.
func DataRows(grid models.Grid, headerIdx int) []models.Row {
	var rows []models.Row
	for _, r := range grid[headerIdx+1:] {
		if r.HasData() {
			rows = append(rows, r)
		}
	}
	return rows
}
