package chart

import (
	"strings"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
)

const (
	borderWidth      = 2.6
	highlightWidth   = 4.5
	dimmedWidth      = 1.2
	dimmedAlpha      = 0.18
	smoothTension    = 0.22
	pointRadius      = 4
	pointHoverRadius = 6
)

// Style configures how datasets are drawn. It is passed explicitly to every
// rendering call.
type Style struct {
	// Title is shown above the chart.
	Title string
	// Palette assigns colors to datasets in order.
	Palette Palette
	// Smooth draws curved lines instead of straight segments.
	Smooth bool
	// ShowPoints draws a marker at every present value.
	ShowPoints bool
	// SpanGaps bridges absent values. When false, absent values break the line.
	SpanGaps bool
	// Highlight emphasizes datasets whose label contains this text
	// (case-insensitive) and dims the others.
	Highlight string
	// Width and Height of the chart in pixels.
	Width  int
	Height int
}

// DefaultStyle returns the default chart style.
func DefaultStyle() Style {
	return Style{
		Title:      "Semester-wise Marks",
		Palette:    DefaultPalette(),
		Smooth:     true,
		ShowPoints: true,
		Width:      1200,
		Height:     420,
	}
}

// Dataset is one plotted line.
type Dataset struct {
	Label            string
	Values           []models.Value
	Color            string
	BorderWidth      float64
	Tension          float64
	PointRadius      int
	PointHoverRadius int
	SpanGaps         bool
}

// Datasets builds one dataset per entity, in entity order.
func Datasets(set models.SeriesSet, style Style) []Dataset {
	query := strings.ToLower(strings.TrimSpace(style.Highlight))
	out := make([]Dataset, len(set.Entities))
	for i, e := range set.Entities {
		ds := Dataset{
			Label:       e.ID,
			Values:      e.Values,
			Color:       style.Palette.Color(i),
			BorderWidth: borderWidth,
			SpanGaps:    style.SpanGaps,
		}
		if style.Smooth {
			ds.Tension = smoothTension
		}
		if style.ShowPoints {
			ds.PointRadius = pointRadius
			ds.PointHoverRadius = pointHoverRadius
		}
		if query != "" {
			if strings.Contains(strings.ToLower(e.ID), query) {
				ds.BorderWidth = highlightWidth
			} else {
				ds.BorderWidth = dimmedWidth
				if faded, err := HexToRGBA(ds.Color, dimmedAlpha); err == nil {
					ds.Color = faded
				}
			}
		}
		out[i] = ds
	}
	return out
}
