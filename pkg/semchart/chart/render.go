package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
)

// gapValue is the echarts marker for a missing point.
const gapValue = "-"

// NewLine builds an echarts line chart for set.
func NewLine(set models.SeriesSet, style Style) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: style.Title,
			Width:     fmt.Sprintf("%dpx", style.Width),
			Height:    fmt.Sprintf("%dpx", style.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: style.Title}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Type:   "scroll",
			Orient: "vertical",
			Right:  "0",
			Top:    "middle",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)

	line.SetXAxis(set.Labels)
	for _, ds := range Datasets(set, style) {
		line.AddSeries(ds.Label, lineData(ds.Values),
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:       opts.Bool(ds.Tension > 0),
				ShowSymbol:   opts.Bool(ds.PointRadius > 0),
				SymbolSize:   ds.PointRadius * 2,
				ConnectNulls: opts.Bool(ds.SpanGaps),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: ds.Color, Width: float32(ds.BorderWidth)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ds.Color}),
		)
	}
	return line
}

// RenderHTML writes a standalone HTML page with the chart to w.
func RenderHTML(w io.Writer, set models.SeriesSet, style Style) error {
	return NewLine(set, style).Render(w)
}

func lineData(values []models.Value) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		if v.Present {
			items[i] = opts.LineData{Value: v.Num}
		} else {
			items[i] = opts.LineData{Value: gapValue}
		}
	}
	return items
}
