package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
)

// SeriesColumn identifies one data series by grid column.
type SeriesColumn struct {
	// Index is the 0-based grid column; never 0, which holds entity ids.
	Index int
	// Label is the normalized header text.
	Label string
}

// DetectSeriesColumns picks the series columns from the header row. When the
// header yields none, columns are inferred from the widest data row and
// labelled SEM1, SEM2, ...
func DetectSeriesColumns(header models.Row, dataRows []models.Row) []SeriesColumn {
	var cols []SeriesColumn
	for col := 1; col < len(header); col++ {
		label := collapseSpaces(NormalizeLabel(header[col]))
		if label == "" || isPlaceholderLabel(label) {
			continue
		}
		cols = append(cols, SeriesColumn{Index: col, Label: label})
	}
	if len(cols) > 0 {
		return cols
	}
	return inferSeriesColumns(dataRows)
}

// isPlaceholderLabel matches spreadsheet artifact headers such as "Unnamed: 3".
func isPlaceholderLabel(label string) bool {
	return strings.HasPrefix(strings.ToLower(label), "unnamed")
}

func inferSeriesColumns(dataRows []models.Row) []SeriesColumn {
	maxLen := 0
	for _, r := range dataRows {
		if len(r) > maxLen {
			maxLen = len(r)
		}
	}
	var cols []SeriesColumn
	for col := 1; col < maxLen; col++ {
		cols = append(cols, SeriesColumn{
			Index: col,
			Label: fmt.Sprintf("%s%d", SemMarker, len(cols)+1),
		})
	}
	return cols
}

// Labels returns the labels of cols in order.
func Labels(cols []SeriesColumn) []string {
	labels := make([]string, len(cols))
	for i, c := range cols {
		labels[i] = c.Label
	}
	return labels
}
