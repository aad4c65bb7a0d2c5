// Package semchart loads CSV and xlsx files and extracts per-entity
// semester series from them.
package semchart

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/semchart-go/internal/logging"
	"github.com/ukaji3/semchart-go/pkg/semchart/parser"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatCSV reads delimited text.
	FormatCSV Format = "csv"
	// FormatXLSX reads an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// RangePrintArea selects the print area defined for the sheet.
const RangePrintArea = "print-area"

// Options configures loading behavior.
type Options struct {
	// Format overrides extension-based detection.
	Format Format
	// Sheet selects a workbook sheet. Empty means the first sheet.
	Sheet string
	// Encoding is the character encoding of CSV input.
	Encoding parser.Encoding
	// Comma is the CSV field delimiter; zero means ','.
	Comma rune
	// Range restricts extraction to a cell range such as "B2:F30", or to
	// the sheet's print area when set to RangePrintArea.
	Range string
	// Logger receives progress messages. Nil disables logging.
	Logger *logging.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Format:   FormatAuto,
		Encoding: parser.EncodingUTF8,
	}
}

// ResolveFormat returns the format used for path.
func (o Options) ResolveFormat(path string) Format {
	if o.Format == FormatCSV || o.Format == FormatXLSX {
		return o.Format
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}
