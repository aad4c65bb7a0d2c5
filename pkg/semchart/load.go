package semchart

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"github.com/ukaji3/semchart-go/pkg/semchart/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads a CSV or xlsx file and extracts its series.
// When nothing plottable is found it returns the partial document together
// with an error wrapping ErrEmptyResult.
func Load(path string, opts Options) (*models.Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewLoadError(path, "open", ErrFileNotFound)
	}

	grid, sheet, err := readGrid(path, opts)
	if err != nil {
		return nil, err
	}

	doc, err := LoadGrid(grid, opts)
	if doc != nil {
		doc.Source = filepath.Base(path)
		doc.Sheet = sheet
	}
	if err != nil {
		return doc, NewLoadError(path, "extract", err)
	}
	return doc, nil
}

// LoadGrid extracts series from an already materialized grid.
func LoadGrid(grid models.Grid, opts Options) (*models.Document, error) {
	log := opts.Logger
	start := time.Now()

	res := parser.Extract(grid)
	doc := &models.Document{
		HeaderRow: res.HeaderRow(),
		UsedRange: parser.UsedRange(grid),
		SeriesSet: res.Series(),
	}

	switch r := res.(type) {
	case *parser.Parsed:
		log.Info("extracted %d entities across %d series (header row %d) in %s",
			len(r.Entities), len(r.Labels), r.Header, time.Since(start))
		return doc, nil
	case *parser.Empty:
		log.Warn("no plottable data: %d series labels, %d entities",
			len(r.Partial.Labels), len(r.Partial.Entities))
		return doc, ErrEmptyResult
	default:
		return nil, fmt.Errorf("unexpected extraction result %T", res)
	}
}

// readGrid materializes the grid for path according to opts.
func readGrid(path string, opts Options) (models.Grid, string, error) {
	log := opts.Logger
	start := time.Now()

	switch opts.ResolveFormat(path) {
	case FormatCSV:
		file, err := os.Open(path)
		if err != nil {
			return nil, "", NewLoadError(path, "open", err)
		}
		defer file.Close()

		grid, err := parser.ReadCSV(file, parser.CSVOptions{
			Encoding: opts.Encoding,
			Comma:    opts.Comma,
		})
		if err != nil {
			return nil, "", NewLoadError(path, "read", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
		}
		log.Debug("CSV file read in %s (%d rows)", time.Since(start), len(grid))

		if opts.Range != "" && opts.Range != RangePrintArea {
			if grid, err = cropGrid(grid, opts.Range); err != nil {
				return nil, "", NewLoadError(path, "read", err)
			}
		}
		return grid, "", nil

	default:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, "", NewLoadError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
		}
		defer f.Close()
		log.Debug("workbook opened in %s", time.Since(start))

		grid, sheet, err := parser.ReadWorkbook(f, opts.Sheet)
		if err != nil {
			return nil, sheet, NewLoadError(path, "read", err)
		}
		log.Debug("sheet %q read in %s (%d rows)", sheet, time.Since(start), len(grid))

		switch opts.Range {
		case "":
		case RangePrintArea:
			if area, ok := parser.PrintArea(f, sheet); ok {
				log.Debug("cropping to print area R%dC%d:R%dC%d", area.R1, area.C1, area.R2, area.C2)
				grid = parser.CropGrid(grid, *area)
			} else {
				log.Warn("sheet %q has no print area; using the whole sheet", sheet)
			}
		default:
			if grid, err = cropGrid(grid, opts.Range); err != nil {
				return nil, sheet, NewLoadError(path, "read", err)
			}
		}
		return grid, sheet, nil
	}
}

func cropGrid(grid models.Grid, ref string) (models.Grid, error) {
	rng, err := parser.ParseRange(ref)
	if err != nil {
		return nil, err
	}
	return parser.CropGrid(grid, rng), nil
}

// SheetNames lists the sheets of a workbook in order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewLoadError(path, "open", ErrFileNotFound)
		}
		return nil, NewLoadError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()
	return f.GetSheetList(), nil
}
