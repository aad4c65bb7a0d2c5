package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is the character encoding of a CSV input.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 with an optional byte order mark.
	EncodingUTF8 Encoding = "utf-8"
	// EncodingLatin1 is ISO 8859-1.
	EncodingLatin1 Encoding = "latin1"
	// EncodingWindows1252 is the Windows Western European code page.
	EncodingWindows1252 Encoding = "windows-1252"
)

// ParseEncoding maps a user-supplied name to an Encoding. An empty name
// selects UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	default:
		return "", fmt.Errorf("unsupported encoding: %s", name)
	}
}

func (e Encoding) transformer() transform.Transformer {
	switch e {
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder()
	case EncodingWindows1252:
		return charmap.Windows1252.NewDecoder()
	default:
		return unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}
}

// CSVOptions configures ReadCSV.
type CSVOptions struct {
	// Encoding of the input; defaults to UTF-8.
	Encoding Encoding
	// Comma is the field delimiter; defaults to ','.
	Comma rune
}

// ReadCSV reads delimited text into a grid. Rows may differ in length.
// Empty fields become null cells; all other fields stay text and are
// coerced later.
func ReadCSV(r io.Reader, opts CSVOptions) (models.Grid, error) {
	reader := csv.NewReader(transform.NewReader(r, opts.Encoding.transformer()))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(records))
	for i, rec := range records {
		row := make(models.Row, len(rec))
		for j, field := range rec {
			if field == "" {
				row[j] = models.Null()
			} else {
				row[j] = models.String(field)
			}
		}
		grid[i] = row
	}
	return grid, nil
}
