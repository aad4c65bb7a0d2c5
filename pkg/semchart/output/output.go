// Package output serializes extracted documents.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"gopkg.in/yaml.v2"
)

// ToJSON serializes a document to JSON. Absent values are written as null.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// ToYAML serializes a document to YAML. Absent values are written as null.
func ToYAML(doc *models.Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Encode serializes doc in the named format ("json" or "yaml").
func Encode(doc *models.Document, format string, pretty bool) ([]byte, error) {
	switch format {
	case "", "json":
		return ToJSON(doc, pretty)
	case "yaml", "yml":
		return ToYAML(doc)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteFile replaces filename with data atomically.
func WriteFile(filename string, data []byte) error {
	return atomic.WriteFile(filename, bytes.NewReader(data))
}
