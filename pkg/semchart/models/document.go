package models

// Document is a loaded file together with its extracted series.
type Document struct {
	// Source is the file name (no path).
	Source string `json:"source" yaml:"source"`
	// Sheet is the sheet the grid was read from (empty for CSV).
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	// HeaderRow is the 0-based index of the detected header row.
	HeaderRow int `json:"header_row" yaml:"header_row"`
	// UsedRange is the bounding box of non-empty cells (e.g. "A1:D10").
	UsedRange string `json:"used_range,omitempty" yaml:"used_range,omitempty"`

	SeriesSet `yaml:",inline"`
}
