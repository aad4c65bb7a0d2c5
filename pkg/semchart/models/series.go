package models

import (
	"encoding/json"
	"strconv"
)

// Value is one point of an entity's series. An absent value means there is
// no data at that position; it is never the same as zero.
type Value struct {
	Num     float64
	Present bool
}

// Absent returns a value with no data.
func Absent() Value { return Value{} }

// Present returns a value holding f.
func Present(f float64) Value { return Value{Num: f, Present: true} }

// Float returns the number and whether it is present.
func (v Value) Float() (float64, bool) { return v.Num, v.Present }

// MarshalJSON encodes absent values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Present {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.Num, 'f', -1, 64)), nil
}

// UnmarshalJSON decodes null as an absent value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Absent()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Present(f)
	return nil
}

// MarshalYAML encodes absent values as null.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.Present {
		return nil, nil
	}
	return v.Num, nil
}

// Entity is one logical data row: an identifier and its values, aligned
// one-to-one with the series labels of the owning SeriesSet.
type Entity struct {
	// ID is taken from the first column, or synthesized from the row position.
	ID string `json:"id" yaml:"id"`
	// Values holds one value per series label.
	Values []Value `json:"values" yaml:"values"`
}

// PresentCount returns the number of present values.
func (e Entity) PresentCount() int {
	n := 0
	for _, v := range e.Values {
		if v.Present {
			n++
		}
	}
	return n
}

// SeriesSet is the normalized extraction model. Label order defines value
// order in every entity.
type SeriesSet struct {
	// Labels are the series names in column order.
	Labels []string `json:"series_labels" yaml:"series_labels"`
	// Entities are the data rows in source order.
	Entities []Entity `json:"entities" yaml:"entities"`
}

// IsEmpty reports whether there is nothing to plot.
func (s SeriesSet) IsEmpty() bool {
	return len(s.Labels) == 0 || len(s.Entities) == 0
}
