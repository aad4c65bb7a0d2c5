package semchart

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input could not be read as CSV or xlsx.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrEmptyResult indicates that no series labels or no entities were found.
var ErrEmptyResult = errors.New("no series data found")

// LoadError represents an error while loading a file.
type LoadError struct {
	Path  string
	Stage string // "open", "read", "extract"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
