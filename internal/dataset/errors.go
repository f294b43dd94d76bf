package dataset

import (
	"errors"
	"fmt"
)

// LoadError represents a failure to turn an input file into typed records.
//
// Load errors include:
//   - Dataset not found: path does not resolve to a readable file
//   - Missing column: an expected named column is absent
//   - Bad cell: a cell cannot be parsed as a number
//   - Empty dataset: the file has no data rows
//
// All load errors are fatal to the current run; there is no partial-chart
// fallback.
type LoadError struct {
	// Code identifies the error category.
	Code LoadErrorCode

	// Message is a human-readable description.
	Message string

	// Path identifies the input file, when known.
	Path string

	// Column identifies the offending column (for missing-column errors).
	Column string

	// Err is the underlying error, if any.
	Err error
}

// LoadErrorCode categorizes load errors.
type LoadErrorCode string

const (
	// ErrCodeDatasetNotFound indicates the input path does not resolve.
	ErrCodeDatasetNotFound LoadErrorCode = "DATASET_NOT_FOUND"

	// ErrCodeMissingColumn indicates an expected column is absent.
	ErrCodeMissingColumn LoadErrorCode = "MISSING_COLUMN"

	// ErrCodeBadCell indicates a cell could not be parsed as a number.
	ErrCodeBadCell LoadErrorCode = "BAD_CELL"

	// ErrCodeEmptyDataset indicates the file holds no data rows.
	ErrCodeEmptyDataset LoadErrorCode = "EMPTY_DATASET"
)

// Error implements the error interface.
func (e *LoadError) Error() string {
	switch {
	case e.Column != "" && e.Path != "":
		return fmt.Sprintf("%s: %s (path=%s, column=%s)", e.Code, e.Message, e.Path, e.Column)
	case e.Path != "":
		return fmt.Sprintf("%s: %s (path=%s)", e.Code, e.Message, e.Path)
	case e.Column != "":
		return fmt.Sprintf("%s: %s (column=%s)", e.Code, e.Message, e.Column)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsNotFoundError returns true if the error is a dataset-not-found error.
// Uses errors.As to handle wrapped errors.
func IsNotFoundError(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeDatasetNotFound
	}
	return false
}

// IsMissingColumnError returns true if the error is a missing-column error.
// Uses errors.As to handle wrapped errors.
func IsMissingColumnError(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeMissingColumn
	}
	return false
}

// IsEmptyDatasetError returns true if the error is an empty-dataset error.
func IsEmptyDatasetError(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeEmptyDataset
	}
	return false
}

// NewNotFoundError creates a LoadError for an unreadable input path.
func NewNotFoundError(path string, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeDatasetNotFound,
		Message: "results file does not exist or is not readable",
		Path:    path,
		Err:     err,
	}
}

// NewMissingColumnError creates a LoadError for an absent column.
func NewMissingColumnError(column string) *LoadError {
	return &LoadError{
		Code:    ErrCodeMissingColumn,
		Message: "expected column is absent from the dataset",
		Column:  column,
	}
}

// NewBadCellError creates a LoadError for an unparseable cell.
func NewBadCellError(path, column string, row int, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeBadCell,
		Message: fmt.Sprintf("cell at data row %d is not a number", row),
		Path:    path,
		Column:  column,
		Err:     err,
	}
}

// NewEmptyDatasetError creates a LoadError for a dataset with no rows.
func NewEmptyDatasetError(path string) *LoadError {
	return &LoadError{
		Code:    ErrCodeEmptyDataset,
		Message: "dataset holds no data rows",
		Path:    path,
	}
}
