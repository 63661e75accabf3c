package models

import "fmt"

// ErrorKind represents different categories of metadata pipeline failures
type ErrorKind int

const (
	ErrFetch ErrorKind = iota
	ErrLocate
	ErrDecompress
	ErrParse
	ErrValidation
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case ErrFetch:
		return "Fetch"
	case ErrLocate:
		return "Locate"
	case ErrDecompress:
		return "Decompress"
	case ErrParse:
		return "Parse"
	case ErrValidation:
		return "Validation"
	default:
		return "Unknown"
	}
}

// MetadataError represents an error while acquiring or parsing repository metadata
type MetadataError struct {
	Kind ErrorKind
	Repo string
	Err  error
}

// Error implements the error interface
func (e *MetadataError) Error() string {
	if e.Repo != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Repo, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Kind, e.Err)
}

// Unwrap returns the wrapped error
func (e *MetadataError) Unwrap() error {
	return e.Err
}

// InvalidPackageError reports a package field that failed validation.
// The parser drops the offending record and keeps scanning.
type InvalidPackageError struct {
	Field string
	Value string
}

// Error implements the error interface
func (e *InvalidPackageError) Error() string {
	return fmt.Sprintf("invalid package %s %q", e.Field, e.Value)
}
