package catalog

import "fmt"

// LoadError represents an error reading or parsing a persisted catalog
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error (%s): %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents an error persisting a catalog document
type SaveError struct {
	Path  string
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("catalog save error (%s): %v", e.Path, e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

// InvalidCatalogError represents a catalog document that fails validation
type InvalidCatalogError struct {
	Position string
	Message  string
	Cause    error
}

func (e *InvalidCatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid catalog entry %q: %s: %v", e.Position, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid catalog entry %q: %s", e.Position, e.Message)
}

func (e *InvalidCatalogError) Unwrap() error {
	return e.Cause
}
