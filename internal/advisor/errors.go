package advisor

import (
	"errors"
	"fmt"
)

// ErrUnknownPosition is the cause of an analysis against a position with no catalog entry
var ErrUnknownPosition = errors.New("unknown position")

// AnalysisError describes an analysis that ended in an error report
type AnalysisError struct {
	Position string
	Message  string
	Cause    error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis error: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// IsUnknownPosition reports whether err comes from a catalog miss
func IsUnknownPosition(err error) bool {
	return errors.Is(err, ErrUnknownPosition)
}
