package queue

import "fmt"

// MessageError reports a queue message that could not be decoded or validated
type MessageError struct {
	Message string
	Cause   error
}

func (e *MessageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("message error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("message error: %s", e.Message)
}

func (e *MessageError) Unwrap() error {
	return e.Cause
}
