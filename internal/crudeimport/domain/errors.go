package domain

import "fmt"

// BatchItemError ties a validation failure to its position in a bulk request.
type BatchItemError struct {
	Index int
	Err   error
}

func (e *BatchItemError) Error() string {
	return fmt.Sprintf("records[%d]: %v", e.Index, e.Err)
}

func (e *BatchItemError) Unwrap() error {
	return e.Err
}
