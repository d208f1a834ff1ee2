package services

import "errors"

// ErrNotFound signals that the referenced id does not exist.
var ErrNotFound = errors.New("registro no encontrado")

// ValidationError carries the first violated business rule's message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
