package conc

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrPoisoned     = errors.New("mutex poisoned by a panicking holder")
	ErrDisconnected = errors.New("channel disconnected")
	ErrAlreadySent  = errors.New("one-shot value already sent")
	ErrOverRelease  = errors.New("shared handle already released")
	ErrReleased     = errors.New("shared value released")
)

// PanicError is returned by Join when the unit panicked.
type PanicError struct {
	ID    uuid.UUID
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("unit %s panicked: %v", e.ID, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
