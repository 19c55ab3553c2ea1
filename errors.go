package genarena

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyOverflow is returned by Insert and InsertWith when the next slot
	// index cannot be represented by the arena's key type.
	ErrKeyOverflow = errors.New("genarena: key index overflow")
)

// KeyOverflowError reports the slot index that did not fit the key type.
//
// It matches ErrKeyOverflow with errors.Is.
type KeyOverflowError struct {
	Index int
}

func (e *KeyOverflowError) Error() string {
	return fmt.Sprintf("genarena: slot index %d does not fit the key type", e.Index)
}

func (e *KeyOverflowError) Unwrap() error { return ErrKeyOverflow }
