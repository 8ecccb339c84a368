package core

import (
	"errors"
	"fmt"
)

var (
	// ErrIO wraps load and save failures.
	ErrIO = errors.New("file I/O failed")
	// ErrInvalidInput is returned for bad user input; state is unchanged.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoPath means the document has never been saved or loaded.
	ErrNoPath = errors.New("document has no file path")
	// ErrNotFound means a search term does not occur in the document.
	ErrNotFound = errors.New("text not found")

	ErrEmptyFind        = fmt.Errorf("%w: find text is empty", ErrInvalidInput)
	ErrEmptyReplacement = fmt.Errorf("%w: replacement text is empty", ErrInvalidInput)
)
