package agenda

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentLoad marks markup that could not be parsed at all.
	ErrDocumentLoad = errors.New("agenda: document could not be loaded")
	// ErrUnknownLanguage is returned when neither the document id nor the
	// options determine the language.
	ErrUnknownLanguage = errors.New("agenda: unknown document language")

	errMalformedRow = errors.New("malformed row")
)

type LoadError struct {
	DocumentID string
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load document %q: %v", e.DocumentID, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrDocumentLoad
}
