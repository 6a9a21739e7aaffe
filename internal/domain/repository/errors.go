package repository

import "errors"

// Errors returned by document repositories. Implementations wrap them with
// context, so compare with errors.Is.
var (
	// ErrNotFound means the document does not exist yet. Callers use a default.
	ErrNotFound = errors.New("document not found")

	// ErrCorruptData means the document exists but is not valid JSON of the expected shape.
	ErrCorruptData = errors.New("document is corrupt")

	// ErrIOFailure covers permission and disk errors on read or write.
	ErrIOFailure = errors.New("document i/o failure")
)
