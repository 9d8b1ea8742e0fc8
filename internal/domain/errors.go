package domain

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when no sentence can be extracted from the input.
	ErrEmptyInput = errors.New("empty input: no extractable sentences")
	// ErrResourceUnavailable is returned when the stopword list cannot be loaded.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrLengthMismatch is returned when sentences and scores differ in length.
	ErrLengthMismatch = errors.New("sentences and scores length mismatch")
	// ErrUnsupportedFile is returned for files other than plain .txt documents.
	ErrUnsupportedFile = errors.New("unsupported file type")
)
