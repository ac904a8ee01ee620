package dataset

import "errors"

var (
	// ErrEmptyInput is returned when an operation needs at least one label or sample.
	ErrEmptyInput = errors.New("dataset: empty input")

	// ErrInvalidProportion is returned for a proportion or rate outside [0, 1].
	ErrInvalidProportion = errors.New("dataset: proportion must be within [0, 1]")

	// ErrLabelNotFound is returned when an explicit label is absent from the dataset.
	ErrLabelNotFound = errors.New("dataset: label not found")

	// ErrLengthMismatch is returned when samples and labels differ in length.
	ErrLengthMismatch = errors.New("dataset: samples and labels differ in length")

	// ErrInvalidLabelNumber is returned for a negative label count.
	ErrInvalidLabelNumber = errors.New("dataset: label number must be non-negative")

	// ErrInvalidFolds is returned when a fold count is below 2.
	ErrInvalidFolds = errors.New("dataset: fold count must be at least 2")
)
