package document

import "errors"

var (
	// ErrInvalidLength is returned when an identifier carries more digits than its type allows.
	ErrInvalidLength = errors.New("invalid number of digits")

	// ErrNoDigits is returned when the input holds no digits at all.
	ErrNoDigits = errors.New("no digits found")

	// ErrUnknownFormat is returned for an unsupported format code.
	ErrUnknownFormat = errors.New("unknown format code")

	// ErrInvalidType is returned when a scanned or decoded value has an unsupported type.
	ErrInvalidType = errors.New("unsupported source type")

	// ErrUnknownKind is returned when the kind of an identifier cannot be determined.
	ErrUnknownKind = errors.New("unknown identifier kind")

	// ErrRandomSource is returned when the random source fails during generation.
	ErrRandomSource = errors.New("failed to read random source")
)
